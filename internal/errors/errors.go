package errors

import (
	"fmt"
	"net/http"
)

// AppError é a interface central para os erros customizados do AgendaFarma.
// O Handler usa Category e HTTPStatus para montar a resposta final.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION_ERROR", "NOT_FOUND")
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Unwrap() error    // Expõe o erro subjacente, quando houver
}

// --- Erros de Domínio ---

// ValidationError representa falhas de validação de dados de entrada
// (payload malformado, regra de horário violada na criação, etc.).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string    { return e.Msg }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// UnprocessableError representa um payload sintaticamente válido cujo
// conteúdo viola regra de horário na atualização (horário quebrado ou fora
// do expediente em um PUT). O contrato da API distingue esse caso com 422.
type UnprocessableError struct {
	Msg string
}

func (e *UnprocessableError) Error() string    { return e.Msg }
func (e *UnprocessableError) Category() string { return "UNPROCESSABLE_ENTITY" }
func (e *UnprocessableError) HTTPStatus() int  { return http.StatusUnprocessableEntity } // 422
func (e *UnprocessableError) Unwrap() error    { return nil }

// NewUnprocessableError cria um novo erro de entidade não processável.
func NewUnprocessableError(msg string) AppError {
	return &UnprocessableError{Msg: msg}
}

// NotFoundError representa a ausência do recurso solicitado (id inexistente
// ou agendamento já cancelado, que a API trata como o mesmo caso).
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return e.Msg }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound } // 404
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// ConflictError representa um recurso duplicado (e-mail já cadastrado).
// O contrato da API responde 400 para duplicidade, não 409.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string    { return e.Msg }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ConflictError) Unwrap() error    { return nil }

// NewConflictError cria um novo erro de conflito de recurso.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// --- Erros de Infraestrutura ---

// InternalError representa falhas inesperadas em serviço ou repositório.
type InternalError struct {
	Msg string
	Err error // Erro original subjacente (e.g., falha de I/O)
}

func (e *InternalError) Error() string    { return fmt.Sprintf("Erro Interno: %s", e.Msg) }
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor para falhas não previstas.
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewFileError é um atalho para criar um InternalError de falha de arquivo.
func NewFileError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (arquivo): %s", msg, err.Error()), err)
}

// --- Helper para o Handler ---

// MapToHTTPStatus recebe um erro e o traduz para código HTTP, categoria e mensagem.
func MapToHTTPStatus(err error) (int, string, string) {
	if appErr, ok := err.(AppError); ok {
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}

	// Erro não tipado: tratar como erro interno genérico.
	return http.StatusInternalServerError, "UNKNOWN_ERROR", "Ocorreu um erro inesperado."
}
