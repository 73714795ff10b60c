package agendamento

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"agendafarma/internal/domain"
	apperror "agendafarma/internal/errors"
	"agendafarma/internal/pkg/logger"
)

// Handler agrupa todos os métodos de Handler de agendamentos.
type Handler struct {
	Service domain.AgendamentoService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc domain.AgendamentoService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// handleServiceResponse processa erros de serviço e envia respostas padronizadas ao cliente.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)

		h.Logger.Info("Requisição concluída com sucesso", map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": successStatus,
		})

		if data != nil {
			if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
				h.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
				http.Error(w, "Erro ao codificar resposta", http.StatusInternalServerError)
			}
		}
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		h.Logger.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		h.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	})
}

// CriarHandler lida com a requisição POST /agendamentos/.
// @Summary Cria um novo agendamento
// @Description Reserva um horário cheio dentro do horário comercial para um usuário cadastrado.
// @Tags agendamentos
// @Accept json
// @Produce json
// @Param agendamento body domain.AgendamentoRequest true "Dados do agendamento"
// @Success 201 {object} domain.Agendamento "Agendamento criado"
// @Failure 400 {object} domain.ErrorResponse "Horário inválido, em conflito ou payload malformado"
// @Failure 404 {object} domain.ErrorResponse "Usuário referenciado não existe"
// @Router /agendamentos/ [post]
func (h *Handler) CriarHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req domain.AgendamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), http.StatusCreated)
		return
	}

	criado, err := h.Service.Criar(ctx, req)
	h.handleServiceResponse(w, r, criado, err, http.StatusCreated)
}

// AtualizarHandler lida com a requisição PUT /agendamentos/{id}.
// @Summary Atualiza um agendamento
// @Description Sobrescreve usuário, serviço e horário; o status nunca muda por esta rota.
// @Tags agendamentos
// @Accept json
// @Produce json
// @Param id path string true "ID do Agendamento"
// @Param agendamento body domain.AgendamentoRequest true "Novos dados do agendamento"
// @Success 200 {object} domain.Agendamento "Agendamento atualizado"
// @Failure 400 {object} domain.ErrorResponse "Horário em conflito"
// @Failure 404 {object} domain.ErrorResponse "Agendamento não encontrado"
// @Failure 422 {object} domain.ErrorResponse "Horário quebrado ou fora do expediente"
// @Router /agendamentos/{id} [put]
func (h *Handler) AtualizarHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	var req domain.AgendamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), http.StatusOK)
		return
	}

	atualizado, err := h.Service.Atualizar(ctx, id, req)
	h.handleServiceResponse(w, r, atualizado, err, http.StatusOK)
}

// ListarTodosHandler lida com a requisição GET /agendamentos/todos.
// @Summary Lista todos os agendamentos
// @Description Retorna a coleção inteira, ativos e cancelados, na ordem de criação.
// @Tags agendamentos
// @Produce json
// @Success 200 {array} domain.Agendamento "Coleção de agendamentos"
// @Router /agendamentos/todos [get]
func (h *Handler) ListarTodosHandler(w http.ResponseWriter, r *http.Request) {
	agendamentos, err := h.Service.ListarTodos(r.Context())
	if agendamentos == nil {
		agendamentos = []domain.Agendamento{}
	}
	h.handleServiceResponse(w, r, agendamentos, err, http.StatusOK)
}

// BuscarPorIDHandler lida com a requisição GET /agendamentos/{id}.
// @Summary Busca um agendamento por ID
// @Tags agendamentos
// @Produce json
// @Param id path string true "ID do Agendamento"
// @Success 200 {object} domain.Agendamento "Agendamento encontrado"
// @Failure 404 {object} domain.ErrorResponse "Agendamento não encontrado"
// @Router /agendamentos/{id} [get]
func (h *Handler) BuscarPorIDHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	agendamento, err := h.Service.BuscarPorID(r.Context(), id)
	h.handleServiceResponse(w, r, agendamento, err, http.StatusOK)
}

// CancelarHandler lida com a requisição DELETE /agendamentos/{id}.
// @Summary Cancela um agendamento
// @Description Muda o status de ATIVO para CANCELADO; o registro permanece na coleção.
// @Tags agendamentos
// @Produce json
// @Param id path string true "ID do Agendamento"
// @Success 200 {object} domain.MensagemResponse "Agendamento cancelado"
// @Failure 404 {object} domain.ErrorResponse "Agendamento não encontrado ou já cancelado"
// @Router /agendamentos/{id} [delete]
func (h *Handler) CancelarHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.Cancelar(r.Context(), id); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	msg := domain.MensagemResponse{Message: fmt.Sprintf("Agendamento com ID %s cancelado com sucesso.", id)}
	h.handleServiceResponse(w, r, msg, nil, http.StatusOK)
}
