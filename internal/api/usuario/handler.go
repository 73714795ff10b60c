package usuario

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"agendafarma/internal/domain"
	apperror "agendafarma/internal/errors"
	"agendafarma/internal/pkg/logger"
)

// Handler agrupa todos os métodos de Handler de usuários.
type Handler struct {
	Service domain.UsuarioService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc domain.UsuarioService, log logger.Logger) *Handler {
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

// CriarHandler lida com a requisição POST /usuarios/.
// @Summary Cadastra um novo usuário
// @Description Cria um usuário com e-mail único na coleção.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param usuario body domain.Usuario true "Dados do usuário"
// @Success 201 {object} domain.Usuario "Usuário criado"
// @Failure 400 {object} domain.ErrorResponse "Dados inválidos ou e-mail já cadastrado"
// @Router /usuarios/ [post]
func (h *Handler) CriarHandler(w http.ResponseWriter, r *http.Request) {
	var usuario domain.Usuario
	if err := json.NewDecoder(r.Body).Decode(&usuario); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), http.StatusCreated)
		return
	}

	criado, err := h.Service.Criar(r.Context(), usuario)
	h.handleServiceResponse(w, r, criado, err, http.StatusCreated)
}

// CriarVariosHandler lida com a requisição POST /usuarios/multiplos/.
// @Summary Cadastra vários usuários de uma vez
// @Description Lote tudo-ou-nada: qualquer e-mail em conflito aborta o lote inteiro.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param usuarios body []domain.Usuario true "Lote de usuários"
// @Success 201 {array} domain.Usuario "Usuários criados"
// @Failure 400 {object} domain.ErrorResponse "Dados inválidos ou e-mail já cadastrado"
// @Router /usuarios/multiplos/ [post]
func (h *Handler) CriarVariosHandler(w http.ResponseWriter, r *http.Request) {
	var usuarios []domain.Usuario
	if err := json.NewDecoder(r.Body).Decode(&usuarios); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), http.StatusCreated)
		return
	}

	criados, err := h.Service.CriarVarios(r.Context(), usuarios)
	h.handleServiceResponse(w, r, criados, err, http.StatusCreated)
}

// ListarTodosHandler lida com a requisição GET /usuarios/.
// @Summary Lista todos os usuários
// @Tags usuarios
// @Produce json
// @Success 200 {array} domain.Usuario "Coleção de usuários"
// @Router /usuarios/ [get]
func (h *Handler) ListarTodosHandler(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.Service.ListarTodos(r.Context())
	if usuarios == nil {
		usuarios = []domain.Usuario{}
	}
	h.handleServiceResponse(w, r, usuarios, err, http.StatusOK)
}

// BuscarPorIDHandler lida com a requisição GET /usuarios/{id}.
// @Summary Busca um usuário por ID
// @Tags usuarios
// @Produce json
// @Param id path string true "ID do Usuário"
// @Success 200 {object} domain.Usuario "Usuário encontrado"
// @Failure 404 {object} domain.ErrorResponse "Usuário não encontrado"
// @Router /usuarios/{id} [get]
func (h *Handler) BuscarPorIDHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	usuario, err := h.Service.BuscarPorID(r.Context(), id)
	h.handleServiceResponse(w, r, usuario, err, http.StatusOK)
}

// AtualizarHandler lida com a requisição PUT /usuarios/{id}.
// @Summary Atualiza nome e/ou e-mail de um usuário
// @Tags usuarios
// @Accept json
// @Produce json
// @Param id path string true "ID do Usuário"
// @Param usuario body domain.UsuarioUpdate true "Campos a atualizar"
// @Success 200 {object} domain.Usuario "Usuário atualizado"
// @Failure 400 {object} domain.ErrorResponse "Dados inválidos ou e-mail já cadastrado"
// @Failure 404 {object} domain.ErrorResponse "Usuário não encontrado"
// @Router /usuarios/{id} [put]
func (h *Handler) AtualizarHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var update domain.UsuarioUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), http.StatusOK)
		return
	}

	atualizado, err := h.Service.Atualizar(r.Context(), id, update)
	h.handleServiceResponse(w, r, atualizado, err, http.StatusOK)
}

// DeletarHandler lida com a requisição DELETE /usuarios/{id}.
// @Summary Remove um usuário
// @Description Remoção definitiva do registro pelo id.
// @Tags usuarios
// @Produce json
// @Param id path string true "ID do Usuário"
// @Success 200 {object} domain.MensagemResponse "Usuário removido"
// @Failure 404 {object} domain.ErrorResponse "Usuário não encontrado"
// @Router /usuarios/{id} [delete]
func (h *Handler) DeletarHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.Deletar(r.Context(), id); err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	msg := domain.MensagemResponse{Message: fmt.Sprintf("Usuario com ID %s deletado com sucesso.", id)}
	h.handleServiceResponse(w, r, msg, nil, http.StatusOK)
}
