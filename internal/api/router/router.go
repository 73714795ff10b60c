package router

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "agendafarma/docs" // registro da documentação gerada pelo swag

	"agendafarma/internal/api/agendamento"
	"agendafarma/internal/api/usuario"
)

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
func NewRouter(agendamentoHandler *agendamento.Handler, usuarioHandler *usuario.Handler) http.Handler {
	r := mux.NewRouter()

	// --- 1. Rotas de Agendamentos ---
	// "/agendamentos/todos" precisa vir antes da rota com {id}.
	r.HandleFunc("/agendamentos/", agendamentoHandler.CriarHandler).Methods(http.MethodPost)
	r.HandleFunc("/agendamentos/todos", agendamentoHandler.ListarTodosHandler).Methods(http.MethodGet)
	r.HandleFunc("/agendamentos/{id}", agendamentoHandler.BuscarPorIDHandler).Methods(http.MethodGet)
	r.HandleFunc("/agendamentos/{id}", agendamentoHandler.AtualizarHandler).Methods(http.MethodPut)
	r.HandleFunc("/agendamentos/{id}", agendamentoHandler.CancelarHandler).Methods(http.MethodDelete)

	// --- 2. Rotas de Usuários ---
	// "/usuarios/multiplos/" precisa vir antes da rota com {id}.
	r.HandleFunc("/usuarios/", usuarioHandler.CriarHandler).Methods(http.MethodPost)
	r.HandleFunc("/usuarios/", usuarioHandler.ListarTodosHandler).Methods(http.MethodGet)
	r.HandleFunc("/usuarios/multiplos/", usuarioHandler.CriarVariosHandler).Methods(http.MethodPost)
	r.HandleFunc("/usuarios/{id}", usuarioHandler.BuscarPorIDHandler).Methods(http.MethodGet)
	r.HandleFunc("/usuarios/{id}", usuarioHandler.AtualizarHandler).Methods(http.MethodPut)
	r.HandleFunc("/usuarios/{id}", usuarioHandler.DeletarHandler).Methods(http.MethodDelete)

	// --- 3. Health Check e Documentação ---
	r.HandleFunc("/ping", PingHandler).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Middleware global de access log.
	return handlers.LoggingHandler(os.Stdout, r)
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
