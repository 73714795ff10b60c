package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"agendafarma/internal/api/agendamento"
	"agendafarma/internal/api/router"
	"agendafarma/internal/api/usuario"
	"agendafarma/internal/domain"
	"agendafarma/internal/pkg/logger"
	"agendafarma/internal/repository/agendamentorepo"
	"agendafarma/internal/repository/usuariorepo"
	"agendafarma/internal/service/agendamentoservice"
	"agendafarma/internal/service/usuarioservice"
)

// novoServidor monta a aplicação inteira com repositórios reais (arquivo de
// usuários em diretório temporário) e retorna um servidor de teste.
func novoServidor(t *testing.T) *httptest.Server {
	t.Helper()

	log := logger.NewLogger("error")
	agendamentoRepo := agendamentorepo.NewAgendamentoRepository(log)
	usuarioRepo := usuariorepo.NewUsuarioRepository(filepath.Join(t.TempDir(), "usuarios_farmacia.json"), log)

	agendamentoHandler := agendamento.NewHandler(agendamentoservice.NewService(agendamentoRepo, usuarioRepo, log), log)
	usuarioHandler := usuario.NewHandler(usuarioservice.NewService(usuarioRepo, log), log)

	srv := httptest.NewServer(router.NewRouter(agendamentoHandler, usuarioHandler))
	t.Cleanup(srv.Close)
	return srv
}

func requisicao(t *testing.T, srv *httptest.Server, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	assert.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	resp.Body.Close()
	return resp, raw
}

func criarUsuario(t *testing.T, srv *httptest.Server, nome, email string) domain.Usuario {
	t.Helper()

	payload := map[string]string{
		"nome":           nome,
		"email":          email,
		"dataNascimento": "1990-05-10",
	}
	resp, raw := requisicao(t, srv, http.MethodPost, "/usuarios/", payload)
	assert.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var criado domain.Usuario
	assert.NoError(t, json.Unmarshal(raw, &criado))
	return criado
}

func TestPing(t *testing.T) {
	srv := novoServidor(t)

	resp, raw := requisicao(t, srv, http.MethodGet, "/ping", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(raw))
}

func TestCicloDeVidaDoAgendamento(t *testing.T) {
	srv := novoServidor(t)
	maria := criarUsuario(t, srv, "Maria Silva", "maria@x.com")

	// criação em horário válido -> 201, status ATIVO, idUsuario = nome
	resp, raw := requisicao(t, srv, http.MethodPost, "/agendamentos/", map[string]string{
		"idUsuario": maria.ID,
		"servico":   "Vacina",
		"dataHora":  "2099-01-01T10:00:00",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var criado domain.Agendamento
	assert.NoError(t, json.Unmarshal(raw, &criado))
	assert.NotEqual(t, "", criado.ID)
	assert.Equal(t, domain.StatusAtivo, criado.Status)
	assert.Equal(t, "Maria Silva", criado.IDUsuario)

	// mesmo horário de novo -> 400 (conflito de slot)
	resp, raw = requisicao(t, srv, http.MethodPost, "/agendamentos/", map[string]string{
		"idUsuario": maria.ID,
		"servico":   "Vacina",
		"dataHora":  "2099-01-01T10:00:00",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(raw))

	// atualização para horário livre -> 200
	resp, raw = requisicao(t, srv, http.MethodPut, "/agendamentos/"+criado.ID, map[string]string{
		"idUsuario": maria.ID,
		"servico":   "Vacina",
		"dataHora":  "2099-01-01T11:00:00",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var atualizado domain.Agendamento
	assert.NoError(t, json.Unmarshal(raw, &atualizado))
	assert.Equal(t, "2099-01-01T11:00:00", atualizado.DataHora.Format(domain.LayoutDataHora))
	assert.Equal(t, domain.StatusAtivo, atualizado.Status)

	// cancelamento -> 200, status vira CANCELADO
	resp, _ = requisicao(t, srv, http.MethodDelete, "/agendamentos/"+criado.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw = requisicao(t, srv, http.MethodGet, "/agendamentos/"+criado.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var cancelado domain.Agendamento
	assert.NoError(t, json.Unmarshal(raw, &cancelado))
	assert.Equal(t, domain.StatusCancelado, cancelado.Status)

	// cancelar de novo -> 404
	resp, _ = requisicao(t, srv, http.MethodDelete, "/agendamentos/"+criado.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCriarAgendamento_Falhas(t *testing.T) {
	srv := novoServidor(t)
	maria := criarUsuario(t, srv, "Maria Silva", "maria@x.com")

	casos := []struct {
		nome     string
		dataHora string
		status   int
	}{
		{"hora quebrada", "2099-01-01T10:30:00", http.StatusBadRequest},
		{"fora do expediente", "2099-01-01T08:00:00", http.StatusBadRequest},
		{"depois do fechamento", "2099-01-01T18:00:00", http.StatusBadRequest},
		{"data passada", "2020-01-01T10:00:00", http.StatusBadRequest},
	}
	for _, caso := range casos {
		resp, raw := requisicao(t, srv, http.MethodPost, "/agendamentos/", map[string]string{
			"idUsuario": maria.ID,
			"servico":   "Vacina",
			"dataHora":  caso.dataHora,
		})
		assert.Equal(t, caso.status, resp.StatusCode, "%s: %s", caso.nome, raw)
	}

	// usuário inexistente -> 404
	resp, _ := requisicao(t, srv, http.MethodPost, "/agendamentos/", map[string]string{
		"idUsuario": "nao-existe",
		"servico":   "Vacina",
		"dataHora":  "2099-01-01T12:00:00",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAtualizarAgendamento_HoraInvalidaRetorna422(t *testing.T) {
	srv := novoServidor(t)
	maria := criarUsuario(t, srv, "Maria Silva", "maria@x.com")

	resp, raw := requisicao(t, srv, http.MethodPost, "/agendamentos/", map[string]string{
		"idUsuario": maria.ID,
		"servico":   "Vacina",
		"dataHora":  "2099-01-01T10:00:00",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var criado domain.Agendamento
	assert.NoError(t, json.Unmarshal(raw, &criado))

	resp, raw = requisicao(t, srv, http.MethodPut, "/agendamentos/"+criado.ID, map[string]string{
		"idUsuario": maria.ID,
		"servico":   "Vacina",
		"dataHora":  "2099-01-01T10:30:00",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, string(raw))

	var errResp domain.ErrorResponse
	assert.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "UNPROCESSABLE_ENTITY", errResp.Category)
}

func TestAtualizarAgendamento_ConflitoComOutroAtivo(t *testing.T) {
	srv := novoServidor(t)
	maria := criarUsuario(t, srv, "Maria Silva", "maria@x.com")

	criar := func(hora string) domain.Agendamento {
		resp, raw := requisicao(t, srv, http.MethodPost, "/agendamentos/", map[string]string{
			"idUsuario": maria.ID,
			"servico":   "Vacina",
			"dataHora":  hora,
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
		var ag domain.Agendamento
		assert.NoError(t, json.Unmarshal(raw, &ag))
		return ag
	}

	primeiro := criar("2099-01-01T10:00:00")
	segundo := criar("2099-01-01T11:00:00")

	// mover o segundo para o horário do primeiro -> 400
	resp, _ := requisicao(t, srv, http.MethodPut, "/agendamentos/"+segundo.ID, map[string]string{
		"idUsuario": maria.ID,
		"servico":   "Vacina",
		"dataHora":  "2099-01-01T10:00:00",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// atualizar o primeiro para o próprio horário -> 200
	resp, _ = requisicao(t, srv, http.MethodPut, "/agendamentos/"+primeiro.ID, map[string]string{
		"idUsuario": maria.ID,
		"servico":   "Vacina",
		"dataHora":  "2099-01-01T10:00:00",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListarAgendamentos(t *testing.T) {
	srv := novoServidor(t)

	// coleção vazia responde array vazio, não null
	resp, raw := requisicao(t, srv, http.MethodGet, "/agendamentos/todos", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", string(raw))

	maria := criarUsuario(t, srv, "Maria Silva", "maria@x.com")
	for _, hora := range []string{"2099-01-01T10:00:00", "2099-01-01T11:00:00"} {
		resp, _ := requisicao(t, srv, http.MethodPost, "/agendamentos/", map[string]string{
			"idUsuario": maria.ID,
			"servico":   "Vacina",
			"dataHora":  hora,
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, raw = requisicao(t, srv, http.MethodGet, "/agendamentos/todos", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var todos []domain.Agendamento
	assert.NoError(t, json.Unmarshal(raw, &todos))
	assert.Len(t, todos, 2)
	// ordem de inserção preservada
	assert.Equal(t, "2099-01-01T10:00:00", todos[0].DataHora.Format(domain.LayoutDataHora))
}

func TestCicloDeVidaDoUsuario(t *testing.T) {
	srv := novoServidor(t)

	maria := criarUsuario(t, srv, "Maria Silva", "a@x.com")

	// e-mail repetido -> 400
	resp, raw := requisicao(t, srv, http.MethodPost, "/usuarios/", map[string]string{
		"nome":           "Outra Maria",
		"email":          "a@x.com",
		"dataNascimento": "1985-01-01",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(raw))

	var errResp domain.ErrorResponse
	assert.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "CONFLICT", errResp.Category)

	// atualizar o e-mail de outro usuário para um já usado -> 400
	joao := criarUsuario(t, srv, "João Souza", "joao@x.com")
	resp, _ = requisicao(t, srv, http.MethodPut, "/usuarios/"+joao.ID, map[string]string{
		"email": "a@x.com",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// atualização válida -> 200
	resp, raw = requisicao(t, srv, http.MethodPut, "/usuarios/"+joao.ID, map[string]string{
		"nome": "João S. Souza",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var atualizado domain.Usuario
	assert.NoError(t, json.Unmarshal(raw, &atualizado))
	assert.Equal(t, "João S. Souza", atualizado.Nome)
	assert.Equal(t, "joao@x.com", atualizado.Email)

	// busca por id -> 200; id desconhecido -> 404
	resp, _ = requisicao(t, srv, http.MethodGet, "/usuarios/"+maria.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = requisicao(t, srv, http.MethodGet, "/usuarios/fantasma", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// remoção -> 200; repetir -> 404; o outro usuário permanece
	resp, _ = requisicao(t, srv, http.MethodDelete, "/usuarios/"+maria.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = requisicao(t, srv, http.MethodDelete, "/usuarios/"+maria.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, raw = requisicao(t, srv, http.MethodGet, "/usuarios/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var restantes []domain.Usuario
	assert.NoError(t, json.Unmarshal(raw, &restantes))
	assert.Len(t, restantes, 1)
	assert.Equal(t, joao.ID, restantes[0].ID)
}

func TestCriarVariosUsuarios(t *testing.T) {
	srv := novoServidor(t)
	criarUsuario(t, srv, "Maria Silva", "a@x.com")

	lote := func(emails ...string) []map[string]string {
		out := make([]map[string]string, 0, len(emails))
		for i, email := range emails {
			out = append(out, map[string]string{
				"nome":           fmt.Sprintf("Usuário %d", i+1),
				"email":          email,
				"dataNascimento": "1990-05-10",
			})
		}
		return out
	}

	// lote com conflito -> 400 e nenhum registro novo
	resp, raw := requisicao(t, srv, http.MethodPost, "/usuarios/multiplos/", lote("b@x.com", "a@x.com"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(raw))

	resp, raw = requisicao(t, srv, http.MethodGet, "/usuarios/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var usuarios []domain.Usuario
	assert.NoError(t, json.Unmarshal(raw, &usuarios))
	assert.Len(t, usuarios, 1)

	// lote válido -> 201 com ids atribuídos
	resp, raw = requisicao(t, srv, http.MethodPost, "/usuarios/multiplos/", lote("b@x.com", "c@x.com"))
	assert.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var criados []domain.Usuario
	assert.NoError(t, json.Unmarshal(raw, &criados))
	assert.Len(t, criados, 2)
	for _, u := range criados {
		assert.NotEqual(t, "", u.ID)
	}
}

func TestPayloadInvalido(t *testing.T) {
	srv := novoServidor(t)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/usuarios/", bytes.NewReader([]byte("{nao-e-json")))
	assert.NoError(t, err)
	resp, err := srv.Client().Do(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
