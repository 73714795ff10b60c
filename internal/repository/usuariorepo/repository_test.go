package usuariorepo_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"agendafarma/internal/domain"
	apperror "agendafarma/internal/errors"
	"agendafarma/internal/pkg/logger"
	"agendafarma/internal/repository/usuariorepo"
)

func novoRepo(t *testing.T) (*usuariorepo.UsuarioRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "usuarios_farmacia.json")
	return usuariorepo.NewUsuarioRepository(path, logger.NewLogger("error")), path
}

func usuario(nome, email string) domain.Usuario {
	return domain.Usuario{
		Nome:           nome,
		Email:          email,
		DataNascimento: domain.Data{Time: time.Date(1990, time.May, 10, 0, 0, 0, 0, time.Local)},
	}
}

func lerArquivo(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	b, err := os.ReadFile(path)
	assert.NoError(t, err)
	var out []map[string]interface{}
	assert.NoError(t, json.Unmarshal(b, &out))
	return out
}

func TestListarTodos_ArquivoAusenteEhColecaoVazia(t *testing.T) {
	repo, _ := novoRepo(t)

	usuarios, err := repo.ListarTodos(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, usuarios)
}

func TestSalvar_GravaArquivoComFormatoEsperado(t *testing.T) {
	repo, path := novoRepo(t)

	criado, err := repo.Salvar(context.Background(), usuario("Maria Silva", "maria@x.com"))

	assert.NoError(t, err)
	assert.NotEqual(t, "", criado.ID)

	registros := lerArquivo(t, path)
	assert.Len(t, registros, 1)
	assert.Equal(t, criado.ID, registros[0]["id"])
	assert.Equal(t, "Maria Silva", registros[0]["nome"])
	assert.Equal(t, "maria@x.com", registros[0]["email"])
	assert.Equal(t, "1990-05-10", registros[0]["dataNascimento"])
}

func TestSalvar_Fail_EmailDuplicado(t *testing.T) {
	repo, path := novoRepo(t)
	ctx := context.Background()

	_, err := repo.Salvar(ctx, usuario("Maria", "a@x.com"))
	assert.NoError(t, err)

	_, err = repo.Salvar(ctx, usuario("Outra Maria", "a@x.com"))
	assert.Error(t, err)
	assert.IsType(t, &apperror.ConflictError{}, err)

	// nada foi gravado além do primeiro registro
	assert.Len(t, lerArquivo(t, path), 1)
}

func TestSalvarVarios_TudoOuNada(t *testing.T) {
	repo, path := novoRepo(t)
	ctx := context.Background()

	_, err := repo.Salvar(ctx, usuario("Maria", "a@x.com"))
	assert.NoError(t, err)

	// lote com um e-mail em conflito: nenhum registro do lote é persistido
	lote := []domain.Usuario{
		usuario("João", "joao@x.com"),
		usuario("Clone", "a@x.com"),
		usuario("Ana", "ana@x.com"),
	}
	criados, err := repo.SalvarVarios(ctx, lote)

	assert.Error(t, err)
	assert.IsType(t, &apperror.ConflictError{}, err)
	assert.Contains(t, err.Error(), "a@x.com")
	assert.Nil(t, criados)
	assert.Len(t, lerArquivo(t, path), 1)
}

func TestSalvarVarios_Success(t *testing.T) {
	repo, path := novoRepo(t)

	criados, err := repo.SalvarVarios(context.Background(), []domain.Usuario{
		usuario("João", "joao@x.com"),
		usuario("Ana", "ana@x.com"),
	})

	assert.NoError(t, err)
	assert.Len(t, criados, 2)
	assert.NotEqual(t, criados[0].ID, criados[1].ID)
	assert.Len(t, lerArquivo(t, path), 2)
}

func TestBuscarPorID(t *testing.T) {
	repo, _ := novoRepo(t)
	ctx := context.Background()

	criado, _ := repo.Salvar(ctx, usuario("Maria", "maria@x.com"))

	achado, err := repo.BuscarPorID(ctx, criado.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Maria", achado.Nome)

	_, err = repo.BuscarPorID(ctx, "fantasma")
	assert.Error(t, err)
	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestAtualizar_Parcial(t *testing.T) {
	repo, _ := novoRepo(t)
	ctx := context.Background()

	criado, _ := repo.Salvar(ctx, usuario("Maria", "maria@x.com"))

	// só o nome muda; e-mail fica como estava
	atualizado, err := repo.Atualizar(ctx, criado.ID, domain.UsuarioUpdate{Nome: "Maria Santos"})
	assert.NoError(t, err)
	assert.Equal(t, "Maria Santos", atualizado.Nome)
	assert.Equal(t, "maria@x.com", atualizado.Email)

	// atualização sobrevive à releitura do arquivo
	relido, err := repo.BuscarPorID(ctx, criado.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Maria Santos", relido.Nome)
}

func TestAtualizar_Fail_EmailDeOutroUsuario(t *testing.T) {
	repo, _ := novoRepo(t)
	ctx := context.Background()

	_, err := repo.Salvar(ctx, usuario("Maria", "a@x.com"))
	assert.NoError(t, err)
	outro, _ := repo.Salvar(ctx, usuario("João", "joao@x.com"))

	_, err = repo.Atualizar(ctx, outro.ID, domain.UsuarioUpdate{Email: "a@x.com"})
	assert.Error(t, err)
	assert.IsType(t, &apperror.ConflictError{}, err)
}

func TestAtualizar_ProprioEmailNaoConflita(t *testing.T) {
	repo, _ := novoRepo(t)
	ctx := context.Background()

	criado, _ := repo.Salvar(ctx, usuario("Maria", "maria@x.com"))

	_, err := repo.Atualizar(ctx, criado.ID, domain.UsuarioUpdate{Nome: "Maria S.", Email: "maria@x.com"})
	assert.NoError(t, err)
}

func TestAtualizar_Fail_NaoEncontrado(t *testing.T) {
	repo, _ := novoRepo(t)

	_, err := repo.Atualizar(context.Background(), "fantasma", domain.UsuarioUpdate{Nome: "X"})
	assert.Error(t, err)
	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestDeletar_RemoveSomenteORegistro(t *testing.T) {
	repo, path := novoRepo(t)
	ctx := context.Background()

	a, _ := repo.Salvar(ctx, usuario("Maria", "a@x.com"))
	b, _ := repo.Salvar(ctx, usuario("João", "b@x.com"))

	assert.NoError(t, repo.Deletar(ctx, a.ID))

	registros := lerArquivo(t, path)
	assert.Len(t, registros, 1)
	assert.Equal(t, b.ID, registros[0]["id"])

	// e-mail liberado após a remoção
	_, err := repo.Salvar(ctx, usuario("Maria de novo", "a@x.com"))
	assert.NoError(t, err)
}

func TestDeletar_Fail_NaoEncontrado(t *testing.T) {
	repo, _ := novoRepo(t)

	err := repo.Deletar(context.Background(), "fantasma")
	assert.Error(t, err)
	assert.IsType(t, &apperror.NotFoundError{}, err)
}
