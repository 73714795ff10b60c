package usuariorepo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"agendafarma/internal/domain"
	apperror "agendafarma/internal/errors"
	"agendafarma/internal/pkg/logger"
)

// UsuarioRepository implementa domain.UsuarioRepository sobre um arquivo
// JSON contendo o array completo de usuários. Cada operação relê o arquivo
// do zero e cada mutação o reescreve por inteiro; nenhuma cópia da coleção
// permanece em memória entre requisições.
type UsuarioRepository struct {
	filePath string
	logger   logger.Logger
}

// NewUsuarioRepository cria uma nova instância do repositório apontando para
// o arquivo de usuários configurado.
func NewUsuarioRepository(filePath string, log logger.Logger) *UsuarioRepository {
	return &UsuarioRepository{filePath: filePath, logger: log}
}

// ler carrega a coleção inteira. Arquivo ausente é coleção vazia, não erro.
func (r *UsuarioRepository) ler() ([]domain.Usuario, error) {
	b, err := os.ReadFile(r.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Usuario{}, nil
		}
		r.logger.Error("Falha ao ler arquivo de usuários.", err)
		return nil, apperror.NewFileError("falha ao ler usuários", err)
	}

	var usuarios []domain.Usuario
	if err := json.Unmarshal(b, &usuarios); err != nil {
		r.logger.Error("Arquivo de usuários com JSON inválido.", err)
		return nil, apperror.NewFileError("arquivo de usuários corrompido", err)
	}
	return usuarios, nil
}

// gravar reescreve a coleção inteira. A escrita passa por um arquivo
// temporário seguido de rename, para nunca deixar o arquivo pela metade.
func (r *UsuarioRepository) gravar(usuarios []domain.Usuario) error {
	b, err := json.MarshalIndent(usuarios, "", "    ")
	if err != nil {
		return apperror.NewFileError("falha ao serializar usuários", err)
	}

	dir := filepath.Dir(r.filePath)
	tmp, err := os.CreateTemp(dir, ".usuarios-*.json")
	if err != nil {
		r.logger.Error("Falha ao criar arquivo temporário de usuários.", err)
		return apperror.NewFileError("falha ao gravar usuários", err)
	}

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		r.logger.Error("Falha ao escrever arquivo temporário de usuários.", err)
		return apperror.NewFileError("falha ao gravar usuários", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return apperror.NewFileError("falha ao gravar usuários", err)
	}

	if err := os.Rename(tmp.Name(), r.filePath); err != nil {
		os.Remove(tmp.Name())
		r.logger.Error("Falha ao substituir arquivo de usuários.", err)
		return apperror.NewFileError("falha ao gravar usuários", err)
	}
	return nil
}

func emailCadastrado(usuarios []domain.Usuario, email, excludeID string) bool {
	for _, u := range usuarios {
		if u.Email == email && u.ID != excludeID {
			return true
		}
	}
	return false
}

// Salvar acrescenta um usuário novo, rejeitando e-mail já presente na coleção.
func (r *UsuarioRepository) Salvar(ctx context.Context, usuario domain.Usuario) (domain.Usuario, error) {
	usuarios, err := r.ler()
	if err != nil {
		return domain.Usuario{}, err
	}

	if emailCadastrado(usuarios, usuario.Email, "") {
		r.logger.Warn("Tentativa de cadastro com e-mail duplicado.", map[string]interface{}{"email": usuario.Email})
		return domain.Usuario{}, apperror.NewConflictError("E-mail já cadastrado.")
	}

	usuario.ID = uuid.NewString()
	usuarios = append(usuarios, usuario)

	if err := r.gravar(usuarios); err != nil {
		return domain.Usuario{}, err
	}

	r.logger.Info("Usuário salvo no repositório.", map[string]interface{}{"id": usuario.ID, "email": usuario.Email})
	return usuario, nil
}

// SalvarVarios acrescenta um lote de usuários. A checagem de duplicidade é
// feita contra a coleção como estava antes do lote; o primeiro conflito
// aborta tudo sem gravar nenhum registro.
func (r *UsuarioRepository) SalvarVarios(ctx context.Context, novos []domain.Usuario) ([]domain.Usuario, error) {
	usuarios, err := r.ler()
	if err != nil {
		return nil, err
	}

	criados := make([]domain.Usuario, 0, len(novos))
	for _, u := range novos {
		if emailCadastrado(usuarios, u.Email, "") {
			r.logger.Warn("Lote de usuários abortado por e-mail duplicado.", map[string]interface{}{"email": u.Email})
			return nil, apperror.NewConflictError(fmt.Sprintf("O e-mail %s já está cadastrado.", u.Email))
		}
		u.ID = uuid.NewString()
		criados = append(criados, u)
	}

	if err := r.gravar(append(usuarios, criados...)); err != nil {
		return nil, err
	}

	r.logger.Info("Lote de usuários salvo no repositório.", map[string]interface{}{"count": len(criados)})
	return criados, nil
}

// BuscarPorID localiza um usuário pelo id.
func (r *UsuarioRepository) BuscarPorID(ctx context.Context, id string) (domain.Usuario, error) {
	usuarios, err := r.ler()
	if err != nil {
		return domain.Usuario{}, err
	}

	for _, u := range usuarios {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.Usuario{}, apperror.NewNotFoundError("Usuario não encontrado.")
}

// ListarTodos retorna a coleção inteira do arquivo.
func (r *UsuarioRepository) ListarTodos(ctx context.Context) ([]domain.Usuario, error) {
	return r.ler()
}

// Atualizar aplica uma atualização parcial de nome e/ou e-mail. Mudança de
// e-mail reverifica unicidade contra o resto da coleção.
func (r *UsuarioRepository) Atualizar(ctx context.Context, id string, update domain.UsuarioUpdate) (domain.Usuario, error) {
	usuarios, err := r.ler()
	if err != nil {
		return domain.Usuario{}, err
	}

	idx := -1
	for i, u := range usuarios {
		if u.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Usuario{}, apperror.NewNotFoundError("Usuario não encontrado.")
	}

	if update.Email != "" && update.Email != usuarios[idx].Email {
		if emailCadastrado(usuarios, update.Email, id) {
			r.logger.Warn("Atualização rejeitada por e-mail duplicado.", map[string]interface{}{"id": id, "email": update.Email})
			return domain.Usuario{}, apperror.NewConflictError("E-mail já cadastrado.")
		}
	}

	if update.Nome != "" {
		usuarios[idx].Nome = update.Nome
	}
	if update.Email != "" {
		usuarios[idx].Email = update.Email
	}

	if err := r.gravar(usuarios); err != nil {
		return domain.Usuario{}, err
	}

	r.logger.Info("Usuário atualizado no repositório.", map[string]interface{}{"id": id})
	return usuarios[idx], nil
}

// Deletar remove definitivamente o usuário indicado.
func (r *UsuarioRepository) Deletar(ctx context.Context, id string) error {
	usuarios, err := r.ler()
	if err != nil {
		return err
	}

	restantes := usuarios[:0:0]
	encontrado := false
	for _, u := range usuarios {
		if u.ID == id {
			encontrado = true
			continue
		}
		restantes = append(restantes, u)
	}
	if !encontrado {
		return apperror.NewNotFoundError("Usuario não encontrado.")
	}

	if err := r.gravar(restantes); err != nil {
		return err
	}

	r.logger.Info("Usuário removido do repositório.", map[string]interface{}{"id": id})
	return nil
}

var _ domain.UsuarioRepository = (*UsuarioRepository)(nil)
