package usuarioservice

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"agendafarma/internal/domain"
	apperror "agendafarma/internal/errors"
	"agendafarma/internal/pkg/logger"
)

// Service implementa a interface domain.UsuarioService.
type Service struct {
	repo   domain.UsuarioRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Usuários.
func NewService(repo domain.UsuarioRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// Criar valida os campos obrigatórios e delega o cadastro ao repositório,
// que rejeita e-mail duplicado.
func (s *Service) Criar(ctx context.Context, usuario domain.Usuario) (domain.Usuario, error) {
	s.logger.Debug("Iniciando criação de usuário no serviço.", map[string]interface{}{"email": usuario.Email})

	if err := validarUsuario(usuario); err != nil {
		s.logger.Warn("Falha na validação do usuário.", map[string]interface{}{"email": usuario.Email, "error": err.Error()})
		return domain.Usuario{}, err
	}

	criado, err := s.repo.Salvar(ctx, usuario)
	if err != nil {
		return domain.Usuario{}, err
	}

	s.logger.Info("Usuário criado com sucesso.", map[string]interface{}{"id": criado.ID})
	return criado, nil
}

// CriarVarios valida o lote inteiro antes de delegar. O repositório garante
// tudo-ou-nada contra a coleção existente.
func (s *Service) CriarVarios(ctx context.Context, usuarios []domain.Usuario) ([]domain.Usuario, error) {
	s.logger.Debug("Iniciando criação de lote de usuários no serviço.", map[string]interface{}{"count": len(usuarios)})

	if len(usuarios) == 0 {
		return nil, apperror.NewValidationError("O lote de usuários não pode ser vazio.")
	}
	for i, u := range usuarios {
		if err := validarUsuario(u); err != nil {
			return nil, apperror.NewValidationError(fmt.Sprintf("Usuário %d do lote: %s", i+1, err.Error()))
		}
	}

	criados, err := s.repo.SalvarVarios(ctx, usuarios)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Lote de usuários criado com sucesso.", map[string]interface{}{"count": len(criados)})
	return criados, nil
}

// BuscarPorID retorna um usuário pelo id.
func (s *Service) BuscarPorID(ctx context.Context, id string) (domain.Usuario, error) {
	return s.repo.BuscarPorID(ctx, id)
}

// ListarTodos retorna a coleção inteira.
func (s *Service) ListarTodos(ctx context.Context) ([]domain.Usuario, error) {
	return s.repo.ListarTodos(ctx)
}

// Atualizar aplica uma atualização parcial de nome e/ou e-mail.
func (s *Service) Atualizar(ctx context.Context, id string, update domain.UsuarioUpdate) (domain.Usuario, error) {
	s.logger.Debug("Iniciando atualização de usuário no serviço.", map[string]interface{}{"id": id})

	if update.Nome == "" && update.Email == "" {
		return domain.Usuario{}, apperror.NewValidationError("Informe nome e/ou email para atualizar.")
	}
	if update.Email != "" && !emailValido(update.Email) {
		return domain.Usuario{}, apperror.NewValidationError("O email informado é inválido.")
	}

	atualizado, err := s.repo.Atualizar(ctx, id, update)
	if err != nil {
		return domain.Usuario{}, err
	}

	s.logger.Info("Usuário atualizado com sucesso.", map[string]interface{}{"id": id})
	return atualizado, nil
}

// Deletar remove definitivamente o usuário indicado.
func (s *Service) Deletar(ctx context.Context, id string) error {
	if err := s.repo.Deletar(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Usuário removido com sucesso.", map[string]interface{}{"id": id})
	return nil
}

func validarUsuario(u domain.Usuario) error {
	if strings.TrimSpace(u.Nome) == "" {
		return apperror.NewValidationError("O nome do usuário é obrigatório.")
	}
	if !emailValido(u.Email) {
		return apperror.NewValidationError("O email informado é inválido.")
	}
	if u.DataNascimento.IsZero() {
		return apperror.NewValidationError("A data de nascimento é obrigatória.")
	}
	return nil
}

// emailValido checa a sintaxe do endereço. Rejeita a forma com display name
// ("Fulano <f@x.com>"), que mail.ParseAddress aceitaria.
func emailValido(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

var _ domain.UsuarioService = (*Service)(nil)
