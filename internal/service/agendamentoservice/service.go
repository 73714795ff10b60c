package agendamentoservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"agendafarma/internal/domain"
	apperror "agendafarma/internal/errors"
	"agendafarma/internal/pkg/logger"
)

// Horário comercial da farmácia: agendamentos das 09:00 às 17:00, inclusive,
// sempre em horários cheios.
const (
	horaAbertura   = 9
	horaFechamento = 17
)

// Service implementa a interface domain.AgendamentoService.
type Service struct {
	repo     domain.AgendamentoRepository
	usuarios domain.UsuarioRepository
	logger   logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Agendamentos.
// O repositório de usuários é usado na criação para resolver o usuário
// referenciado.
func NewService(repo domain.AgendamentoRepository, usuarios domain.UsuarioRepository, log logger.Logger) *Service {
	return &Service{
		repo:     repo,
		usuarios: usuarios,
		logger:   log,
	}
}

// Criar valida o horário pedido, resolve o usuário referenciado e grava o
// novo agendamento com status ATIVO.
//
// Ordem das checagens: horário cheio -> horário comercial -> data futura ->
// conflito de horário -> existência do usuário.
func (s *Service) Criar(ctx context.Context, req domain.AgendamentoRequest) (domain.Agendamento, error) {
	s.logger.Debug("Iniciando criação de agendamento no serviço.", map[string]interface{}{
		"idUsuario": req.IDUsuario,
		"dataHora":  req.DataHora.Format(domain.LayoutDataHora),
	})

	if strings.TrimSpace(req.Servico) == "" {
		return domain.Agendamento{}, apperror.NewValidationError("O serviço do agendamento é obrigatório.")
	}

	if !horaCheia(req.DataHora) {
		return domain.Agendamento{}, apperror.NewValidationError("Agendamentos só podem ser marcados em horários cheios (ex: 10:00, 11:00).")
	}
	if !dentroDoExpediente(req.DataHora) {
		return domain.Agendamento{}, apperror.NewValidationError("Agendamentos devem ser dentro do horário comercial (9h às 17h).")
	}
	if !req.DataHora.After(time.Now()) {
		return domain.Agendamento{}, apperror.NewValidationError("A data e hora do agendamento devem ser futuras.")
	}

	disponivel, err := s.repo.HorarioDisponivel(ctx, req.DataHora, "")
	if err != nil {
		s.logger.Error("Falha ao verificar disponibilidade de horário.", err)
		return domain.Agendamento{}, err
	}
	if !disponivel {
		return domain.Agendamento{}, apperror.NewValidationError("Este horário já está reservado.")
	}

	usuario, err := s.usuarios.BuscarPorID(ctx, req.IDUsuario)
	if err != nil {
		var notFound *apperror.NotFoundError
		if errors.As(err, &notFound) {
			s.logger.Warn("Agendamento para usuário inexistente.", map[string]interface{}{"idUsuario": req.IDUsuario})
			return domain.Agendamento{}, apperror.NewNotFoundError("Usuário não encontrado.")
		}
		return domain.Agendamento{}, err
	}

	novo := domain.Agendamento{
		// O campo idUsuario recebe o NOME do usuário resolvido, não o id.
		// Contrato histórico da API; mudar quebraria os clientes existentes.
		IDUsuario: usuario.Nome,
		Servico:   req.Servico,
		DataHora:  req.DataHora,
		Status:    domain.StatusAtivo,
	}

	criado, err := s.repo.Salvar(ctx, novo)
	if err != nil {
		s.logger.Error("Falha ao salvar agendamento no repositório.", err)
		return domain.Agendamento{}, err
	}

	s.logger.Info("Agendamento criado com sucesso.", map[string]interface{}{"id": criado.ID})
	return criado, nil
}

// BuscarPorID retorna um agendamento pelo id, em qualquer status.
func (s *Service) BuscarPorID(ctx context.Context, id string) (domain.Agendamento, error) {
	return s.repo.BuscarPorID(ctx, id)
}

// ListarTodos retorna a coleção inteira, na ordem de inserção.
func (s *Service) ListarTodos(ctx context.Context) ([]domain.Agendamento, error) {
	return s.repo.ListarTodos(ctx)
}

// Atualizar revalida o novo horário (excluindo o próprio agendamento da
// checagem de conflito) e sobrescreve usuário, serviço e horário. O status
// nunca muda pelo PUT, e o idUsuario é gravado como veio no payload.
//
// Violações de horário cheio/expediente respondem 422 nesta rota; conflito
// de horário responde 400. Assimetria mantida do contrato da API.
func (s *Service) Atualizar(ctx context.Context, id string, req domain.AgendamentoRequest) (domain.Agendamento, error) {
	s.logger.Debug("Iniciando atualização de agendamento no serviço.", map[string]interface{}{"id": id})

	existente, err := s.repo.BuscarPorID(ctx, id)
	if err != nil {
		return domain.Agendamento{}, err
	}

	if !horaCheia(req.DataHora) {
		return domain.Agendamento{}, apperror.NewUnprocessableError("Agendamentos só podem ser marcados em horários cheios (ex: 10:00, 11:00).")
	}
	if !dentroDoExpediente(req.DataHora) {
		return domain.Agendamento{}, apperror.NewUnprocessableError("Agendamentos devem ser dentro do horário comercial (9h às 17h).")
	}

	disponivel, err := s.repo.HorarioDisponivel(ctx, req.DataHora, existente.ID)
	if err != nil {
		s.logger.Error("Falha ao verificar disponibilidade de horário.", err)
		return domain.Agendamento{}, err
	}
	if !disponivel {
		return domain.Agendamento{}, apperror.NewValidationError("Este horário está indisponível.")
	}

	existente.IDUsuario = req.IDUsuario
	existente.Servico = req.Servico
	existente.DataHora = req.DataHora

	atualizado, err := s.repo.Atualizar(ctx, existente)
	if err != nil {
		s.logger.Error("Falha ao atualizar agendamento no repositório.", err)
		return domain.Agendamento{}, err
	}

	s.logger.Info("Agendamento atualizado com sucesso.", map[string]interface{}{"id": id})
	return atualizado, nil
}

// Cancelar muda o status para CANCELADO. Id desconhecido e agendamento já
// cancelado respondem igualmente como não encontrado.
func (s *Service) Cancelar(ctx context.Context, id string) error {
	if err := s.repo.Cancelar(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Agendamento cancelado com sucesso.", map[string]interface{}{"id": id})
	return nil
}

// horaCheia verifica alinhamento exato na hora (minuto e segundo zerados).
func horaCheia(d domain.DataHora) bool {
	return d.Minute() == 0 && d.Second() == 0
}

// dentroDoExpediente verifica a janela de 09:00 a 17:00, inclusive nas pontas.
// Sempre chamada depois de horaCheia, então comparar a hora basta.
func dentroDoExpediente(d domain.DataHora) bool {
	h := d.Hour()
	return h >= horaAbertura && h <= horaFechamento
}

var _ domain.AgendamentoService = (*Service)(nil)
