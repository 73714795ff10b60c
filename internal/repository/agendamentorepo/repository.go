package agendamentorepo

import (
	"context"

	"github.com/google/uuid"

	"agendafarma/internal/domain"
	apperror "agendafarma/internal/errors"
	"agendafarma/internal/pkg/logger"
)

// AgendamentoRepository implementa domain.AgendamentoRepository sobre uma
// coleção em memória, na ordem de inserção. A coleção vive enquanto o
// processo viver: cancelamento muda o status, nunca remove o registro.
//
// Não há trava: duas requisições simultâneas podem passar pela checagem de
// disponibilidade antes de qualquer uma gravar. Limitação conhecida do
// desenho atual, herdada do contrato da API.
type AgendamentoRepository struct {
	agendamentos []domain.Agendamento
	logger       logger.Logger
}

// NewAgendamentoRepository cria uma nova instância do repositório.
func NewAgendamentoRepository(log logger.Logger) *AgendamentoRepository {
	return &AgendamentoRepository{logger: log}
}

// Salvar atribui um novo id ao agendamento e o acrescenta ao fim da coleção.
func (r *AgendamentoRepository) Salvar(ctx context.Context, agendamento domain.Agendamento) (domain.Agendamento, error) {
	agendamento.ID = uuid.NewString()
	r.agendamentos = append(r.agendamentos, agendamento)

	r.logger.Info("Agendamento salvo no repositório.", map[string]interface{}{
		"id":       agendamento.ID,
		"dataHora": agendamento.DataHora.Format(domain.LayoutDataHora),
	})
	return agendamento, nil
}

// BuscarPorID localiza um agendamento pelo id, em qualquer status.
func (r *AgendamentoRepository) BuscarPorID(ctx context.Context, id string) (domain.Agendamento, error) {
	for _, ag := range r.agendamentos {
		if ag.ID == id {
			return ag, nil
		}
	}
	r.logger.Debug("Agendamento não encontrado no repositório.", map[string]interface{}{"id": id})
	return domain.Agendamento{}, apperror.NewNotFoundError("Agendamento não encontrado")
}

// ListarTodos retorna uma cópia da coleção inteira, na ordem de inserção.
func (r *AgendamentoRepository) ListarTodos(ctx context.Context) ([]domain.Agendamento, error) {
	out := make([]domain.Agendamento, len(r.agendamentos))
	copy(out, r.agendamentos)
	return out, nil
}

// Atualizar sobrescreve usuário, serviço e horário do agendamento indicado.
// O status nunca é alterado por aqui.
func (r *AgendamentoRepository) Atualizar(ctx context.Context, agendamento domain.Agendamento) (domain.Agendamento, error) {
	for i := range r.agendamentos {
		if r.agendamentos[i].ID == agendamento.ID {
			r.agendamentos[i].IDUsuario = agendamento.IDUsuario
			r.agendamentos[i].Servico = agendamento.Servico
			r.agendamentos[i].DataHora = agendamento.DataHora

			r.logger.Info("Agendamento atualizado no repositório.", map[string]interface{}{"id": agendamento.ID})
			return r.agendamentos[i], nil
		}
	}
	return domain.Agendamento{}, apperror.NewNotFoundError("Agendamento não encontrado")
}

// Cancelar muda o status de ATIVO para CANCELADO. Id inexistente e registro
// já cancelado são o mesmo desfecho: não encontrado.
func (r *AgendamentoRepository) Cancelar(ctx context.Context, id string) error {
	for i := range r.agendamentos {
		if r.agendamentos[i].ID == id && r.agendamentos[i].Status == domain.StatusAtivo {
			r.agendamentos[i].Status = domain.StatusCancelado
			r.logger.Info("Agendamento cancelado no repositório.", map[string]interface{}{"id": id})
			return nil
		}
	}
	return apperror.NewNotFoundError("Agendamento não encontrado ou já cancelado.")
}

// HorarioDisponivel responde se dataHora está livre entre os agendamentos
// ATIVOS. excludeID retira da checagem o próprio agendamento em atualização.
func (r *AgendamentoRepository) HorarioDisponivel(ctx context.Context, dataHora domain.DataHora, excludeID string) (bool, error) {
	for _, ag := range r.agendamentos {
		if ag.Status != domain.StatusAtivo {
			continue
		}
		if ag.DataHora.Igual(dataHora) && ag.ID != excludeID {
			r.logger.Debug("Horário em conflito com agendamento ativo.", map[string]interface{}{
				"dataHora": dataHora.Format(domain.LayoutDataHora),
				"conflito": ag.ID,
			})
			return false, nil
		}
	}
	return true, nil
}

var _ domain.AgendamentoRepository = (*AgendamentoRepository)(nil)
