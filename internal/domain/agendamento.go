package domain

import "context"

// StatusAgendamento representa o ciclo de vida de um agendamento.
// A transição é sempre ATIVO -> CANCELADO; nenhum registro é removido.
type StatusAgendamento string

const (
	StatusAtivo     StatusAgendamento = "ATIVO"
	StatusCancelado StatusAgendamento = "CANCELADO"
)

// Agendamento representa uma reserva de horário na farmácia (a Entidade).
type Agendamento struct {
	ID string `json:"idAgendamento"`
	// IDUsuario guarda o NOME do usuário na criação, não o id. É um contrato
	// histórico da API: clientes existentes dependem desse campo como veio.
	IDUsuario string            `json:"idUsuario"`
	Servico   string            `json:"servico"`
	DataHora  DataHora          `json:"dataHora"`
	Status    StatusAgendamento `json:"status"`
}

// AgendamentoRequest é o payload de entrada para criação e atualização.
type AgendamentoRequest struct {
	IDUsuario string   `json:"idUsuario"`
	Servico   string   `json:"servico"`
	DataHora  DataHora `json:"dataHora"`
}

// MensagemResponse é o corpo de confirmação das operações sem recurso de retorno.
type MensagemResponse struct {
	Message string `json:"message"`
}

// AgendamentoRepository define o contrato de persistência da coleção de
// agendamentos. A coleção vive em memória e preserva a ordem de inserção.
type AgendamentoRepository interface {
	Salvar(ctx context.Context, agendamento Agendamento) (Agendamento, error)
	BuscarPorID(ctx context.Context, id string) (Agendamento, error)
	ListarTodos(ctx context.Context) ([]Agendamento, error)
	Atualizar(ctx context.Context, agendamento Agendamento) (Agendamento, error)
	Cancelar(ctx context.Context, id string) error
	// HorarioDisponivel responde se dataHora está livre entre os agendamentos
	// ATIVOS. excludeID retira um agendamento da checagem (atualização de si mesmo).
	HorarioDisponivel(ctx context.Context, dataHora DataHora, excludeID string) (bool, error)
}

// AgendamentoService define o contrato de lógica de negócio de agendamentos.
type AgendamentoService interface {
	Criar(ctx context.Context, req AgendamentoRequest) (Agendamento, error)
	BuscarPorID(ctx context.Context, id string) (Agendamento, error)
	ListarTodos(ctx context.Context) ([]Agendamento, error)
	Atualizar(ctx context.Context, id string, req AgendamentoRequest) (Agendamento, error)
	Cancelar(ctx context.Context, id string) error
}
