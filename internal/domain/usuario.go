package domain

import "context"

// Usuario representa um cliente cadastrado da farmácia.
type Usuario struct {
	ID             string `json:"id"`
	Nome           string `json:"nome"`
	Email          string `json:"email"`
	DataNascimento Data   `json:"dataNascimento"`
}

// UsuarioUpdate é o payload de atualização parcial. Campo vazio = não altera.
type UsuarioUpdate struct {
	Nome  string `json:"nome,omitempty"`
	Email string `json:"email,omitempty"`
}

// UsuarioRepository define o contrato de persistência da coleção de usuários.
// A coleção mora em um arquivo JSON reescrito por inteiro a cada mutação;
// cada operação relê o arquivo do zero (nenhuma cópia fica em memória).
type UsuarioRepository interface {
	Salvar(ctx context.Context, usuario Usuario) (Usuario, error)
	// SalvarVarios é tudo-ou-nada: qualquer e-mail em conflito com a coleção
	// existente aborta o lote sem gravar nenhum registro.
	SalvarVarios(ctx context.Context, usuarios []Usuario) ([]Usuario, error)
	BuscarPorID(ctx context.Context, id string) (Usuario, error)
	ListarTodos(ctx context.Context) ([]Usuario, error)
	Atualizar(ctx context.Context, id string, update UsuarioUpdate) (Usuario, error)
	Deletar(ctx context.Context, id string) error
}

// UsuarioService define o contrato de lógica de negócio de usuários.
type UsuarioService interface {
	Criar(ctx context.Context, usuario Usuario) (Usuario, error)
	CriarVarios(ctx context.Context, usuarios []Usuario) ([]Usuario, error)
	BuscarPorID(ctx context.Context, id string) (Usuario, error)
	ListarTodos(ctx context.Context) ([]Usuario, error)
	Atualizar(ctx context.Context, id string, update UsuarioUpdate) (Usuario, error)
	Deletar(ctx context.Context, id string) error
}
