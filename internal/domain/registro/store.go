package registro

import (
	"context"

	"github.com/libertaapp/atendimentos-api/internal/models"
)

// Store é o repositório particionado por usuária. A unidade de durabilidade é
// a coleção inteira de um usuário; saves substituem a coleção (last-writer-wins).
// Dados ausentes ou ilegíveis resolvem para coleção vazia, nunca para erro.
type Store interface {
	// -------- Atendimentos --------
	ListAtendimentos(
		ctx context.Context,
		userID string,
	) ([]models.Atendimento, error)

	SaveAtendimentos(
		ctx context.Context,
		userID string,
		atendimentos []models.Atendimento,
	) error

	UpsertAtendimento(
		ctx context.Context,
		userID string,
		atendimento models.Atendimento,
	) error

	DeleteAtendimento(
		ctx context.Context,
		userID string,
		id string,
	) (bool, error)

	// -------- Análises frequenciais --------
	ListAnalises(
		ctx context.Context,
		userID string,
	) ([]models.AnaliseFrequencial, error)

	SaveAnalises(
		ctx context.Context,
		userID string,
		analises []models.AnaliseFrequencial,
	) error

	UpsertAnalise(
		ctx context.Context,
		userID string,
		analise models.AnaliseFrequencial,
	) error

	DeleteAnalise(
		ctx context.Context,
		userID string,
		id string,
	) (bool, error)

	// -------- Visão geral do consultório --------
	// ListAllAnalises une as partições de todas as usuárias em tempo de
	// leitura. Não existe coleção global persistida.
	ListAllAnalises(ctx context.Context) ([]models.AnaliseFrequencial, error)
}
