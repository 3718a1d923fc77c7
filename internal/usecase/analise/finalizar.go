package analise

import (
	"context"

	"github.com/libertaapp/atendimentos-api/internal/audit"
	domain "github.com/libertaapp/atendimentos-api/internal/domain/registro"
	"github.com/libertaapp/atendimentos-api/internal/httperr"
	"github.com/libertaapp/atendimentos-api/internal/models"
)

type FinalizarAnalise struct {
	store domain.Store
	audit audit.Sink
}

func NewFinalizarAnalise(
	store domain.Store,
	auditSink audit.Sink,
) *FinalizarAnalise {
	return &FinalizarAnalise{
		store: store,
		audit: auditSink,
	}
}

// Execute move a análise entre as visões em-andamento e finalizadas.
// reabrir=true desfaz a finalização.
func (uc *FinalizarAnalise) Execute(
	ctx context.Context,
	userID string,
	operadoraID *uint,
	id string,
	reabrir bool,
) (*models.AnaliseFrequencial, error) {

	existentes, err := uc.store.ListAnalises(ctx, userID)
	if err != nil {
		return nil, err
	}

	var alvo *models.AnaliseFrequencial
	for i := range existentes {
		if existentes[i].ID == id {
			alvo = &existentes[i]
			break
		}
	}
	if alvo == nil {
		return nil, httperr.ErrBusiness("analise_not_found")
	}

	action := "analise_finalizada"
	if reabrir {
		if err := domain.Reabrir(alvo); err != nil {
			return nil, err
		}
		action = "analise_reaberta"
	} else {
		if err := domain.Finalizar(alvo); err != nil {
			return nil, err
		}
	}

	if err := uc.store.UpsertAnalise(ctx, userID, *alvo); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   operadoraID,
		Action:   action,
		Entity:   "analise",
		EntityID: id,
	})

	return alvo, nil
}
