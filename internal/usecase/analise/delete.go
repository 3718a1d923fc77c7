package analise

import (
	"context"

	"github.com/libertaapp/atendimentos-api/internal/audit"
	domain "github.com/libertaapp/atendimentos-api/internal/domain/registro"
	"github.com/libertaapp/atendimentos-api/internal/httperr"
)

type DeleteAnalise struct {
	store domain.Store
	audit audit.Sink
}

func NewDeleteAnalise(
	store domain.Store,
	auditSink audit.Sink,
) *DeleteAnalise {
	return &DeleteAnalise{
		store: store,
		audit: auditSink,
	}
}

func (uc *DeleteAnalise) Execute(
	ctx context.Context,
	userID string,
	operadoraID *uint,
	id string,
) error {

	removed, err := uc.store.DeleteAnalise(ctx, userID, id)
	if err != nil {
		return err
	}
	if !removed {
		return httperr.ErrBusiness("analise_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   operadoraID,
		Action:   "analise_deleted",
		Entity:   "analise",
		EntityID: id,
	})

	return nil
}
