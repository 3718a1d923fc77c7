package atendimento

import (
	"context"

	"github.com/libertaapp/atendimentos-api/internal/audit"
	domain "github.com/libertaapp/atendimentos-api/internal/domain/registro"
	"github.com/libertaapp/atendimentos-api/internal/httperr"
)

type DeleteAtendimento struct {
	store domain.Store
	audit audit.Sink
}

func NewDeleteAtendimento(
	store domain.Store,
	auditSink audit.Sink,
) *DeleteAtendimento {
	return &DeleteAtendimento{
		store: store,
		audit: auditSink,
	}
}

// Execute remove o registro definitivamente; não há soft-delete.
func (uc *DeleteAtendimento) Execute(
	ctx context.Context,
	userID string,
	operadoraID *uint,
	id string,
) error {

	removed, err := uc.store.DeleteAtendimento(ctx, userID, id)
	if err != nil {
		return err
	}
	if !removed {
		return httperr.ErrBusiness("atendimento_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   operadoraID,
		Action:   "atendimento_deleted",
		Entity:   "atendimento",
		EntityID: id,
	})

	return nil
}
