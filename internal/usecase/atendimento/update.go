package atendimento

import (
	"context"
	"strings"

	"github.com/libertaapp/atendimentos-api/internal/audit"
	domain "github.com/libertaapp/atendimentos-api/internal/domain/registro"
	"github.com/libertaapp/atendimentos-api/internal/httperr"
	"github.com/libertaapp/atendimentos-api/internal/models"
)

type UpdateAtendimento struct {
	store domain.Store
	audit audit.Sink
}

func NewUpdateAtendimento(
	store domain.Store,
	auditSink audit.Sink,
) *UpdateAtendimento {
	return &UpdateAtendimento{
		store: store,
		audit: auditSink,
	}
}

// Execute substitui o registro pelo id (replace-by-id; o chamador já envia o
// registro completo com os campos mesclados).
func (uc *UpdateAtendimento) Execute(
	ctx context.Context,
	userID string,
	operadoraID *uint,
	id string,
	at models.Atendimento,
) (*models.Atendimento, error) {

	if strings.TrimSpace(at.Nome) == "" {
		return nil, httperr.ErrBusiness("missing_client_name")
	}

	existentes, err := uc.store.ListAtendimentos(ctx, userID)
	if err != nil {
		return nil, err
	}

	var atual *models.Atendimento
	for i := range existentes {
		if existentes[i].ID == id {
			atual = &existentes[i]
			break
		}
	}
	if atual == nil {
		return nil, httperr.ErrBusiness("atendimento_not_found")
	}

	// id e timestamp de criação são imutáveis; a foto é derivada no servidor
	// e só muda pelo upload, então um payload sem fotoUrl não a apaga
	at.ID = id
	at.Data = atual.Data
	if at.FotoURL == "" {
		at.FotoURL = atual.FotoURL
	}
	at.Signo = domain.SignoParaData(at.DataNascimento)

	if err := uc.store.UpsertAtendimento(ctx, userID, at); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   operadoraID,
		Action:   "atendimento_updated",
		Entity:   "atendimento",
		EntityID: id,
	})

	return &at, nil
}
