package analise

import (
	"context"
	"strings"

	"github.com/libertaapp/atendimentos-api/internal/audit"
	domain "github.com/libertaapp/atendimentos-api/internal/domain/registro"
	"github.com/libertaapp/atendimentos-api/internal/httperr"
	"github.com/libertaapp/atendimentos-api/internal/models"
)

type UpdateAnalise struct {
	store domain.Store
	audit audit.Sink
}

func NewUpdateAnalise(
	store domain.Store,
	auditSink audit.Sink,
) *UpdateAnalise {
	return &UpdateAnalise{
		store: store,
		audit: auditSink,
	}
}

func (uc *UpdateAnalise) Execute(
	ctx context.Context,
	userID string,
	operadoraID *uint,
	id string,
	a models.AnaliseFrequencial,
) (*models.AnaliseFrequencial, error) {

	if strings.TrimSpace(a.NomeCliente) == "" {
		return nil, httperr.ErrBusiness("missing_client_name")
	}
	if strings.TrimSpace(a.DataInicio) == "" {
		return nil, httperr.ErrBusiness("missing_start_date")
	}

	existentes, err := uc.store.ListAnalises(ctx, userID)
	if err != nil {
		return nil, err
	}

	var atual *models.AnaliseFrequencial
	for i := range existentes {
		if existentes[i].ID == id {
			atual = &existentes[i]
			break
		}
	}
	if atual == nil {
		return nil, httperr.ErrBusiness("analise_not_found")
	}

	// id, criação e estado de finalização não mudam por update comum;
	// finalizar/reabrir são ações explícitas.
	a.ID = id
	a.DataCriacao = atual.DataCriacao
	a.Finalizado = atual.Finalizado
	a.Signo = domain.SignoParaData(a.DataNascimento)
	a.Lembretes = normalizarLembretes(a.Lembretes)

	if err := uc.store.UpsertAnalise(ctx, userID, a); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   operadoraID,
		Action:   "analise_updated",
		Entity:   "analise",
		EntityID: id,
	})

	return &a, nil
}
