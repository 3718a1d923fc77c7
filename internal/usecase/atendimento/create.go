package atendimento

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/libertaapp/atendimentos-api/internal/audit"
	domain "github.com/libertaapp/atendimentos-api/internal/domain/registro"
	"github.com/libertaapp/atendimentos-api/internal/httperr"
	"github.com/libertaapp/atendimentos-api/internal/models"
	"github.com/libertaapp/atendimentos-api/internal/timezone"
)

// Catalogo valida tipos de serviço contra o catálogo do consultório.
type Catalogo interface {
	TipoServicoValido(ctx context.Context, slug string) (bool, error)
}

// ======================================================
// USE CASE
// ======================================================

type CreateAtendimento struct {
	store    domain.Store
	catalogo Catalogo
	audit    audit.Sink
}

func NewCreateAtendimento(
	store domain.Store,
	catalogo Catalogo,
	auditSink audit.Sink,
) *CreateAtendimento {
	return &CreateAtendimento{
		store:    store,
		catalogo: catalogo,
		audit:    auditSink,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAtendimento) Execute(
	ctx context.Context,
	userID string,
	operadoraID *uint,
	at models.Atendimento,
) (*models.Atendimento, error) {

	// --------------------------------------------------
	// 1️⃣ Validação
	// --------------------------------------------------
	if strings.TrimSpace(at.Nome) == "" {
		return nil, httperr.ErrBusiness("missing_client_name")
	}

	if at.TipoServico != "" {
		ok, err := uc.catalogo.TipoServicoValido(ctx, at.TipoServico)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrBusiness("invalid_service_type")
		}
	}

	// --------------------------------------------------
	// 2️⃣ Identidade do registro
	// --------------------------------------------------
	if at.ID == "" {
		at.ID = uuid.NewString()
	} else {
		existentes, err := uc.store.ListAtendimentos(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, e := range existentes {
			if e.ID == at.ID {
				return nil, httperr.ErrBusiness("id_already_exists")
			}
		}
	}

	// --------------------------------------------------
	// 3️⃣ Campos derivados
	// --------------------------------------------------
	at.Signo = domain.SignoParaData(at.DataNascimento)
	at.Data = timezone.Now().Format("2006-01-02T15:04:05.000Z07:00")

	// --------------------------------------------------
	// 4️⃣ Persistência
	// --------------------------------------------------
	if err := uc.store.UpsertAtendimento(ctx, userID, at); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   operadoraID,
		Action:   "atendimento_created",
		Entity:   "atendimento",
		EntityID: at.ID,
	})

	return &at, nil
}
