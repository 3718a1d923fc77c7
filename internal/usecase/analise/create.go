package analise

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

// ======================================================
// USE CASE
// ======================================================

type CreateAnalise struct {
	store domain.Store
	audit audit.Sink
}

func NewCreateAnalise(
	store domain.Store,
	auditSink audit.Sink,
) *CreateAnalise {
	return &CreateAnalise{
		store: store,
		audit: auditSink,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAnalise) Execute(
	ctx context.Context,
	userID string,
	operadoraID *uint,
	a models.AnaliseFrequencial,
) (*models.AnaliseFrequencial, error) {

	// --------------------------------------------------
	// 1️⃣ Validação
	// --------------------------------------------------
	if strings.TrimSpace(a.NomeCliente) == "" {
		return nil, httperr.ErrBusiness("missing_client_name")
	}
	if strings.TrimSpace(a.DataInicio) == "" {
		return nil, httperr.ErrBusiness("missing_start_date")
	}

	// --------------------------------------------------
	// 2️⃣ Identidade do registro
	// --------------------------------------------------
	if a.ID == "" {
		a.ID = uuid.NewString()
	} else {
		existentes, err := uc.store.ListAnalises(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, e := range existentes {
			if e.ID == a.ID {
				return nil, httperr.ErrBusiness("id_already_exists")
			}
		}
	}

	// --------------------------------------------------
	// 3️⃣ Campos derivados
	// --------------------------------------------------
	a.Signo = domain.SignoParaData(a.DataNascimento)
	a.DataCriacao = timezone.Now().Format("2006-01-02T15:04:05.000Z07:00")
	a.Finalizado = false
	a.Lembretes = normalizarLembretes(a.Lembretes)

	// --------------------------------------------------
	// 4️⃣ Persistência
	// --------------------------------------------------
	if err := uc.store.UpsertAnalise(ctx, userID, a); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   operadoraID,
		Action:   "analise_created",
		Entity:   "analise",
		EntityID: a.ID,
	})

	return &a, nil
}

// normalizarLembretes garante ids monotônicos únicos dentro da análise,
// preservando ids já atribuídos pelo chamador.
func normalizarLembretes(lembretes []models.Lembrete) []models.Lembrete {
	if lembretes == nil {
		return []models.Lembrete{}
	}

	max := 0
	usados := make(map[int]bool, len(lembretes))
	for _, l := range lembretes {
		if l.ID > max {
			max = l.ID
		}
	}

	out := make([]models.Lembrete, 0, len(lembretes))
	for _, l := range lembretes {
		if l.ID <= 0 || usados[l.ID] {
			max++
			l.ID = max
		}
		usados[l.ID] = true
		out = append(out, l)
	}
	return out
}
