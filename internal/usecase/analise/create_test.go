package analise

import (
	"context"
	"testing"

	"github.com/libertaapp/atendimentos-api/internal/audit"
	"github.com/libertaapp/atendimentos-api/internal/httperr"
	infrastore "github.com/libertaapp/atendimentos-api/internal/infra/store"
	"github.com/libertaapp/atendimentos-api/internal/models"
	"github.com/libertaapp/atendimentos-api/internal/storage"
)

// sinkStub registra os eventos despachados sem goroutine nem banco.
type sinkStub struct {
	events []audit.Event
}

func (s *sinkStub) Dispatch(e audit.Event) {
	s.events = append(s.events, e)
}

func isBusiness(t *testing.T, err error, code string) {
	t.Helper()
	if !httperr.IsBusiness(err, code) {
		t.Fatalf("expected business error %q, got %v", code, err)
	}
}

func TestCreateAnaliseValidation(t *testing.T) {
	ctx := context.Background()
	store := infrastore.NewKVStore(storage.NewMemory())
	uc := NewCreateAnalise(store, &sinkStub{})

	tests := []struct {
		name    string
		analise models.AnaliseFrequencial
		code    string
	}{
		{"sem nome", models.AnaliseFrequencial{DataInicio: "2025-06-01"}, "missing_client_name"},
		{"nome em branco", models.AnaliseFrequencial{NomeCliente: "   ", DataInicio: "2025-06-01"}, "missing_client_name"},
		{"sem data de início", models.AnaliseFrequencial{NomeCliente: "Ana"}, "missing_start_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, "7", nil, tt.analise)
			isBusiness(t, err, tt.code)
		})
	}
}

func TestCreateAnaliseDerivedFields(t *testing.T) {
	ctx := context.Background()
	store := infrastore.NewKVStore(storage.NewMemory())
	sink := &sinkStub{}
	uc := NewCreateAnalise(store, sink)

	created, err := uc.Execute(ctx, "7", nil, models.AnaliseFrequencial{
		NomeCliente:    "Ana",
		DataNascimento: "1990-07-30",
		DataInicio:     "2025-06-01",
		Finalizado:     true, // o chamador não decide o estado inicial
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.ID == "" {
		t.Error("expected generated id")
	}
	if created.Signo != "Leão" {
		t.Errorf("expected signo Leão, got %q", created.Signo)
	}
	if created.DataCriacao == "" {
		t.Error("expected dataCriacao to be set")
	}
	if created.Finalizado {
		t.Error("new analise must start em andamento")
	}
	if created.Lembretes == nil {
		t.Error("lembretes must be an empty slice, not nil")
	}

	if len(sink.events) != 1 || sink.events[0].Action != "analise_created" {
		t.Errorf("unexpected audit events: %+v", sink.events)
	}

	persisted, err := store.ListAnalises(ctx, "7")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(persisted) != 1 || persisted[0].ID != created.ID {
		t.Errorf("analise not persisted: %+v", persisted)
	}
}

func TestCreateAnaliseDuplicateID(t *testing.T) {
	ctx := context.Background()
	store := infrastore.NewKVStore(storage.NewMemory())
	uc := NewCreateAnalise(store, &sinkStub{})

	base := models.AnaliseFrequencial{ID: "fixa", NomeCliente: "Ana", DataInicio: "2025-06-01"}
	if _, err := uc.Execute(ctx, "7", nil, base); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := uc.Execute(ctx, "7", nil, base)
	isBusiness(t, err, "id_already_exists")

	// a mesma id em outra usuária é válida
	if _, err := uc.Execute(ctx, "8", nil, base); err != nil {
		t.Errorf("same id on another user should be allowed: %v", err)
	}
}

func TestNormalizarLembretes(t *testing.T) {
	tests := []struct {
		name string
		in   []models.Lembrete
		want []int
	}{
		{"nil vira vazio", nil, []int{}},
		{"ids preservados", []models.Lembrete{{ID: 1}, {ID: 3}}, []int{1, 3}},
		{"sem id recebe próximo", []models.Lembrete{{ID: 2}, {}}, []int{2, 3}},
		{"duplicado renumerado", []models.Lembrete{{ID: 1}, {ID: 1}, {ID: 5}}, []int{1, 6, 5}},
		{"negativo renumerado", []models.Lembrete{{ID: -2}}, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizarLembretes(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d lembretes, got %d", len(tt.want), len(got))
			}
			for i, l := range got {
				if l.ID != tt.want[i] {
					t.Errorf("lembrete %d: expected id %d, got %d", i, tt.want[i], l.ID)
				}
			}
		})
	}
}

func TestFinalizarEReabrir(t *testing.T) {
	ctx := context.Background()
	store := infrastore.NewKVStore(storage.NewMemory())
	sink := &sinkStub{}

	create := NewCreateAnalise(store, sink)
	finalizar := NewFinalizarAnalise(store, sink)

	created, err := create.Execute(ctx, "7", nil, models.AnaliseFrequencial{
		NomeCliente: "Ana",
		DataInicio:  "2025-06-01",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	done, err := finalizar.Execute(ctx, "7", nil, created.ID, false)
	if err != nil {
		t.Fatalf("finalizar: %v", err)
	}
	if !done.Finalizado {
		t.Error("expected finalizado=true")
	}

	// finalizar de novo é estado inválido
	_, err = finalizar.Execute(ctx, "7", nil, created.ID, false)
	isBusiness(t, err, "invalid_state")

	reopened, err := finalizar.Execute(ctx, "7", nil, created.ID, true)
	if err != nil {
		t.Fatalf("reabrir: %v", err)
	}
	if reopened.Finalizado {
		t.Error("expected finalizado=false after reabrir")
	}

	_, err = finalizar.Execute(ctx, "7", nil, "inexistente", false)
	isBusiness(t, err, "analise_not_found")
}
