package atendimento

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

// catalogoStub valida tipos de serviço contra um conjunto fixo.
type catalogoStub struct {
	slugs map[string]bool
}

func (c *catalogoStub) TipoServicoValido(_ context.Context, slug string) (bool, error) {
	return c.slugs[slug], nil
}

func newCatalogo(slugs ...string) *catalogoStub {
	m := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		m[s] = true
	}
	return &catalogoStub{slugs: m}
}

func isBusiness(t *testing.T, err error, code string) {
	t.Helper()
	if !httperr.IsBusiness(err, code) {
		t.Fatalf("expected business error %q, got %v", code, err)
	}
}

func TestCreateAtendimentoValidation(t *testing.T) {
	ctx := context.Background()
	store := infrastore.NewKVStore(storage.NewMemory())
	uc := NewCreateAtendimento(store, newCatalogo("tarot", "terapia"), &sinkStub{})

	tests := []struct {
		name        string
		atendimento models.Atendimento
		code        string
	}{
		{"sem nome", models.Atendimento{TipoServico: "tarot"}, "missing_client_name"},
		{"nome em branco", models.Atendimento{Nome: "   ", TipoServico: "tarot"}, "missing_client_name"},
		{"serviço desconhecido", models.Atendimento{Nome: "Ana", TipoServico: "cromoterapia"}, "invalid_service_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, "7", nil, tt.atendimento)
			isBusiness(t, err, tt.code)
		})
	}

	// tipoServico vazio não passa pelo catálogo
	if _, err := uc.Execute(ctx, "7", nil, models.Atendimento{Nome: "Ana"}); err != nil {
		t.Errorf("empty tipoServico should be accepted: %v", err)
	}
}

func TestCreateAtendimentoDerivedFields(t *testing.T) {
	ctx := context.Background()
	store := infrastore.NewKVStore(storage.NewMemory())
	sink := &sinkStub{}
	uc := NewCreateAtendimento(store, newCatalogo("tarot"), sink)

	created, err := uc.Execute(ctx, "7", nil, models.Atendimento{
		Nome:           "Ana",
		DataNascimento: "1990-07-30",
		TipoServico:    "tarot",
		Valor:          "100",
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
	if created.Data == "" {
		t.Error("expected data (creation timestamp) to be set")
	}

	if len(sink.events) != 1 || sink.events[0].Action != "atendimento_created" {
		t.Errorf("unexpected audit events: %+v", sink.events)
	}

	persisted, err := store.ListAtendimentos(ctx, "7")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(persisted) != 1 || persisted[0].ID != created.ID {
		t.Errorf("atendimento not persisted: %+v", persisted)
	}
}

func TestCreateAtendimentoDuplicateID(t *testing.T) {
	ctx := context.Background()
	store := infrastore.NewKVStore(storage.NewMemory())
	uc := NewCreateAtendimento(store, newCatalogo("tarot"), &sinkStub{})

	base := models.Atendimento{ID: "fixo", Nome: "Ana", TipoServico: "tarot"}
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

func TestUpdateAtendimentoPreservesDerivedFields(t *testing.T) {
	ctx := context.Background()
	store := infrastore.NewKVStore(storage.NewMemory())
	sink := &sinkStub{}

	create := NewCreateAtendimento(store, newCatalogo("tarot"), sink)
	update := NewUpdateAtendimento(store, sink)

	created, err := create.Execute(ctx, "7", nil, models.Atendimento{
		Nome:        "Ana",
		TipoServico: "tarot",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// simula o upload de foto entre o create e o update
	created.FotoURL = "https://bucket/fotos/7/abc.webp"
	if err := store.UpsertAtendimento(ctx, "7", *created); err != nil {
		t.Fatalf("set foto: %v", err)
	}

	updated, err := update.Execute(ctx, "7", nil, created.ID, models.Atendimento{
		Nome:  "Ana Paula",
		Valor: "120",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.ID != created.ID {
		t.Errorf("id changed: %q != %q", updated.ID, created.ID)
	}
	if updated.Data != created.Data {
		t.Errorf("data changed: %q != %q", updated.Data, created.Data)
	}
	if updated.FotoURL != "https://bucket/fotos/7/abc.webp" {
		t.Errorf("update without fotoUrl dropped the photo: %q", updated.FotoURL)
	}

	// payload com fotoUrl substitui
	replaced, err := update.Execute(ctx, "7", nil, created.ID, models.Atendimento{
		Nome:    "Ana Paula",
		FotoURL: "https://bucket/fotos/7/nova.webp",
	})
	if err != nil {
		t.Fatalf("update with foto: %v", err)
	}
	if replaced.FotoURL != "https://bucket/fotos/7/nova.webp" {
		t.Errorf("explicit fotoUrl not applied: %q", replaced.FotoURL)
	}

	_, err = update.Execute(ctx, "7", nil, "inexistente", models.Atendimento{Nome: "Ana"})
	isBusiness(t, err, "atendimento_not_found")
}
