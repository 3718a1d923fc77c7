package registro

import (
	"testing"

	"github.com/libertaapp/atendimentos-api/internal/httperr"
	"github.com/libertaapp/atendimentos-api/internal/models"
)

func TestFinalizarReabrir(t *testing.T) {
	a := models.AnaliseFrequencial{ID: "1", NomeCliente: "Ana"}

	if err := Finalizar(&a); err != nil {
		t.Fatalf("Finalizar: unexpected error %v", err)
	}
	if !a.Finalizado {
		t.Error("Finalizar did not set Finalizado")
	}

	if err := Finalizar(&a); !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("double Finalizar: expected invalid_state, got %v", err)
	}

	if err := Reabrir(&a); err != nil {
		t.Fatalf("Reabrir: unexpected error %v", err)
	}
	if a.Finalizado {
		t.Error("Reabrir did not clear Finalizado")
	}

	if err := Reabrir(&a); !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("double Reabrir: expected invalid_state, got %v", err)
	}
}

// As duas visões particionam a coleção: cada registro aparece em exatamente
// uma delas.
func TestVisoesDisjuntas(t *testing.T) {
	analises := []models.AnaliseFrequencial{
		{ID: "1", Finalizado: false},
		{ID: "2", Finalizado: true},
		{ID: "3", Finalizado: false},
		{ID: "4", Finalizado: true},
	}

	finalizadas := Finalizadas(analises)
	emAndamento := EmAndamento(analises)

	if len(finalizadas)+len(emAndamento) != len(analises) {
		t.Fatalf("views not exhaustive: %d + %d != %d",
			len(finalizadas), len(emAndamento), len(analises))
	}

	ids := map[string]int{}
	for _, a := range finalizadas {
		if !a.Finalizado {
			t.Errorf("analise %s in finalizadas view but not finalizada", a.ID)
		}
		ids[a.ID]++
	}
	for _, a := range emAndamento {
		if a.Finalizado {
			t.Errorf("analise %s in em-andamento view but finalizada", a.ID)
		}
		ids[a.ID]++
	}

	for id, n := range ids {
		if n != 1 {
			t.Errorf("analise %s appears in %d views", id, n)
		}
	}
}

func TestAtendimentosRegulares(t *testing.T) {
	atendimentos := []models.Atendimento{
		{ID: "1", TipoServico: "tarot"},
		{ID: "2", TipoServico: models.TipoTarotFrequencial},
		{ID: "3", TipoServico: "terapia"},
	}

	regulares := AtendimentosRegulares(atendimentos)
	if len(regulares) != 2 {
		t.Fatalf("expected 2 regular atendimentos, got %d", len(regulares))
	}
	for _, at := range regulares {
		if at.TipoServico == models.TipoTarotFrequencial {
			t.Errorf("tarot-frequencial leaked into regular listing: %s", at.ID)
		}
	}
}
