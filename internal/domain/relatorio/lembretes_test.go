package relatorio

import (
	"testing"
	"time"

	"github.com/libertaapp/atendimentos-api/internal/models"
)

func TestLembretesExpirando(t *testing.T) {
	// meio-dia; datas de início parseiam à meia-noite do mesmo fuso
	agora := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name           string
		analise        models.AnaliseFrequencial
		expectedCount  int
		expectedStatus StatusExpiracao
	}{
		{
			name: "due in one day is expiring soon",
			analise: models.AnaliseFrequencial{
				ID:          "1",
				NomeCliente: "Ana",
				DataInicio:  "2025-06-12", // +7 dias = 19/06 00:00, falta 12h
				Lembretes:   []models.Lembrete{{ID: 1, Texto: "Banho de ervas", Dias: 7}},
			},
			expectedCount:  1,
			expectedStatus: ExpiraAmanha,
		},
		{
			name: "past due is expired",
			analise: models.AnaliseFrequencial{
				ID:          "2",
				NomeCliente: "Bia",
				DataInicio:  "2025-06-12", // +3 dias = 15/06, já passou
				Lembretes:   []models.Lembrete{{ID: 1, Texto: "Retorno", Dias: 3}},
			},
			expectedCount:  1,
			expectedStatus: Expirado,
		},
		{
			name: "empty text never notifies",
			analise: models.AnaliseFrequencial{
				ID:         "3",
				DataInicio: "2025-06-12",
				Lembretes:  []models.Lembrete{{ID: 1, Texto: "   ", Dias: 7}},
			},
			expectedCount: 0,
		},
		{
			name: "non-positive days never notifies",
			analise: models.AnaliseFrequencial{
				ID:         "4",
				DataInicio: "2025-06-12",
				Lembretes:  []models.Lembrete{{ID: 1, Texto: "Retorno", Dias: 0}},
			},
			expectedCount: 0,
		},
		{
			name: "far future not yet notified",
			analise: models.AnaliseFrequencial{
				ID:         "5",
				DataInicio: "2025-06-12",
				Lembretes:  []models.Lembrete{{ID: 1, Texto: "Retorno", Dias: 30}},
			},
			expectedCount: 0,
		},
		{
			name: "unreadable start date skips the analise",
			analise: models.AnaliseFrequencial{
				ID:         "6",
				DataInicio: "???",
				Lembretes:  []models.Lembrete{{ID: 1, Texto: "Retorno", Dias: 1}},
			},
			expectedCount: 0,
		},
	}

	for _, c := range cases {
		avisos := LembretesExpirando([]models.AnaliseFrequencial{c.analise}, agora)
		if len(avisos) != c.expectedCount {
			t.Errorf("%s: got %d avisos, expected %d", c.name, len(avisos), c.expectedCount)
			continue
		}
		if c.expectedCount > 0 && avisos[0].Status != c.expectedStatus {
			t.Errorf("%s: status = %q, expected %q", c.name, avisos[0].Status, c.expectedStatus)
		}
	}
}

func TestLembretesExpirando_horasRestantes(t *testing.T) {
	agora := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.UTC)

	analise := models.AnaliseFrequencial{
		ID:          "1",
		NomeCliente: "Ana",
		DataInicio:  "2025-06-12",
		Lembretes:   []models.Lembrete{{ID: 1, Texto: "Banho", Dias: 7}},
	}

	avisos := LembretesExpirando([]models.AnaliseFrequencial{analise}, agora)
	if len(avisos) != 1 {
		t.Fatalf("got %d avisos, expected 1", len(avisos))
	}

	// expira 19/06 00:00, agora 18/06 12:00 → 12 horas
	if avisos[0].HorasRestantes != 12 {
		t.Errorf("HorasRestantes = %d, expected 12", avisos[0].HorasRestantes)
	}
	if avisos[0].ExpiraEm != "2025-06-19" {
		t.Errorf("ExpiraEm = %q, expected 2025-06-19", avisos[0].ExpiraEm)
	}
}

func TestContarLembretes(t *testing.T) {
	lembretes := []models.Lembrete{
		{ID: 1, Texto: "Banho"},
		{ID: 2, Texto: "  "},
		{ID: 3, Texto: "Retorno"},
	}

	if got := ContarLembretes(lembretes); got != 2 {
		t.Errorf("ContarLembretes = %d, expected 2", got)
	}
}
