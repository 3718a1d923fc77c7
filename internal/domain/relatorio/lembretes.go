package relatorio

import (
	"math"
	"strings"
	"time"

	"github.com/libertaapp/atendimentos-api/internal/models"
)

// ===============================
// Tratamentos expirando
// ===============================

type StatusExpiracao string

const (
	ExpiraAmanha StatusExpiracao = "expira_amanha"
	ExpiraHoje   StatusExpiracao = "expira_hoje"
	Expirado     StatusExpiracao = "expirado"
)

type AvisoExpiracao struct {
	AnaliseID   string          `json:"analiseId"`
	NomeCliente string          `json:"nomeCliente"`
	LembreteID  int             `json:"lembreteId"`
	Texto       string          `json:"texto"`
	Status      StatusExpiracao `json:"status"`

	// HorasRestantes só é significativo quando o aviso ainda não expirou.
	HorasRestantes int    `json:"horasRestantes"`
	ExpiraEm       string `json:"expiraEm"`
}

// LembretesExpirando classifica cada lembrete com prazo de cada análise.
// Lembretes com texto vazio ou dias <= 0 nunca geram aviso, assim como
// análises sem data de início legível. O resultado é derivado do relógio no
// momento da chamada; nada fica persistido.
func LembretesExpirando(
	analises []models.AnaliseFrequencial,
	now time.Time,
) []AvisoExpiracao {

	avisos := []AvisoExpiracao{}

	for _, analise := range analises {
		inicio, ok := parseData(analise.DataInicio, now.Location())
		if !ok {
			continue
		}

		for _, lembrete := range analise.Lembretes {
			if strings.TrimSpace(lembrete.Texto) == "" || lembrete.Dias <= 0 {
				continue
			}

			expira := inicio.AddDate(0, 0, lembrete.Dias)
			diff := expira.Sub(now)

			diffDias := int(math.Ceil(diff.Hours() / 24))
			diffHoras := int(math.Ceil(diff.Hours()))

			var status StatusExpiracao
			switch {
			case diffDias > 0 && diffDias <= 1:
				status = ExpiraAmanha
			case diffDias == 0 && diffHoras > 0:
				status = ExpiraHoje
			case diff <= 0:
				status = Expirado
			default:
				// ainda longe do prazo
				continue
			}

			avisos = append(avisos, AvisoExpiracao{
				AnaliseID:      analise.ID,
				NomeCliente:    analise.NomeCliente,
				LembreteID:     lembrete.ID,
				Texto:          lembrete.Texto,
				Status:         status,
				HorasRestantes: diffHoras,
				ExpiraEm:       expira.Format("2006-01-02"),
			})
		}
	}

	return avisos
}

// ContarLembretes conta os lembretes preenchidos de uma análise.
func ContarLembretes(lembretes []models.Lembrete) int {
	count := 0
	for _, l := range lembretes {
		if strings.TrimSpace(l.Texto) != "" {
			count++
		}
	}
	return count
}
