package registro

import (
	"github.com/libertaapp/atendimentos-api/internal/httperr"
	"github.com/libertaapp/atendimentos-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Finalizar marca a análise como concluída.
func Finalizar(a *models.AnaliseFrequencial) error {
	if a.Finalizado {
		return httperr.ErrBusiness("invalid_state")
	}
	a.Finalizado = true
	return nil
}

// Reabrir devolve a análise para a visão "em andamento".
func Reabrir(a *models.AnaliseFrequencial) error {
	if !a.Finalizado {
		return httperr.ErrBusiness("invalid_state")
	}
	a.Finalizado = false
	return nil
}

// ===============================
// Visões
// ===============================

// Finalizadas e EmAndamento particionam a coleção em duas visões disjuntas;
// todo registro aparece em exatamente uma delas.

func Finalizadas(analises []models.AnaliseFrequencial) []models.AnaliseFrequencial {
	out := make([]models.AnaliseFrequencial, 0, len(analises))
	for _, a := range analises {
		if a.Finalizado {
			out = append(out, a)
		}
	}
	return out
}

func EmAndamento(analises []models.AnaliseFrequencial) []models.AnaliseFrequencial {
	out := make([]models.AnaliseFrequencial, 0, len(analises))
	for _, a := range analises {
		if !a.Finalizado {
			out = append(out, a)
		}
	}
	return out
}

// AtendimentosRegulares exclui o fluxo tarot-frequencial das listagens comuns.
func AtendimentosRegulares(atendimentos []models.Atendimento) []models.Atendimento {
	out := make([]models.Atendimento, 0, len(atendimentos))
	for _, at := range atendimentos {
		if at.TipoServico != models.TipoTarotFrequencial {
			out = append(out, at)
		}
	}
	return out
}
