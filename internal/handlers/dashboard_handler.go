package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/libertaapp/atendimentos-api/internal/domain/registro"
	"github.com/libertaapp/atendimentos-api/internal/domain/relatorio"
	"github.com/libertaapp/atendimentos-api/internal/dto"
	"github.com/libertaapp/atendimentos-api/internal/httperr"
	"github.com/libertaapp/atendimentos-api/internal/httpresp"
	"github.com/libertaapp/atendimentos-api/internal/timezone"
)

type DashboardHandler struct {
	store registro.Store
}

func NewDashboardHandler(store registro.Store) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// Get devolve os números do painel para o período escolhido
// (?periodo=dia|semana|mes|ano, default semana).
func (h *DashboardHandler) Get(c *gin.Context) {
	userID := partitionKey(c)

	periodo := relatorio.Periodo(c.DefaultQuery("periodo", string(relatorio.PeriodoSemana)))
	switch periodo {
	case relatorio.PeriodoDia, relatorio.PeriodoSemana, relatorio.PeriodoMes, relatorio.PeriodoAno:
	default:
		httperr.BadRequest(c, "invalid_period", "Período inválido.")
		return
	}

	atendimentos, err := h.store.ListAtendimentos(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_atendimentos", "Erro ao montar painel.")
		return
	}

	analises, err := h.store.ListAnalises(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_analises", "Erro ao montar painel.")
		return
	}

	regulares := registro.AtendimentosRegulares(atendimentos)
	now := timezone.Now()

	httpresp.OK(c, dto.DashboardDTO{
		Periodo:            string(periodo),
		TotalRecebido:      relatorio.TotalAtendimentos(regulares, periodo, now),
		TotalAnalises:      relatorio.TotalAnalises(analises, periodo, now),
		AtendimentosSemana: relatorio.AtendimentosNaSemana(regulares, now),
	})
}
