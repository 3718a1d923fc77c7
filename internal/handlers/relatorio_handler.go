package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/libertaapp/atendimentos-api/internal/domain/registro"
	"github.com/libertaapp/atendimentos-api/internal/domain/relatorio"
	"github.com/libertaapp/atendimentos-api/internal/httperr"
	"github.com/libertaapp/atendimentos-api/internal/httpresp"
	"github.com/libertaapp/atendimentos-api/internal/timezone"
)

type RelatorioHandler struct {
	store registro.Store
}

func NewRelatorioHandler(store registro.Store) *RelatorioHandler {
	return &RelatorioHandler{store: store}
}

// Geral é a visão do consultório inteiro: une as análises de todas as
// operadoras em tempo de leitura (não existe coleção global persistida).
func (h *RelatorioHandler) Geral(c *gin.Context) {
	analises, err := h.store.ListAllAnalises(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_analises", "Erro ao montar relatório.")
		return
	}

	now := timezone.Now()

	httpresp.OK(c, gin.H{
		"analises": analises,
		"totais": gin.H{
			"mes": relatorio.TotalAnalises(analises, relatorio.PeriodoMes, now),
			"ano": relatorio.TotalAnalises(analises, relatorio.PeriodoAno, now),
		},
		"finalizadas":  len(registro.Finalizadas(analises)),
		"em_andamento": len(registro.EmAndamento(analises)),
	})
}
