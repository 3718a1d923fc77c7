package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/libertaapp/atendimentos-api/internal/domain/registro"
	"github.com/libertaapp/atendimentos-api/internal/domain/relatorio"
	"github.com/libertaapp/atendimentos-api/internal/httperr"
	"github.com/libertaapp/atendimentos-api/internal/httpresp"
	"github.com/libertaapp/atendimentos-api/internal/timezone"
)

type LembretesHandler struct {
	store registro.Store
}

func NewLembretesHandler(store registro.Store) *LembretesHandler {
	return &LembretesHandler{store: store}
}

// Expirando calcula os avisos de tratamento na hora da chamada; nada é
// persistido entre chamadas.
func (h *LembretesHandler) Expirando(c *gin.Context) {
	userID := partitionKey(c)

	analises, err := h.store.ListAnalises(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_analises", "Erro ao verificar tratamentos.")
		return
	}

	avisos := relatorio.LembretesExpirando(analises, timezone.Now())
	httpresp.List(c, avisos)
}
