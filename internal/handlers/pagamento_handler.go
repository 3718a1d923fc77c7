package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/libertaapp/atendimentos-api/internal/domain/registro"
	"github.com/libertaapp/atendimentos-api/internal/httperr"
	"github.com/libertaapp/atendimentos-api/internal/infra/pagamento"
	"github.com/libertaapp/atendimentos-api/internal/models"
)

type PagamentoHandler struct {
	store registro.Store
	mp    *pagamento.MercadoPago
}

func NewPagamentoHandler(store registro.Store, mp *pagamento.MercadoPago) *PagamentoHandler {
	return &PagamentoHandler{store: store, mp: mp}
}

// CriarLink gera um link de cobrança para um atendimento com pagamento
// pendente ou parcelado.
func (h *PagamentoHandler) CriarLink(c *gin.Context) {
	if h.mp == nil {
		httperr.Internal(c, "payments_not_configured", "Pagamentos não configurados.")
		return
	}

	userID := partitionKey(c)
	id := c.Param("id")

	atendimentos, err := h.store.ListAtendimentos(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_atendimentos", "Erro ao buscar atendimento.")
		return
	}

	var alvo *models.Atendimento
	for i := range atendimentos {
		if atendimentos[i].ID == id {
			alvo = &atendimentos[i]
			break
		}
	}
	if alvo == nil {
		httperr.NotFound(c, "atendimento_not_found", "Atendimento não encontrado.")
		return
	}

	if alvo.StatusPagamento != models.PagamentoPendente &&
		alvo.StatusPagamento != models.PagamentoParcelado {
		httperr.BadRequest(c, "invalid_payment_status", "O atendimento não tem pagamento em aberto.")
		return
	}

	valor, err := strconv.ParseFloat(strings.TrimSpace(alvo.Valor), 64)
	if err != nil || valor <= 0 {
		httperr.BadRequest(c, "invalid_amount", "Valor do atendimento inválido.")
		return
	}

	descricao := fmt.Sprintf("Atendimento - %s", alvo.Nome)
	link, err := h.mp.CriarLink(c.Request.Context(), alvo.ID, descricao, valor)
	if err != nil {
		httperr.Internal(c, "failed_to_create_payment", "Erro ao gerar cobrança.")
		return
	}

	c.JSON(http.StatusCreated, link)
}
