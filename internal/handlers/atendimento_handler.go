package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/libertaapp/atendimentos-api/internal/domain/registro"
	"github.com/libertaapp/atendimentos-api/internal/domain/relatorio"
	"github.com/libertaapp/atendimentos-api/internal/httperr"
	"github.com/libertaapp/atendimentos-api/internal/httpresp"
	"github.com/libertaapp/atendimentos-api/internal/models"
	"github.com/libertaapp/atendimentos-api/internal/timezone"
	ucAtendimento "github.com/libertaapp/atendimentos-api/internal/usecase/atendimento"
)

// ======================================================
// HANDLER
// ======================================================

type AtendimentoHandler struct {
	store    registro.Store
	createUC *ucAtendimento.CreateAtendimento
	updateUC *ucAtendimento.UpdateAtendimento
	deleteUC *ucAtendimento.DeleteAtendimento
}

func NewAtendimentoHandler(
	store registro.Store,
	createUC *ucAtendimento.CreateAtendimento,
	updateUC *ucAtendimento.UpdateAtendimento,
	deleteUC *ucAtendimento.DeleteAtendimento,
) *AtendimentoHandler {
	return &AtendimentoHandler{
		store:    store,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// ======================================================
// LIST
// ======================================================

// List devolve os atendimentos da usuária. O fluxo tarot-frequencial fica de
// fora, a não ser com ?todos=1. ?periodo=dia|semana|mes|ano restringe por
// data de atendimento.
func (h *AtendimentoHandler) List(c *gin.Context) {
	userID := partitionKey(c)

	atendimentos, err := h.store.ListAtendimentos(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_atendimentos", "Erro ao listar atendimentos.")
		return
	}

	if c.Query("todos") != "1" {
		atendimentos = registro.AtendimentosRegulares(atendimentos)
	}

	if p := c.Query("periodo"); p != "" {
		periodo := relatorio.Periodo(p)
		switch periodo {
		case relatorio.PeriodoDia, relatorio.PeriodoSemana, relatorio.PeriodoMes, relatorio.PeriodoAno:
		default:
			httperr.BadRequest(c, "invalid_period", "Período inválido.")
			return
		}
		atendimentos = relatorio.AtendimentosNoPeriodo(atendimentos, periodo, timezone.Now())
	}

	httpresp.List(c, atendimentos)
}

// ======================================================
// GET BY ID
// ======================================================

func (h *AtendimentoHandler) Get(c *gin.Context) {
	userID := partitionKey(c)
	id := c.Param("id")

	atendimentos, err := h.store.ListAtendimentos(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_atendimentos", "Erro ao buscar atendimento.")
		return
	}

	for _, at := range atendimentos {
		if at.ID == id {
			httpresp.OK(c, at)
			return
		}
	}

	httperr.NotFound(c, "atendimento_not_found", "Atendimento não encontrado.")
}

// ======================================================
// CREATE
// ======================================================

func (h *AtendimentoHandler) Create(c *gin.Context) {
	uid := operadoraID(c)

	var at models.Atendimento
	if err := c.ShouldBindJSON(&at); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), partitionKey(c), &uid, at)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "missing_client_name"):
			httperr.BadRequest(c, "missing_client_name", "Informe o nome da cliente.")
		case httperr.IsBusiness(err, "invalid_service_type"):
			httperr.BadRequest(c, "invalid_service_type", "Tipo de serviço desconhecido.")
		case httperr.IsBusiness(err, "id_already_exists"):
			httperr.BadRequest(c, "id_already_exists", "Já existe um atendimento com esse id.")
		default:
			httperr.Internal(c, "failed_to_create_atendimento", "Erro ao salvar atendimento.")
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AtendimentoHandler) Update(c *gin.Context) {
	uid := operadoraID(c)
	id := c.Param("id")

	var at models.Atendimento
	if err := c.ShouldBindJSON(&at); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), partitionKey(c), &uid, id, at)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "atendimento_not_found"):
			httperr.NotFound(c, "atendimento_not_found", "Atendimento não encontrado.")
		case httperr.IsBusiness(err, "missing_client_name"):
			httperr.BadRequest(c, "missing_client_name", "Informe o nome da cliente.")
		default:
			httperr.Internal(c, "failed_to_update_atendimento", "Erro ao atualizar atendimento.")
		}
		return
	}

	httpresp.OK(c, updated)
}

// ======================================================
// DELETE
// ======================================================

func (h *AtendimentoHandler) Delete(c *gin.Context) {
	uid := operadoraID(c)
	id := c.Param("id")

	err := h.deleteUC.Execute(c.Request.Context(), partitionKey(c), &uid, id)
	if err != nil {
		if httperr.IsBusiness(err, "atendimento_not_found") {
			httperr.NotFound(c, "atendimento_not_found", "Atendimento não encontrado.")
			return
		}

		httperr.Internal(c, "failed_to_delete_atendimento", "Erro ao excluir atendimento.")
		return
	}

	c.Status(http.StatusNoContent)
}
