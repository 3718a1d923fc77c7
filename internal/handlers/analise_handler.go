package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/libertaapp/atendimentos-api/internal/domain/registro"
	"github.com/libertaapp/atendimentos-api/internal/domain/relatorio"
	"github.com/libertaapp/atendimentos-api/internal/dto"
	"github.com/libertaapp/atendimentos-api/internal/httperr"
	"github.com/libertaapp/atendimentos-api/internal/httpresp"
	"github.com/libertaapp/atendimentos-api/internal/models"
	ucAnalise "github.com/libertaapp/atendimentos-api/internal/usecase/analise"
)

// ======================================================
// HANDLER
// ======================================================

type AnaliseHandler struct {
	store       registro.Store
	createUC    *ucAnalise.CreateAnalise
	updateUC    *ucAnalise.UpdateAnalise
	deleteUC    *ucAnalise.DeleteAnalise
	finalizarUC *ucAnalise.FinalizarAnalise
}

func NewAnaliseHandler(
	store registro.Store,
	createUC *ucAnalise.CreateAnalise,
	updateUC *ucAnalise.UpdateAnalise,
	deleteUC *ucAnalise.DeleteAnalise,
	finalizarUC *ucAnalise.FinalizarAnalise,
) *AnaliseHandler {
	return &AnaliseHandler{
		store:       store,
		createUC:    createUC,
		updateUC:    updateUC,
		deleteUC:    deleteUC,
		finalizarUC: finalizarUC,
	}
}

// ======================================================
// LIST
// ======================================================

// List devolve as análises da usuária, filtradas pela visão:
// ?visao=em-andamento | finalizadas | todas (default em-andamento).
func (h *AnaliseHandler) List(c *gin.Context) {
	userID := partitionKey(c)

	analises, err := h.store.ListAnalises(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_analises", "Erro ao listar análises.")
		return
	}

	switch c.DefaultQuery("visao", "em-andamento") {
	case "em-andamento":
		analises = registro.EmAndamento(analises)
	case "finalizadas":
		analises = registro.Finalizadas(analises)
	case "todas":
		// sem filtro
	default:
		httperr.BadRequest(c, "invalid_view", "Visão inválida.")
		return
	}

	out := make([]dto.AnaliseListDTO, 0, len(analises))
	for _, a := range analises {
		out = append(out, dto.AnaliseListDTO{
			ID:          a.ID,
			NomeCliente: a.NomeCliente,
			Signo:       a.Signo,
			DataInicio:  a.DataInicio,
			Preco:       a.Preco,
			Finalizado:  a.Finalizado,
			Lembretes:   relatorio.ContarLembretes(a.Lembretes),
			AtencaoFlag: a.AtencaoFlag,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// GET BY ID
// ======================================================

func (h *AnaliseHandler) Get(c *gin.Context) {
	userID := partitionKey(c)
	id := c.Param("id")

	analises, err := h.store.ListAnalises(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_analises", "Erro ao buscar análise.")
		return
	}

	for _, a := range analises {
		if a.ID == id {
			httpresp.OK(c, a)
			return
		}
	}

	httperr.NotFound(c, "analise_not_found", "Análise não encontrada.")
}

// ======================================================
// CREATE
// ======================================================

func (h *AnaliseHandler) Create(c *gin.Context) {
	uid := operadoraID(c)

	var a models.AnaliseFrequencial
	if err := c.ShouldBindJSON(&a); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), partitionKey(c), &uid, a)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "missing_client_name"):
			httperr.BadRequest(c, "missing_client_name", "Informe o nome da cliente.")
		case httperr.IsBusiness(err, "missing_start_date"):
			httperr.BadRequest(c, "missing_start_date", "Informe a data de início.")
		case httperr.IsBusiness(err, "id_already_exists"):
			httperr.BadRequest(c, "id_already_exists", "Já existe uma análise com esse id.")
		default:
			httperr.Internal(c, "failed_to_create_analise", "Erro ao salvar análise.")
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AnaliseHandler) Update(c *gin.Context) {
	uid := operadoraID(c)
	id := c.Param("id")

	var a models.AnaliseFrequencial
	if err := c.ShouldBindJSON(&a); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), partitionKey(c), &uid, id, a)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "analise_not_found"):
			httperr.NotFound(c, "analise_not_found", "Análise não encontrada.")
		case httperr.IsBusiness(err, "missing_client_name"):
			httperr.BadRequest(c, "missing_client_name", "Informe o nome da cliente.")
		case httperr.IsBusiness(err, "missing_start_date"):
			httperr.BadRequest(c, "missing_start_date", "Informe a data de início.")
		default:
			httperr.Internal(c, "failed_to_update_analise", "Erro ao atualizar análise.")
		}
		return
	}

	httpresp.OK(c, updated)
}

// ======================================================
// DELETE
// ======================================================

func (h *AnaliseHandler) Delete(c *gin.Context) {
	uid := operadoraID(c)
	id := c.Param("id")

	err := h.deleteUC.Execute(c.Request.Context(), partitionKey(c), &uid, id)
	if err != nil {
		if httperr.IsBusiness(err, "analise_not_found") {
			httperr.NotFound(c, "analise_not_found", "Análise não encontrada.")
			return
		}

		httperr.Internal(c, "failed_to_delete_analise", "Erro ao excluir análise.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// FINALIZAR / REABRIR
// ======================================================

func (h *AnaliseHandler) Finalizar(c *gin.Context) {
	h.mudarEstado(c, false)
}

func (h *AnaliseHandler) Reabrir(c *gin.Context) {
	h.mudarEstado(c, true)
}

func (h *AnaliseHandler) mudarEstado(c *gin.Context, reabrir bool) {
	uid := operadoraID(c)
	id := c.Param("id")

	analise, err := h.finalizarUC.Execute(c.Request.Context(), partitionKey(c), &uid, id, reabrir)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "analise_not_found"):
			httperr.NotFound(c, "analise_not_found", "Análise não encontrada.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "A análise já está nesse estado.")
		default:
			httperr.Internal(c, "failed_to_change_state", "Erro ao mudar estado da análise.")
		}
		return
	}

	httpresp.OK(c, analise)
}
