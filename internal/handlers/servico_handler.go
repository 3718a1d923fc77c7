package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/libertaapp/atendimentos-api/internal/httperr"
	"github.com/libertaapp/atendimentos-api/internal/models"
)

type ServicoHandler struct {
	db *gorm.DB
}

func NewServicoHandler(db *gorm.DB) *ServicoHandler {
	return &ServicoHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateServicoRequest struct {
	Slug  string  `json:"slug" binding:"required"`
	Nome  string  `json:"nome" binding:"required"`
	Preco float64 `json:"preco"`
}

type UpdateServicoRequest struct {
	Nome   *string  `json:"nome"`
	Preco  *float64 `json:"preco"`
	Active *bool    `json:"active"`
}

// ======================================================
// LIST
// ======================================================

func (h *ServicoHandler) List(c *gin.Context) {
	var servicos []models.TipoServico
	if err := h.db.
		Where("active = ?", true).
		Order("nome ASC").
		Find(&servicos).Error; err != nil {

		httperr.Internal(c, "failed_to_list_servicos", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, servicos)
}

// ======================================================
// CREATE
// ======================================================

func (h *ServicoHandler) Create(c *gin.Context) {
	var req CreateServicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))

	var count int64
	h.db.Model(&models.TipoServico{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "slug_already_exists", "Já existe um serviço com esse código.")
		return
	}

	servico := models.TipoServico{
		Slug:   slug,
		Nome:   req.Nome,
		Preco:  req.Preco,
		Active: true,
	}

	if err := h.db.Create(&servico).Error; err != nil {
		httperr.Internal(c, "failed_to_create_servico", "Erro ao criar serviço.")
		return
	}

	c.JSON(http.StatusCreated, servico)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ServicoHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var servico models.TipoServico
	if err := h.db.First(&servico, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "servico_not_found", "Serviço não encontrado.")
		return
	}

	var req UpdateServicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Nome != nil {
		servico.Nome = *req.Nome
	}
	if req.Preco != nil {
		servico.Preco = *req.Preco
	}
	if req.Active != nil {
		servico.Active = *req.Active
	}

	if err := h.db.Save(&servico).Error; err != nil {
		httperr.Internal(c, "failed_to_update_servico", "Erro ao atualizar serviço.")
		return
	}

	c.JSON(http.StatusOK, servico)
}
