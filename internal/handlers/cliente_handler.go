package handlers

import (
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/libertaapp/atendimentos-api/internal/domain/registro"
	"github.com/libertaapp/atendimentos-api/internal/dto"
	"github.com/libertaapp/atendimentos-api/internal/httperr"
	"github.com/libertaapp/atendimentos-api/internal/httpresp"
	"github.com/libertaapp/atendimentos-api/internal/models"
)

type ClienteHandler struct {
	store registro.Store
}

func NewClienteHandler(store registro.Store) *ClienteHandler {
	return &ClienteHandler{store: store}
}

// ======================================================
// LIST CLIENTES (derivado dos registros)
// ======================================================

// List agrega os nomes de cliente presentes nos atendimentos e análises da
// usuária. Não existe cadastro separado de clientes; a listagem é derivada.
func (h *ClienteHandler) List(c *gin.Context) {
	userID := partitionKey(c)
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	atendimentos, err := h.store.ListAtendimentos(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_clientes", "Erro ao listar clientes.")
		return
	}

	analises, err := h.store.ListAnalises(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_clientes", "Erro ao listar clientes.")
		return
	}

	porNome := map[string]*dto.ClienteDTO{}

	for _, at := range atendimentos {
		nome := strings.TrimSpace(at.Nome)
		if nome == "" {
			continue
		}

		cli := porNome[strings.ToLower(nome)]
		if cli == nil {
			cli = &dto.ClienteDTO{Nome: nome}
			porNome[strings.ToLower(nome)] = cli
		}
		cli.Atendimentos++
		if at.DataAtendimento > cli.UltimaVisita {
			cli.UltimaVisita = at.DataAtendimento
		}
	}

	for _, a := range analises {
		nome := strings.TrimSpace(a.NomeCliente)
		if nome == "" {
			continue
		}

		cli := porNome[strings.ToLower(nome)]
		if cli == nil {
			cli = &dto.ClienteDTO{Nome: nome}
			porNome[strings.ToLower(nome)] = cli
		}
		cli.Analises++
		if a.DataInicio > cli.UltimaVisita {
			cli.UltimaVisita = a.DataInicio
		}
	}

	out := make([]dto.ClienteDTO, 0, len(porNome))
	for chave, cli := range porNome {
		if query != "" && !strings.Contains(chave, query) {
			continue
		}
		out = append(out, *cli)
	}

	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Nome) < strings.ToLower(out[j].Nome)
	})

	httpresp.List(c, out)
}

// ======================================================
// RELATÓRIO INDIVIDUAL
// ======================================================

// Individual devolve todos os registros de uma cliente pelo nome.
func (h *ClienteHandler) Individual(c *gin.Context) {
	userID := partitionKey(c)
	nome := strings.ToLower(strings.TrimSpace(c.Param("nome")))
	if nome == "" {
		httperr.BadRequest(c, "missing_client_name", "Informe o nome da cliente.")
		return
	}

	atendimentos, err := h.store.ListAtendimentos(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_build_report", "Erro ao montar relatório.")
		return
	}

	analises, err := h.store.ListAnalises(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_build_report", "Erro ao montar relatório.")
		return
	}

	atCliente := make([]models.Atendimento, 0, len(atendimentos))
	for _, at := range atendimentos {
		if strings.ToLower(strings.TrimSpace(at.Nome)) == nome {
			atCliente = append(atCliente, at)
		}
	}

	anCliente := make([]models.AnaliseFrequencial, 0, len(analises))
	for _, a := range analises {
		if strings.ToLower(strings.TrimSpace(a.NomeCliente)) == nome {
			anCliente = append(anCliente, a)
		}
	}

	if len(atCliente) == 0 && len(anCliente) == 0 {
		httperr.NotFound(c, "cliente_not_found", "Cliente não encontrada.")
		return
	}

	httpresp.OK(c, gin.H{
		"atendimentos": atCliente,
		"analises":     anCliente,
	})
}
