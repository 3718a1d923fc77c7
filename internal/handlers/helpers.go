package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/libertaapp/atendimentos-api/internal/middleware"
)

// operadoraID devolve o id numérico da usuária autenticada.
func operadoraID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}

// partitionKey é a chave de partição das coleções no armazenamento
// chave-valor: o id da usuária como string opaca.
func partitionKey(c *gin.Context) string {
	return strconv.FormatUint(uint64(operadoraID(c)), 10)
}
