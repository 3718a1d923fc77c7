package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	infrastore "github.com/libertaapp/atendimentos-api/internal/infra/store"
	"github.com/libertaapp/atendimentos-api/internal/middleware"
	"github.com/libertaapp/atendimentos-api/internal/models"
	"github.com/libertaapp/atendimentos-api/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAnaliseListHandler(t *testing.T) *AnaliseHandler {
	t.Helper()

	store := infrastore.NewKVStore(storage.NewMemory())
	if err := store.SaveAnalises(context.Background(), "7", []models.AnaliseFrequencial{
		{ID: "a", NomeCliente: "Ana", DataInicio: "2025-06-01", Finalizado: false},
		{ID: "b", NomeCliente: "Bia", DataInicio: "2025-06-02", Finalizado: true},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	return NewAnaliseHandler(store, nil, nil, nil, nil)
}

func listAnalises(t *testing.T, h *AnaliseHandler, url string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, url, nil)
	c.Set(middleware.ContextUserID, uint(7))

	h.List(c)
	return w
}

func TestAnaliseListVisao(t *testing.T) {
	h := newAnaliseListHandler(t)

	tests := []struct {
		name string
		url  string
		ids  []string
	}{
		{"default em andamento", "/me/analises", []string{"a"}},
		{"em-andamento explícito", "/me/analises?visao=em-andamento", []string{"a"}},
		{"finalizadas", "/me/analises?visao=finalizadas", []string{"b"}},
		{"todas", "/me/analises?visao=todas", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := listAnalises(t, h, tt.url)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, expected 200 (body %s)", w.Code, w.Body.String())
			}

			var resp struct {
				Data []struct {
					ID string `json:"id"`
				} `json:"data"`
				Total int `json:"total"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			if resp.Total != len(tt.ids) {
				t.Fatalf("total = %d, expected %d", resp.Total, len(tt.ids))
			}
			for i, id := range tt.ids {
				if resp.Data[i].ID != id {
					t.Errorf("data[%d].id = %q, expected %q", i, resp.Data[i].ID, id)
				}
			}
		})
	}
}

func TestAnaliseListVisaoInvalida(t *testing.T) {
	h := newAnaliseListHandler(t)

	w := listAnalises(t, h, "/me/analises?visao=arquivadas")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, expected 400", w.Code)
	}

	var resp struct {
		Code string `json:"error_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Code != "invalid_view" {
		t.Errorf("error_code = %q, expected invalid_view", resp.Code)
	}
}
