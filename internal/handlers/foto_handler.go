package handlers

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	"github.com/chai2010/webp"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"

	"github.com/libertaapp/atendimentos-api/internal/domain/registro"
	"github.com/libertaapp/atendimentos-api/internal/httperr"
	"github.com/libertaapp/atendimentos-api/internal/infra/bucket"
)

// tamanho máximo do lado maior após o redimensionamento
const fotoMaxDim = 512

type FotoHandler struct {
	store  registro.Store
	bucket *bucket.Client
}

func NewFotoHandler(store registro.Store, b *bucket.Client) *FotoHandler {
	return &FotoHandler{store: store, bucket: b}
}

// Upload recebe a foto da cliente, reduz, converte para webp e guarda a URL
// no atendimento.
func (h *FotoHandler) Upload(c *gin.Context) {
	userID := partitionKey(c)
	id := c.Param("id")

	atendimentos, err := h.store.ListAtendimentos(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_atendimentos", "Erro ao buscar atendimento.")
		return
	}

	idx := -1
	for i := range atendimentos {
		if atendimentos[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		httperr.NotFound(c, "atendimento_not_found", "Atendimento não encontrado.")
		return
	}

	file, err := c.FormFile("foto")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie o arquivo no campo 'foto'.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler o arquivo.")
		return
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida (use JPEG ou PNG).")
		return
	}

	encoded, err := reencode(img)
	if err != nil {
		httperr.Internal(c, "failed_to_encode_image", "Erro ao processar a imagem.")
		return
	}

	key := fmt.Sprintf("fotos/%s/%s.webp", userID, uuid.NewString())
	url, err := h.bucket.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Erro ao subir a imagem.")
		return
	}

	atendimentos[idx].FotoURL = url
	if err := h.store.UpsertAtendimento(c.Request.Context(), userID, atendimentos[idx]); err != nil {
		httperr.Internal(c, "failed_to_save_atendimento", "Erro ao salvar atendimento.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"fotoUrl": url})
}

// reencode reduz a imagem para no máximo fotoMaxDim no lado maior e
// converte para webp.
func reencode(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > fotoMaxDim || h > fotoMaxDim {
		ratio := float64(fotoMaxDim) / float64(w)
		if h > w {
			ratio = float64(fotoMaxDim) / float64(h)
		}

		dst := image.NewRGBA(image.Rect(0, 0,
			int(float64(w)*ratio),
			int(float64(h)*ratio),
		))
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
