package catalogo

import (
	"context"

	"gorm.io/gorm"

	"github.com/libertaapp/atendimentos-api/internal/models"
	ucAtendimento "github.com/libertaapp/atendimentos-api/internal/usecase/atendimento"
)

type GormCatalogo struct {
	db *gorm.DB
}

func NewGormCatalogo(db *gorm.DB) *GormCatalogo {
	return &GormCatalogo{db: db}
}

func (c *GormCatalogo) TipoServicoValido(
	ctx context.Context,
	slug string,
) (bool, error) {

	var count int64
	if err := c.db.WithContext(ctx).
		Model(&models.TipoServico{}).
		Where("slug = ? AND active = ?", slug, true).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Compile-time check
var _ ucAtendimento.Catalogo = (*GormCatalogo)(nil)
