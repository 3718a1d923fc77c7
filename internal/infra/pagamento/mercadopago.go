package pagamento

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/libertaapp/atendimentos-api/internal/config"
)

// Link é o resultado da criação de uma cobrança: a URL de checkout
// que a operadora envia para a cliente.
type Link struct {
	PreferenceID string `json:"preference_id"`
	InitPoint    string `json:"init_point"`
}

type MercadoPago struct {
	prefs preference.Client
}

func NewMercadoPago(cfg *config.Config) (*MercadoPago, error) {
	mpCfg, err := mpconfig.New(cfg.MercadoPagoToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config failed: %w", err)
	}

	return &MercadoPago{
		prefs: preference.NewClient(mpCfg),
	}, nil
}

// CriarLink cria uma preference de pagamento para um atendimento.
func (m *MercadoPago) CriarLink(
	ctx context.Context,
	atendimentoID string,
	descricao string,
	valor float64,
) (*Link, error) {

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:     descricao,
				Quantity:  1,
				UnitPrice: valor,
			},
		},
		ExternalReference: atendimentoID,
	}

	resp, err := m.prefs.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("mercadopago preference failed: %w", err)
	}

	return &Link{
		PreferenceID: resp.ID,
		InitPoint:    resp.InitPoint,
	}, nil
}
