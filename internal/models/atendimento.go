package models

// Atendimento é um registro de sessão da operadora. Os nomes dos campos JSON
// seguem o formato de armazenamento original do Libertá e não podem mudar:
// dados já gravados precisam continuar legíveis.
type Atendimento struct {
	ID              string `json:"id"`
	Nome            string `json:"nome"`
	DataNascimento  string `json:"dataNascimento,omitempty"`
	Signo           string `json:"signo,omitempty"`
	TipoServico     string `json:"tipoServico"`
	StatusPagamento string `json:"statusPagamento,omitempty"`
	DataAtendimento string `json:"dataAtendimento"`
	Valor           string `json:"valor"`
	Destino         string `json:"destino,omitempty"`
	Ano             string `json:"ano,omitempty"`
	AtencaoFlag     bool   `json:"atencaoFlag"`
	AtencaoNota     string `json:"atencaoNota,omitempty"`
	Detalhes        string `json:"detalhes,omitempty"`
	Tratamento      string `json:"tratamento,omitempty"`
	Indicacao       string `json:"indicacao,omitempty"`
	FotoURL         string `json:"fotoUrl,omitempty"`

	// Data é o timestamp ISO de criação (imutável após o save inicial).
	Data string `json:"data"`
}

// Status de pagamento aceitos em statusPagamento.
const (
	PagamentoPago      = "pago"
	PagamentoPendente  = "pendente"
	PagamentoParcelado = "parcelado"
)

// TipoTarotFrequencial identifica atendimentos que pertencem ao fluxo de
// análise frequencial e ficam fora das listagens regulares.
const TipoTarotFrequencial = "tarot-frequencial"
