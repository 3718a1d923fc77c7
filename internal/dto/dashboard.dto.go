package dto

type DashboardDTO struct {
	Periodo            string  `json:"periodo"`
	TotalRecebido      float64 `json:"total_recebido"`
	TotalAnalises      float64 `json:"total_analises"`
	AtendimentosSemana int     `json:"atendimentos_semana"`
}

type ClienteDTO struct {
	Nome         string `json:"nome"`
	Atendimentos int    `json:"atendimentos"`
	Analises     int    `json:"analises"`
	UltimaVisita string `json:"ultima_visita,omitempty"`
}

type AnaliseListDTO struct {
	ID          string `json:"id"`
	NomeCliente string `json:"nomeCliente"`
	Signo       string `json:"signo,omitempty"`
	DataInicio  string `json:"dataInicio"`
	Preco       string `json:"preco,omitempty"`
	Finalizado  bool   `json:"finalizado"`
	Lembretes   int    `json:"lembretes"`
	AtencaoFlag bool   `json:"atencaoFlag"`
}
