package models

// Lembrete é um tratamento com prazo dentro de uma análise frequencial.
// O id é único apenas dentro da análise que o contém.
type Lembrete struct {
	ID    int    `json:"id"`
	Texto string `json:"texto"`
	Dias  int    `json:"dias"`
}

// AnaliseFrequencial é o registro de acompanhamento de tratamento.
// Campos JSON no formato de armazenamento original.
type AnaliseFrequencial struct {
	ID             string `json:"id"`
	NomeCliente    string `json:"nomeCliente"`
	DataNascimento string `json:"dataNascimento,omitempty"`
	Signo          string `json:"signo,omitempty"`
	AtencaoFlag    bool   `json:"atencaoFlag"`

	DataInicio    string     `json:"dataInicio"`
	Preco         string     `json:"preco,omitempty"`
	AnaliseAntes  string     `json:"analiseAntes,omitempty"`
	AnaliseDepois string     `json:"analiseDepois,omitempty"`
	Lembretes     []Lembrete `json:"lembretes"`

	DataCriacao string `json:"dataCriacao"`

	// Finalizado divide as análises em exatamente duas visões:
	// em andamento (false) e finalizadas (true).
	Finalizado bool `json:"finalizado"`
}

// ProximoLembreteID devolve o próximo id monotônico para um novo lembrete.
func (a *AnaliseFrequencial) ProximoLembreteID() int {
	max := 0
	for _, l := range a.Lembretes {
		if l.ID > max {
			max = l.ID
		}
	}
	return max + 1
}
