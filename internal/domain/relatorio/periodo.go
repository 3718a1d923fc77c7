package relatorio

import (
	"strconv"
	"strings"
	"time"

	"github.com/libertaapp/atendimentos-api/internal/models"
)

// ===============================
// Períodos de relatório
// ===============================

type Periodo string

const (
	PeriodoDia    Periodo = "dia"
	PeriodoSemana Periodo = "semana"
	PeriodoMes    Periodo = "mes"
	PeriodoAno    Periodo = "ano"
)

// PrecoPadraoAnalise é usado quando a análise não tem preço válido.
const PrecoPadraoAnalise = 150

// PeriodoInicio devolve a meia-noite que abre o período contendo now.
// A semana começa no domingo. Período desconhecido cai na semana.
func PeriodoInicio(p Periodo, now time.Time) time.Time {
	loc := now.Location()

	switch p {
	case PeriodoDia:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	case PeriodoMes:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	case PeriodoAno:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
	default:
		domingo := now.AddDate(0, 0, -int(now.Weekday()))
		return time.Date(domingo.Year(), domingo.Month(), domingo.Day(), 0, 0, 0, 0, loc)
	}
}

// fimDoDia fecha o período no último instante do dia de now: o dia corrente
// inteiro conta mesmo nos períodos sub-diários.
func fimDoDia(now time.Time) time.Time {
	return time.Date(
		now.Year(), now.Month(), now.Day(),
		23, 59, 59, 999*int(time.Millisecond),
		now.Location(),
	)
}

// noPeriodo testa [inicio, fim] com ambas as pontas inclusas.
func noPeriodo(t, inicio, fim time.Time) bool {
	return !t.Before(inicio) && !t.After(fim)
}

// parseData aceita o formato de input de data (2006-01-02) e timestamps ISO.
// Data inválida exclui o registro dos agregados em vez de propagar erro.
func parseData(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), true
	}
	return time.Time{}, false
}

// parseValor trata valor ilegível como zero.
func parseValor(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// ===============================
// Agregados
// ===============================

// TotalAtendimentos soma os valores dos atendimentos cuja data cai no período.
func TotalAtendimentos(
	atendimentos []models.Atendimento,
	p Periodo,
	now time.Time,
) float64 {

	inicio := PeriodoInicio(p, now)
	fim := fimDoDia(now)

	total := 0.0
	for _, at := range atendimentos {
		data, ok := parseData(at.DataAtendimento, now.Location())
		if !ok || !noPeriodo(data, inicio, fim) {
			continue
		}
		total += parseValor(at.Valor)
	}
	return total
}

// TotalAnalises soma os preços das análises iniciadas no período,
// assumindo o preço padrão quando o campo está vazio ou ilegível.
func TotalAnalises(
	analises []models.AnaliseFrequencial,
	p Periodo,
	now time.Time,
) float64 {

	inicio := PeriodoInicio(p, now)
	fim := fimDoDia(now)

	total := 0.0
	for _, a := range analises {
		data, ok := parseData(a.DataInicio, now.Location())
		if !ok || !noPeriodo(data, inicio, fim) {
			continue
		}

		preco, err := strconv.ParseFloat(strings.TrimSpace(a.Preco), 64)
		if err != nil {
			preco = PrecoPadraoAnalise
		}
		total += preco
	}
	return total
}

// AtendimentosNoPeriodo filtra os atendimentos cuja data cai no período.
func AtendimentosNoPeriodo(
	atendimentos []models.Atendimento,
	p Periodo,
	now time.Time,
) []models.Atendimento {

	inicio := PeriodoInicio(p, now)
	fim := fimDoDia(now)

	out := make([]models.Atendimento, 0, len(atendimentos))
	for _, at := range atendimentos {
		data, ok := parseData(at.DataAtendimento, now.Location())
		if ok && noPeriodo(data, inicio, fim) {
			out = append(out, at)
		}
	}
	return out
}

// AtendimentosNaSemana conta atendimentos do domingo corrente até hoje.
func AtendimentosNaSemana(
	atendimentos []models.Atendimento,
	now time.Time,
) int {

	inicio := PeriodoInicio(PeriodoSemana, now)
	fim := fimDoDia(now)

	count := 0
	for _, at := range atendimentos {
		data, ok := parseData(at.DataAtendimento, now.Location())
		if ok && noPeriodo(data, inicio, fim) {
			count++
		}
	}
	return count
}
