package registro

import "time"

// ===============================
// Signo zodiacal
// ===============================

// SignoParaData deriva o signo a partir da data de nascimento (2006-01-02).
// Faixas inclusivas; o ramo final cobre exatamente o intervalo de Peixes
// (19/02 a 20/03), então toda data válida recebe um dos 12 signos.
// Data vazia ou inválida devolve string vazia.
func SignoParaData(dataNascimento string) string {
	if dataNascimento == "" {
		return ""
	}

	d, err := time.Parse("2006-01-02", dataNascimento)
	if err != nil {
		return ""
	}

	return Signo(int(d.Month()), d.Day())
}

// Signo mapeia (mês, dia) para o signo correspondente.
func Signo(month, day int) string {
	switch {
	case (month == 3 && day >= 21) || (month == 4 && day <= 19):
		return "Áries"
	case (month == 4 && day >= 20) || (month == 5 && day <= 20):
		return "Touro"
	case (month == 5 && day >= 21) || (month == 6 && day <= 20):
		return "Gêmeos"
	case (month == 6 && day >= 21) || (month == 7 && day <= 22):
		return "Câncer"
	case (month == 7 && day >= 23) || (month == 8 && day <= 22):
		return "Leão"
	case (month == 8 && day >= 23) || (month == 9 && day <= 22):
		return "Virgem"
	case (month == 9 && day >= 23) || (month == 10 && day <= 22):
		return "Libra"
	case (month == 10 && day >= 23) || (month == 11 && day <= 21):
		return "Escorpião"
	case (month == 11 && day >= 22) || (month == 12 && day <= 21):
		return "Sagitário"
	case (month == 12 && day >= 22) || (month == 1 && day <= 19):
		return "Capricórnio"
	case (month == 1 && day >= 20) || (month == 2 && day <= 18):
		return "Aquário"
	default:
		return "Peixes"
	}
}
