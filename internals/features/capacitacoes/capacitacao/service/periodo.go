// file: internals/features/capacitacoes/capacitacao/service/periodo.go
package service

import (
	"errors"
	"time"
)

// ErrPeriodoInvalido: data_fim anterior à data_inicio. Deve ser mostrado ao
// operador que está editando a capacitação, nunca corrigido em silêncio.
var ErrPeriodoInvalido = errors.New("período inválido: data final anterior à data inicial")

// SomenteData descarta hora e fuso, mantendo apenas a data de calendário.
// Registros vindos do DB (ou de clientes) podem carregar horário/offset que
// não interessam aqui; uma capacitação de "dia N a dia N" tem exatamente um
// dia, independente do relógio local de quem gravou.
func SomenteData(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ExpandirPeriodo devolve as datas de calendário que a capacitação cobre,
// em ordem estritamente crescente, inclusive nas duas pontas.
// - fim == nil → período de um dia só (igual ao início)
// - fim < início → ErrPeriodoInvalido
// - início zerado → lista vazia (capacitação ainda sem data)
// O resultado é recalculado a cada chamada; nada é cacheado.
func ExpandirPeriodo(inicio time.Time, fim *time.Time) ([]time.Time, error) {
	if inicio.IsZero() {
		return nil, nil
	}

	ini := SomenteData(inicio)
	fimDia := ini
	if fim != nil && !fim.IsZero() {
		fimDia = SomenteData(*fim)
	}

	if fimDia.Before(ini) {
		return nil, ErrPeriodoInvalido
	}

	var datas []time.Time
	for d := ini; !d.After(fimDia); d = d.AddDate(0, 0, 1) {
		datas = append(datas, d)
	}
	return datas, nil
}

// PeriodoContem informa se a data cai dentro do período [início, fim].
func PeriodoContem(inicio time.Time, fim *time.Time, data time.Time) (bool, error) {
	datas, err := ExpandirPeriodo(inicio, fim)
	if err != nil {
		return false, err
	}
	alvo := SomenteData(data)
	for _, d := range datas {
		if d.Equal(alvo) {
			return true, nil
		}
	}
	return false, nil
}
