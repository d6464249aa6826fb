package service

import (
	"errors"
	"testing"
	"time"
)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandirPeriodoDiaUnico(t *testing.T) {
	d := dia(2024, 3, 1)
	datas, err := ExpandirPeriodo(d, &d)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(datas) != 1 || !datas[0].Equal(d) {
		t.Fatalf("esperava [%v], veio %v", d, datas)
	}
}

func TestExpandirPeriodoSemFim(t *testing.T) {
	d := dia(2024, 3, 1)
	datas, err := ExpandirPeriodo(d, nil)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(datas) != 1 || !datas[0].Equal(d) {
		t.Fatalf("fim nil deveria equivaler a um dia só, veio %v", datas)
	}
}

func TestExpandirPeriodoTresDias(t *testing.T) {
	ini := dia(2024, 3, 1)
	fim := dia(2024, 3, 3)
	datas, err := ExpandirPeriodo(ini, &fim)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	esperado := []time.Time{dia(2024, 3, 1), dia(2024, 3, 2), dia(2024, 3, 3)}
	if len(datas) != len(esperado) {
		t.Fatalf("esperava %d datas, veio %d: %v", len(esperado), len(datas), datas)
	}
	for i := range esperado {
		if !datas[i].Equal(esperado[i]) {
			t.Errorf("posição %d: esperava %v, veio %v", i, esperado[i], datas[i])
		}
	}
}

func TestExpandirPeriodoIgnoraHoraEFuso(t *testing.T) {
	// timestamps com hora e offset diferentes, mas mesmas datas de calendário
	sp, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Skipf("tzdata indisponível: %v", err)
	}
	ini := time.Date(2024, 3, 1, 23, 50, 0, 0, sp)
	fim := time.Date(2024, 3, 3, 0, 10, 0, 0, time.FixedZone("X", 5*3600))
	datas, err := ExpandirPeriodo(ini, &fim)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(datas) != 3 {
		t.Fatalf("esperava 3 datas independente do fuso, veio %d: %v", len(datas), datas)
	}
	if !datas[0].Equal(dia(2024, 3, 1)) || !datas[2].Equal(dia(2024, 3, 3)) {
		t.Fatalf("pontas erradas: %v", datas)
	}
}

func TestExpandirPeriodoInvertido(t *testing.T) {
	ini := dia(2024, 3, 5)
	fim := dia(2024, 3, 1)
	_, err := ExpandirPeriodo(ini, &fim)
	if !errors.Is(err, ErrPeriodoInvalido) {
		t.Fatalf("esperava ErrPeriodoInvalido, veio %v", err)
	}
}

func TestExpandirPeriodoInicioZerado(t *testing.T) {
	datas, err := ExpandirPeriodo(time.Time{}, nil)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(datas) != 0 {
		t.Fatalf("início zerado deveria dar lista vazia, veio %v", datas)
	}
}

func TestPeriodoContem(t *testing.T) {
	ini := dia(2024, 3, 1)
	fim := dia(2024, 3, 3)

	casos := []struct {
		data time.Time
		quer bool
	}{
		{dia(2024, 3, 1), true},
		{dia(2024, 3, 2), true},
		{dia(2024, 3, 3), true},
		{dia(2024, 2, 29), false},
		{dia(2024, 3, 4), false},
		// mesma data com horário não pode mudar o resultado
		{time.Date(2024, 3, 2, 18, 30, 0, 0, time.FixedZone("X", -3*3600)), true},
	}
	for _, cs := range casos {
		ok, err := PeriodoContem(ini, &fim, cs.data)
		if err != nil {
			t.Fatalf("erro inesperado para %v: %v", cs.data, err)
		}
		if ok != cs.quer {
			t.Errorf("PeriodoContem(%v) = %v, esperava %v", cs.data, ok, cs.quer)
		}
	}
}
