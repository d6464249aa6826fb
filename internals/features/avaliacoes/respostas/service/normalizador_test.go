package service

import (
	"errors"
	"testing"

	modModel "capacita_backend/internals/features/avaliacoes/modelos/model"
)

var opcoesSNT = []string{"Sim", "Não", "Talvez"}
var opcoesSNP = []string{"Sim", "Não", "Parcialmente"}

func TestNormalizarCaseInsensitive(t *testing.T) {
	casos := []struct {
		cru  string
		quer string
	}{
		{"SIM", "Sim"},
		{"Sim", "Sim"},
		{"sim", "Sim"},
		{"  sim  ", "Sim"},
		{"talvez", "Talvez"},
		{"TALVEZ", "Talvez"},
	}
	for _, cs := range casos {
		r, err := Normalizar(cs.cru, modModel.TipoPerguntaSimNaoTalvez, opcoesSNT)
		if err != nil {
			t.Fatalf("Normalizar(%q): %v", cs.cru, err)
		}
		if r.Valor != cs.quer || r.NaoReconhecida || r.NaoRespondida {
			t.Errorf("Normalizar(%q) = %+v, esperava valor %q", cs.cru, r, cs.quer)
		}
	}
}

func TestNormalizarSinonimosSemAcento(t *testing.T) {
	// encoding legado: "NAO"/"nao" sem acento deve cair em "Não"
	for _, cru := range []string{"NAO", "nao", "Nao", "não", "NÃO"} {
		r, err := Normalizar(cru, modModel.TipoPerguntaSimNaoTalvez, opcoesSNT)
		if err != nil {
			t.Fatalf("Normalizar(%q): %v", cru, err)
		}
		if r.Valor != "Não" || r.NaoReconhecida {
			t.Errorf("Normalizar(%q) = %+v, esperava Não", cru, r)
		}
	}
}

func TestNormalizarFamiliaParcialmente(t *testing.T) {
	r, err := Normalizar("PARCIAL", modModel.TipoPerguntaSimNaoParcialmente, opcoesSNP)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if r.Valor != "Parcialmente" || r.NaoReconhecida {
		t.Fatalf("esperava Parcialmente, veio %+v", r)
	}
}

func TestNormalizarNaoReconhecidaPreservaValor(t *testing.T) {
	r, err := Normalizar("xyz", modModel.TipoPerguntaSimNaoTalvez, opcoesSNT)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if !r.NaoReconhecida {
		t.Fatal("esperava NaoReconhecida=true")
	}
	if r.Valor != "xyz" {
		t.Fatalf("valor original deveria ser preservado, veio %q", r.Valor)
	}
}

func TestNormalizarEscalaNumerica(t *testing.T) {
	opcoes := []string{"1", "2", "3", "4", "5"}
	r, err := Normalizar("3", modModel.TipoPerguntaEscala15, opcoes)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if r.Valor != "3" || r.NaoReconhecida {
		t.Fatalf("esperava 3, veio %+v", r)
	}
}

func TestNormalizarTextoLivre(t *testing.T) {
	r, err := Normalizar("  ótimo curso  ", modModel.TipoPerguntaTextoLivre, nil)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if r.Valor != "ótimo curso" || r.NaoRespondida {
		t.Fatalf("esperava texto com trim, veio %+v", r)
	}
}

func TestNormalizarTextoVazioEhSentinela(t *testing.T) {
	for _, cru := range []string{"", "   "} {
		r, err := Normalizar(cru, modModel.TipoPerguntaTextoLivre, nil)
		if err != nil {
			t.Fatalf("vazio não é erro: %v", err)
		}
		if !r.NaoRespondida {
			t.Fatalf("esperava sentinela NaoRespondida, veio %+v", r)
		}
	}
}

func TestNormalizarOpcaoVaziaEhSentinela(t *testing.T) {
	r, err := Normalizar("", modModel.TipoPerguntaSimNaoTalvez, opcoesSNT)
	if err != nil {
		t.Fatalf("vazio não é erro: %v", err)
	}
	if !r.NaoRespondida {
		t.Fatalf("esperava sentinela NaoRespondida, veio %+v", r)
	}
}

func TestNormalizarSemOpcoesFalha(t *testing.T) {
	_, err := Normalizar("Sim", modModel.TipoPerguntaSimNaoTalvez, nil)
	if !errors.Is(err, ErrOpcoesAusentes) {
		t.Fatalf("esperava ErrOpcoesAusentes, veio %v", err)
	}
}

func TestNormalizarDeterministica(t *testing.T) {
	a, _ := Normalizar("NAO", modModel.TipoPerguntaSimNaoTalvez, opcoesSNT)
	b, _ := Normalizar("NAO", modModel.TipoPerguntaSimNaoTalvez, opcoesSNT)
	if a != b {
		t.Fatalf("mesma entrada deveria dar mesma saída: %+v != %+v", a, b)
	}
}
