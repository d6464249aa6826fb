package model

import "testing"

func TestClassificacaoDosTipos(t *testing.T) {
	casos := []struct {
		tipo       TipoPergunta
		escala     bool
		categorica bool
		textoLivre bool
	}{
		{TipoPerguntaEscala15, true, false, false},
		{TipoPerguntaEscala13, true, false, false},
		{TipoPerguntaSimNaoTalvez, false, true, false},
		{TipoPerguntaSimNaoParcialmente, false, true, false},
		{TipoPerguntaTextoLivre, false, false, true},
	}

	for _, c := range casos {
		if c.tipo.EhEscala() != c.escala {
			t.Errorf("%s: EhEscala = %v, esperado %v", c.tipo, c.tipo.EhEscala(), c.escala)
		}
		if c.tipo.EhCategorica() != c.categorica {
			t.Errorf("%s: EhCategorica = %v, esperado %v", c.tipo, c.tipo.EhCategorica(), c.categorica)
		}
		if c.tipo.EhTextoLivre() != c.textoLivre {
			t.Errorf("%s: EhTextoLivre = %v, esperado %v", c.tipo, c.tipo.EhTextoLivre(), c.textoLivre)
		}
		// todo tipo é exatamente uma das três famílias
		if !c.tipo.EhEscala() && !c.tipo.EhCategorica() && !c.tipo.EhTextoLivre() {
			t.Errorf("%s: não pertence a nenhuma família", c.tipo)
		}
	}
}

func TestTipoPerguntaValido(t *testing.T) {
	for _, s := range []string{"escala_1_5", "escala_1_3", "sim_nao_talvez", "sim_nao_parcialmente", "texto_livre"} {
		if !TipoPerguntaValido(s) {
			t.Errorf("%q deveria ser válido", s)
		}
	}
	for _, s := range []string{"", "escala", "ESCALA_1_5", "sim_nao", "multipla_escolha"} {
		if TipoPerguntaValido(s) {
			t.Errorf("%q não deveria ser válido", s)
		}
	}
}
