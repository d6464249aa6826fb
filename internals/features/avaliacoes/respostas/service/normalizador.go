// file: internals/features/avaliacoes/respostas/service/normalizador.go
package service

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	modModel "capacita_backend/internals/features/avaliacoes/modelos/model"
)

// ErrOpcoesAusentes: pergunta fechada chegou sem a lista de opções.
// Isso é defeito na definição do formulário, não entrada ruim do usuário;
// não pode ser tolerado em silêncio.
var ErrOpcoesAusentes = errors.New("pergunta fechada sem lista de opções")

// RespostaNormalizada é o valor canônico de uma resposta crua.
// NaoRespondida é um sentinela (não um erro): campo vazio/ausente.
// NaoReconhecida marca valor que não casou com opção nem sinônimo; o valor
// original é preservado para o agregador contar. Perda de dado nunca é muda.
type RespostaNormalizada struct {
	Valor          string `json:"valor"`
	NaoRespondida  bool   `json:"nao_respondida,omitempty"`
	NaoReconhecida bool   `json:"nao_reconhecida,omitempty"`
}

/* =========================================
   Tabelas de sinônimos por família

   Encodings legados chegam de tudo quanto é jeito: "SIM", "sim", "NAO",
   "nao"... A tabela mapeia o token case/acento-insensível para o rótulo
   canônico da família. Uma tabela declarativa por família substitui os
   blocos de comparação espalhados que existiam em cada tela.
========================================= */

var sinonimosSimNaoTalvez = map[string]string{
	"sim":    "Sim",
	"s":      "Sim",
	"nao":    "Não",
	"n":      "Não",
	"talvez": "Talvez",
}

var sinonimosSimNaoParcialmente = map[string]string{
	"sim":          "Sim",
	"s":            "Sim",
	"nao":          "Não",
	"n":            "Não",
	"parcialmente": "Parcialmente",
	"parcial":      "Parcialmente",
}

func sinonimosDaFamilia(tipo modModel.TipoPergunta) map[string]string {
	switch tipo {
	case modModel.TipoPerguntaSimNaoTalvez:
		return sinonimosSimNaoTalvez
	case modModel.TipoPerguntaSimNaoParcialmente:
		return sinonimosSimNaoParcialmente
	default:
		return nil
	}
}

// dobrar reduz um token para comparação: trim, lower-case e sem acentos.
func dobrar(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Normalizar produz o valor canônico de uma resposta crua.
// Função pura e determinística; nenhum efeito colateral.
//
// - texto livre: valor é o texto com trim; vazio vira o sentinela NaoRespondida.
// - demais tipos: casa contra as opções declaradas (case/acento-insensível) e
//   depois contra a tabela de sinônimos da família; o que não casar passa
//   adiante inalterado com NaoReconhecida=true, nunca é descartado nem
//   encaixado à força numa opção existente.
func Normalizar(cru string, tipo modModel.TipoPergunta, opcoes []string) (RespostaNormalizada, error) {
	aparado := strings.TrimSpace(cru)

	if tipo.EhTextoLivre() {
		if aparado == "" {
			return RespostaNormalizada{NaoRespondida: true}, nil
		}
		return RespostaNormalizada{Valor: aparado}, nil
	}

	if len(opcoes) == 0 {
		return RespostaNormalizada{}, ErrOpcoesAusentes
	}

	if aparado == "" {
		return RespostaNormalizada{NaoRespondida: true}, nil
	}

	chave := dobrar(aparado)

	// 1) casa direto com uma opção declarada
	for _, op := range opcoes {
		if dobrar(op) == chave {
			return RespostaNormalizada{Valor: op}, nil
		}
	}

	// 2) sinônimo legado da família → rótulo canônico
	if tabela := sinonimosDaFamilia(tipo); tabela != nil {
		if canonico, ok := tabela[chave]; ok {
			// prefere a grafia declarada na pergunta, se houver
			chaveCanonica := dobrar(canonico)
			for _, op := range opcoes {
				if dobrar(op) == chaveCanonica {
					return RespostaNormalizada{Valor: op}, nil
				}
			}
			return RespostaNormalizada{Valor: canonico}, nil
		}
	}

	// 3) não reconhecida: preserva o valor original
	return RespostaNormalizada{Valor: aparado, NaoReconhecida: true}, nil
}
