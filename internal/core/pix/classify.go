package pix

import (
	"sort"
	"strings"

	"pix-service/internal/domain"

	"github.com/schollz/closestmatch"
)

func isTarifa(tipoNorm string) bool {
	return strings.Contains(tipoNorm, domain.CategoriaTarifa)
}

func isDevolucao(tipoNorm string) bool {
	return strings.Contains(tipoNorm, domain.CategoriaDevolucao)
}

// somaValores soma os valores válidos; valores nulos ficam de fora.
func somaValores(linhas []domain.Lancamento) float64 {
	var total float64
	for _, l := range linhas {
		if l.Valor != nil {
			total += *l.Valor
		}
	}
	return total
}

// FilterAndTotals separa as tarifas e as devoluções Pix da tabela consolidada
// e soma o valor de cada grupo. A tabela de entrada não é alterada.
// Uma linha cujo Tipo case com as duas categorias entra nos dois grupos.
func FilterAndTotals(linhas []domain.Lancamento) domain.Classificacao {
	c := domain.Classificacao{
		Tarifas:    []domain.Lancamento{},
		Devolucoes: []domain.Lancamento{},
	}
	for _, l := range linhas {
		tipo := NormalizeText(l.Tipo)
		if isTarifa(tipo) {
			c.Tarifas = append(c.Tarifas, l)
		}
		if isDevolucao(tipo) {
			c.Devolucoes = append(c.Devolucoes, l)
		}
	}
	c.TotalTarifas = somaValores(c.Tarifas)
	c.TotalDevolucoes = somaValores(c.Devolucoes)
	return c
}

// TotalsByFile aplica a mesma regra de FilterAndTotals por arquivo de origem,
// na ordem em que cada arquivo aparece na tabela.
func TotalsByFile(linhas []domain.Lancamento) []domain.TotaisArquivo {
	out := []domain.TotaisArquivo{}
	pos := make(map[string]int)

	for _, l := range linhas {
		i, ok := pos[l.Arquivo]
		if !ok {
			i = len(out)
			pos[l.Arquivo] = i
			out = append(out, domain.TotaisArquivo{Arquivo: l.Arquivo})
		}
		t := &out[i]
		t.Linhas++

		tipo := NormalizeText(l.Tipo)
		if isTarifa(tipo) {
			t.QtdTarifas++
			if l.Valor != nil {
				t.TotalTarifas += *l.Valor
			}
		}
		if isDevolucao(tipo) {
			t.QtdDevolucoes++
			if l.Valor != nil {
				t.TotalDevolucoes += *l.Valor
			}
		}
	}
	return out
}

// SortByData devolve uma cópia ordenada por Data (comparação textual).
// Linhas sem data vão para o fim.
func SortByData(linhas []domain.Lancamento) []domain.Lancamento {
	out := make([]domain.Lancamento, len(linhas))
	copy(out, linhas)
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := strings.TrimSpace(out[i].Data), strings.TrimSpace(out[j].Data)
		if di == "" || dj == "" {
			return di != "" && dj == ""
		}
		return out[i].Data < out[j].Data
	})
	return out
}

// TypeBreakdown agrupa os lançamentos por Tipo. Para tipos fora das duas
// categorias, sugere a categoria mais parecida.
func TypeBreakdown(linhas []domain.Lancamento) []domain.TipoResumo {
	out := []domain.TipoResumo{}
	pos := make(map[string]int)

	for _, l := range linhas {
		i, ok := pos[l.Tipo]
		if !ok {
			i = len(out)
			pos[l.Tipo] = i
			out = append(out, domain.TipoResumo{Tipo: l.Tipo})
		}
		out[i].Linhas++
		if l.Valor != nil {
			out[i].Total += *l.Valor
		}
	}

	categorias := []string{domain.CategoriaTarifa, domain.CategoriaDevolucao}
	cm := closestmatch.New(categorias, []int{3, 4})
	for i := range out {
		tipo := NormalizeText(out[i].Tipo)
		switch {
		case isTarifa(tipo):
			out[i].Categoria = domain.CategoriaTarifa
		case isDevolucao(tipo):
			out[i].Categoria = domain.CategoriaDevolucao
		case tipo != "":
			out[i].Sugestao = cm.Closest(tipo)
		}
	}
	return out
}
