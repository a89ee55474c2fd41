package pix

import (
	"math"
	"reflect"
	"testing"

	"pix-service/internal/domain"
)

func valor(v float64) *float64 { return &v }

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestFilterAndTotals(t *testing.T) {
	linhas := []domain.Lancamento{
		{Arquivo: "a.csv", Tipo: "TARIFA OPERAÇÕES PIX", Valor: valor(10.00)},
		{Arquivo: "a.csv", Tipo: "Devolução Recebida PIX", Valor: valor(25.00)},
		{Arquivo: "a.csv", Tipo: "Pix enviado", Valor: valor(5.00)},
	}

	c := FilterAndTotals(linhas)
	if !almostEqual(c.TotalTarifas, 10) {
		t.Errorf("total tarifas: got %v, want 10", c.TotalTarifas)
	}
	if !almostEqual(c.TotalDevolucoes, 25) {
		t.Errorf("total devoluções: got %v, want 25", c.TotalDevolucoes)
	}
	if len(c.Tarifas) != 1 || c.Tarifas[0].Tipo != "TARIFA OPERAÇÕES PIX" {
		t.Errorf("tarifas: got %+v", c.Tarifas)
	}
	if len(c.Devolucoes) != 1 || c.Devolucoes[0].Tipo != "Devolução Recebida PIX" {
		t.Errorf("devoluções: got %+v", c.Devolucoes)
	}
	for _, l := range append(c.Tarifas, c.Devolucoes...) {
		if l.Tipo == "Pix enviado" {
			t.Error("unrelated row should not be classified")
		}
	}
}

func TestFilterAndTotalsEmpty(t *testing.T) {
	for _, linhas := range [][]domain.Lancamento{nil, {}} {
		c := FilterAndTotals(linhas)
		if c.Tarifas == nil || c.Devolucoes == nil {
			t.Fatal("expected non-nil empty subsets")
		}
		if len(c.Tarifas) != 0 || len(c.Devolucoes) != 0 {
			t.Errorf("expected empty subsets, got %d and %d", len(c.Tarifas), len(c.Devolucoes))
		}
		if c.TotalTarifas != 0 || c.TotalDevolucoes != 0 {
			t.Errorf("expected zero totals, got %v and %v", c.TotalTarifas, c.TotalDevolucoes)
		}
	}
}

func TestFilterAndTotalsSkipsMissingValues(t *testing.T) {
	linhas := []domain.Lancamento{
		{Tipo: "Tarifa Operações Pix", Valor: valor(0.45)},
		{Tipo: "Tarifa Operações Pix", Valor: nil, ValorBruto: "n/d"},
		{Tipo: "Tarifa Operações Pix", Valor: valor(0.55)},
	}

	c := FilterAndTotals(linhas)
	if len(c.Tarifas) != 3 {
		t.Errorf("rows with missing values must stay in the subset, got %d", len(c.Tarifas))
	}
	if !almostEqual(c.TotalTarifas, 1.0) {
		t.Errorf("total: got %v, want 1.0", c.TotalTarifas)
	}
	if math.IsNaN(c.TotalTarifas) || math.IsInf(c.TotalTarifas, 0) {
		t.Error("total must be finite")
	}
}

func TestFilterAndTotalsDoesNotMutateInput(t *testing.T) {
	linhas := []domain.Lancamento{
		{Tipo: "Tarifa Operações Pix", Valor: valor(1)},
		{Tipo: "Outro", Valor: valor(2)},
	}
	before := make([]domain.Lancamento, len(linhas))
	copy(before, linhas)

	c := FilterAndTotals(linhas)
	c.Tarifas[0].Tipo = "alterado"

	if !reflect.DeepEqual(linhas, before) {
		t.Errorf("input table changed: %+v", linhas)
	}
}

func TestFilterAndTotalsOverlap(t *testing.T) {
	linhas := []domain.Lancamento{
		{Tipo: "Tarifa Operações Pix / Devolução Recebida Pix", Valor: valor(3)},
	}

	c := FilterAndTotals(linhas)
	if len(c.Tarifas) != 1 || len(c.Devolucoes) != 1 {
		t.Fatalf("expected the row in both subsets, got %d and %d", len(c.Tarifas), len(c.Devolucoes))
	}
	if c.TotalTarifas != 3 || c.TotalDevolucoes != 3 {
		t.Errorf("expected both totals to be 3, got %v and %v", c.TotalTarifas, c.TotalDevolucoes)
	}
}

func TestTotalsByFile(t *testing.T) {
	linhas := []domain.Lancamento{
		{Arquivo: "jan.csv", Tipo: "Tarifa Operações Pix", Valor: valor(1.5)},
		{Arquivo: "jan.csv", Tipo: "Pix recebido", Valor: valor(100)},
		{Arquivo: "fev.csv", Tipo: "Devolução Recebida Pix", Valor: valor(20)},
		{Arquivo: "jan.csv", Tipo: "Tarifa Operações Pix", Valor: valor(2.5)},
		{Arquivo: "fev.csv", Tipo: "Tarifa Operações Pix", Valor: nil},
	}

	got := TotalsByFile(linhas)
	want := []domain.TotaisArquivo{
		{Arquivo: "jan.csv", Linhas: 3, QtdTarifas: 2, TotalTarifas: 4},
		{Arquivo: "fev.csv", Linhas: 2, QtdTarifas: 1, QtdDevolucoes: 1, TotalDevolucoes: 20},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v\nwant %+v", got, want)
	}

	if empty := TotalsByFile(nil); empty == nil || len(empty) != 0 {
		t.Errorf("expected non-nil empty breakdown, got %v", empty)
	}
}

func TestSortByData(t *testing.T) {
	linhas := []domain.Lancamento{
		{Data: "03/01/2024", Tipo: "c"},
		{Data: "", Tipo: "sem data"},
		{Data: "01/01/2024", Tipo: "a"},
		{Data: "  ", Tipo: "em branco"},
		{Data: "02/01/2024", Tipo: "b"},
	}

	got := SortByData(linhas)
	want := []string{"a", "b", "c", "sem data", "em branco"}
	for i, w := range want {
		if got[i].Tipo != w {
			t.Errorf("position %d: got %q, want %q", i, got[i].Tipo, w)
		}
	}
	if linhas[0].Tipo != "c" {
		t.Error("input slice should keep its order")
	}
}

func TestTypeBreakdown(t *testing.T) {
	linhas := []domain.Lancamento{
		{Tipo: "Tarifa Operações Pix", Valor: valor(1)},
		{Tipo: "Tarifa Operações Pix", Valor: valor(2)},
		{Tipo: "Devolução Recebida Pix", Valor: valor(10)},
		{Tipo: "Tarifa Operacao Pix", Valor: valor(4)},
		{Tipo: "", Valor: nil},
	}

	got := TypeBreakdown(linhas)
	if len(got) != 4 {
		t.Fatalf("expected 4 types, got %d: %+v", len(got), got)
	}

	if got[0].Categoria != domain.CategoriaTarifa || got[0].Linhas != 2 || got[0].Total != 3 {
		t.Errorf("tarifa: %+v", got[0])
	}
	if got[1].Categoria != domain.CategoriaDevolucao || got[1].Total != 10 {
		t.Errorf("devolução: %+v", got[1])
	}
	if got[2].Categoria != "" || got[2].Sugestao != domain.CategoriaTarifa {
		t.Errorf("near miss should suggest the fee category: %+v", got[2])
	}
	if got[3].Tipo != "" || got[3].Sugestao != "" || got[3].Linhas != 1 {
		t.Errorf("empty type: %+v", got[3])
	}
}
