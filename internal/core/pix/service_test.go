package pix

import (
	"bytes"
	"reflect"
	"strconv"
	"testing"

	"pix-service/internal/domain"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func sampleFiles() []domain.ArquivoExtrato {
	return []domain.ArquivoExtrato{
		{Nome: "janeiro.csv", Conteudo: bs2File("Banco BS2", bs2Header,
			"15/01/2024;Tarifa Operações Pix;Cobrança;E1;R$ 0,45-;",
			"10/01/2024;Tarifa Operações Pix;Cobrança;E2;R$ 0,55-;",
			"11/01/2024;Pix recebido;Cliente;E3;R$ 1.000,00;",
		)},
		{Nome: "vazio.csv", Conteudo: []byte("sem cabeçalho")},
		{Nome: "fevereiro.csv", Conteudo: bs2File(bs2Header,
			"02/02/2024;Devolução Recebida Pix;Fulano;E4;R$ 25,00;estorno",
			";Devolução Recebida Pix;Ciclano;E5;R$ 5,10;sem data",
		)},
	}
}

func TestServiceSummarize(t *testing.T) {
	svc := NewService(zap.NewNop(), 1)
	resumo := svc.Summarize(sampleFiles())

	if resumo.Arquivos != 3 {
		t.Errorf("arquivos: got %d, want 3", resumo.Arquivos)
	}
	if resumo.LinhasTotais != 5 {
		t.Errorf("linhas: got %d, want 5", resumo.LinhasTotais)
	}
	if resumo.TotalTarifas != -1 {
		t.Errorf("total tarifas: got %v, want -1", resumo.TotalTarifas)
	}
	if resumo.TotalDevolucoes != 30.1 {
		t.Errorf("total devoluções: got %v, want 30.1", resumo.TotalDevolucoes)
	}
	if resumo.TotalDevolucoesFormatado != "R$ 30,10" {
		t.Errorf("formatado: got %q", resumo.TotalDevolucoesFormatado)
	}
	if len(resumo.PreviaTarifas) != 1 || len(resumo.PreviaDevolucoes) != 1 {
		t.Errorf("previews should be capped at 1, got %d and %d", len(resumo.PreviaTarifas), len(resumo.PreviaDevolucoes))
	}
	if len(resumo.PorArquivo) != 2 {
		t.Errorf("per-file totals: got %d entries", len(resumo.PorArquivo))
	}
	if len(resumo.Leituras) != 3 || resumo.Leituras[1].LinhaCabecalho != -1 || resumo.Leituras[1].Linhas != 0 {
		t.Errorf("read diagnostics: %+v", resumo.Leituras)
	}
}

func TestServiceConsolidate(t *testing.T) {
	svc := NewService(nil, 0)
	rows := svc.Consolidate(sampleFiles())
	if !reflect.DeepEqual(rows, Consolidate(sampleFiles())) {
		t.Error("service and package consolidation differ")
	}
}

func TestServiceBuildReport(t *testing.T) {
	svc := NewService(zap.NewNop(), 0)
	out, err := svc.BuildReport(sampleFiles())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("open report: %v", err)
	}
	defer f.Close()

	want := []string{domain.AbaResumo, domain.AbaDevolucoes, domain.AbaTarifas}
	if got := f.GetSheetList(); !reflect.DeepEqual(got, want) {
		t.Fatalf("sheets: got %v, want %v", got, want)
	}

	cell, err := f.GetCellValue(domain.AbaResumo, "B2")
	if err != nil {
		t.Fatalf("read B2: %v", err)
	}
	if v, err := strconv.ParseFloat(cell, 64); err != nil || v != -1 {
		t.Errorf("fee total cell: got %q", cell)
	}

	tarifas, err := f.GetRows(domain.AbaTarifas)
	if err != nil {
		t.Fatalf("read tarifas: %v", err)
	}
	if len(tarifas) != 3 {
		t.Fatalf("tarifas: expected header + 2 rows, got %d", len(tarifas))
	}
	if tarifas[1][1] != "10/01/2024" || tarifas[2][1] != "15/01/2024" {
		t.Errorf("tarifas should be sorted by date: %v", tarifas[1:])
	}

	devolucoes, err := f.GetRows(domain.AbaDevolucoes)
	if err != nil {
		t.Fatalf("read devoluções: %v", err)
	}
	if len(devolucoes) != 3 || devolucoes[2][3] != "Ciclano" {
		t.Errorf("row without date should be last: %v", devolucoes)
	}
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "R$ 0,00"},
		{1234.56, "R$ 1.234,56"},
		{1234567.891, "R$ 1.234.567,89"},
		{-10.5, "-R$ 10,50"},
		{999, "R$ 999,00"},
		{1000, "R$ 1.000,00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := FormatBRL(tt.input); got != tt.expected {
				t.Errorf("FormatBRL(%v): got %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
