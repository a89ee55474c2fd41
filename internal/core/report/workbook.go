// Package report gera o Excel consolidado a partir da classificação já calculada.
package report

import (
	"fmt"

	"pix-service/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Rótulos da aba de resumo.
const (
	ColunaTransacao       = "Transação"
	ColunaValorTotal      = "Valor Total (R$)"
	RotuloTotalTarifas    = "Total Tarifa Operações Pix"
	RotuloTotalDevolucoes = "Total Devolução Recebida Pix"
)

// Round2 arredonda para duas casas decimais.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Build monta o workbook com as três abas: resumo, devoluções e tarifas.
// Os subconjuntos são ordenados por Data pelo chamador.
func Build(c domain.Classificacao) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", domain.AbaResumo); err != nil {
		return nil, fmt.Errorf("erro ao criar aba de resumo: %w", err)
	}
	if err := writeResumo(f, c); err != nil {
		return nil, err
	}
	if err := writeDetalhe(f, domain.AbaDevolucoes, c.Devolucoes); err != nil {
		return nil, err
	}
	if err := writeDetalhe(f, domain.AbaTarifas, c.Tarifas); err != nil {
		return nil, err
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar Excel: %w", err)
	}
	return buf.Bytes(), nil
}

func writeResumo(f *excelize.File, c domain.Classificacao) error {
	rows := [][]interface{}{
		{ColunaTransacao, ColunaValorTotal},
		{RotuloTotalTarifas, Round2(c.TotalTarifas)},
		{RotuloTotalDevolucoes, Round2(c.TotalDevolucoes)},
	}
	for i, row := range rows {
		if err := setRow(f, domain.AbaResumo, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func writeDetalhe(f *excelize.File, sheet string, linhas []domain.Lancamento) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("erro ao criar aba %q: %w", sheet, err)
	}

	header := make([]interface{}, len(domain.ColunasDetalhe))
	for i, h := range domain.ColunasDetalhe {
		header[i] = h
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	for i, l := range linhas {
		var valor interface{}
		if l.Valor != nil {
			valor = *l.Valor
		}
		row := []interface{}{l.Arquivo, l.Data, l.Tipo, l.Detalhe, l.Identificador, valor, l.Observacao}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("erro ao escrever linha %d da aba %q: %w", row, sheet, err)
	}
	return nil
}
