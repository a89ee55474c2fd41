package pix

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

// isWorkbook indica se o nome do arquivo aponta para uma planilha Excel.
func isWorkbook(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xls":
		return true
	}
	return false
}

// writeRows grava as linhas como CSV ';' em UTF-8 com BOM, para que o
// leitor de extratos não precise adivinhar o encoding.
func writeRows(rows [][]string) ([]byte, error) {
	var buffer bytes.Buffer
	buffer.Write(utf8BOM)
	writer := csv.NewWriter(&buffer)
	writer.Comma = ';'
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	return buffer.Bytes(), writer.Error()
}

func convertXLSXtoCSV(content []byte) ([]byte, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var all [][]string
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		all = append(all, rows...)
	}
	return writeRows(all)
}

func convertXLStoCSV(content []byte) ([]byte, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(content))
	if err != nil {
		// alguns bancos exportam xlsx com extensão .xls
		if out, errX := convertXLSXtoCSV(content); errX == nil {
			return out, nil
		}
		return nil, err
	}

	var all [][]string
	for _, sheet := range workbook.GetSheets() {
		for _, row := range sheet.GetRows() {
			var csvRow []string
			for _, cell := range row.GetCols() {
				csvRow = append(csvRow, cell.GetString())
			}
			all = append(all, csvRow)
		}
	}
	return writeRows(all)
}

// workbookToStatement converte uma planilha de extrato para o texto ';'
// aceito por LerExtrato.
func workbookToStatement(name string, content []byte) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		out, err := convertXLSXtoCSV(content)
		if err != nil {
			return nil, fmt.Errorf("erro ao converter .xlsx para .csv: %w", err)
		}
		return out, nil
	case ".xls":
		out, err := convertXLStoCSV(content)
		if err != nil {
			return nil, fmt.Errorf("erro ao converter .xls para .csv: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("formato de planilha não suportado: %s", filepath.Ext(name))
}
