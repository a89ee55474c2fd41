package pix

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"pix-service/internal/domain"
)

// HeaderRule associa um cabeçalho do arquivo a uma coluna canônica.
type HeaderRule struct {
	Column string
	Match  func(header string) bool
}

func hasPrefix(p string) func(string) bool {
	return func(h string) bool { return strings.HasPrefix(h, p) }
}

func contains(sub string) func(string) bool {
	return func(h string) bool { return strings.Contains(h, sub) }
}

// HeaderRules é avaliada em ordem contra o cabeçalho já em minúsculas;
// a primeira regra que casa decide a coluna.
var HeaderRules = []HeaderRule{
	{Column: domain.ColData, Match: hasPrefix("data")},
	{Column: domain.ColTipo, Match: hasPrefix("tipo")},
	{Column: domain.ColDetalhe, Match: hasPrefix("detalhe")},
	{Column: domain.ColIdentificador, Match: contains("identificador")},
	{Column: domain.ColValor, Match: hasPrefix("valor")},
	{Column: domain.ColObservacao, Match: contains("observa")},
}

// canonicalColumn devolve a coluna canônica de um cabeçalho ou "" se nenhuma regra casar.
func canonicalColumn(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	for _, rule := range HeaderRules {
		if rule.Match(h) {
			return rule.Column
		}
	}
	return ""
}

const headerMarker = "data;"

// splitLines quebra o texto em linhas aceitando \r\n, \n e \r.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// findHeaderLine procura a primeira linha que começa com "Data;".
func findHeaderLine(lines []string) int {
	for i, line := range lines {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), headerMarker) {
			return i
		}
	}
	return -1
}

// readRecords lê o CSV separado por ';' tolerando aspas soltas e registros
// com quantidade variável de campos. Registros ilegíveis são descartados.
func readRecords(text string) [][]string {
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = ';'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				continue
			}
			break
		}
		records = append(records, record)
	}
	return records
}

// LerExtrato lê um extrato BS2 e devolve os lançamentos com as informações
// de diagnóstico da leitura. Entradas malformadas nunca geram erro: no pior
// caso o resultado vem vazio ou com valores nulos.
func LerExtrato(content []byte) domain.LeituraExtrato {
	text, enc := DecodeText(content)
	leitura := domain.LeituraExtrato{Encoding: enc, LinhaCabecalho: -1}

	lines := splitLines(text)
	headerIdx := findHeaderLine(lines)
	if headerIdx < 0 {
		return leitura
	}
	leitura.LinhaCabecalho = headerIdx

	records := readRecords(strings.Join(lines[headerIdx:], "\n"))
	if len(records) == 0 {
		return leitura
	}

	header := records[0]
	colIndex := make(map[string]int, len(domain.ColunasExtrato))
	for i, h := range header {
		h = strings.TrimSpace(h)
		col := canonicalColumn(h)
		if col == "" {
			leitura.ColunasIgnoradas = append(leitura.ColunasIgnoradas, h)
			continue
		}
		if _, dup := colIndex[col]; dup {
			leitura.ColunasIgnoradas = append(leitura.ColunasIgnoradas, h)
			continue
		}
		colIndex[col] = i
	}

	get := func(record []string, col string) string {
		idx, ok := colIndex[col]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	linhas := make([]domain.Lancamento, 0, len(records)-1)
	for _, record := range records[1:] {
		bruto := get(record, domain.ColValor)
		linhas = append(linhas, domain.Lancamento{
			Data:          get(record, domain.ColData),
			Tipo:          get(record, domain.ColTipo),
			Detalhe:       get(record, domain.ColDetalhe),
			Identificador: get(record, domain.ColIdentificador),
			Valor:         ParseValor(bruto),
			Observacao:    get(record, domain.ColObservacao),
			ValorBruto:    bruto,
		})
	}
	leitura.Lancamentos = linhas
	return leitura
}

// ReadStatement lê um extrato e devolve apenas os lançamentos.
func ReadStatement(content []byte) []domain.Lancamento {
	return LerExtrato(content).Lancamentos
}
