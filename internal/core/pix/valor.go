package pix

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ValueStage é uma etapa da limpeza de valores monetários.
type ValueStage struct {
	Name  string
	Apply func(string) string
}

var (
	trailingMinusRegex = regexp.MustCompile(`^([0-9.,]+)-$`)
	numberRegex        = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
)

// ValueStages é a sequência fixa aplicada antes do parse. A ordem importa:
// o sinal no final precisa ser reposicionado antes de remover os pontos de
// milhar e antes da vírgula virar ponto decimal.
var ValueStages = []ValueStage{
	{Name: "remove-nbsp", Apply: func(s string) string { return strings.ReplaceAll(s, "\u00a0", "") }},
	{Name: "remove-moeda", Apply: func(s string) string { return strings.ReplaceAll(s, "R$", "") }},
	{Name: "remove-espacos", Apply: func(s string) string { return strings.ReplaceAll(s, " ", "") }},
	{Name: "sinal-unicode", Apply: func(s string) string { return strings.ReplaceAll(s, "\u2212", "-") }},
	{Name: "sinal-final", Apply: func(s string) string { return trailingMinusRegex.ReplaceAllString(s, "-$1") }},
	{Name: "remove-milhar", Apply: func(s string) string { return strings.ReplaceAll(s, ".", "") }},
	{Name: "virgula-decimal", Apply: func(s string) string { return strings.ReplaceAll(s, ",", ".") }},
}

// cleanValueText aplica todas as etapas de ValueStages em ordem.
func cleanValueText(s string) string {
	for _, stage := range ValueStages {
		s = stage.Apply(s)
	}
	return s
}

// ParseValor converte um valor no formato brasileiro ("R$ 1.234,56",
// "0,45-") em float64. Devolve nil quando o texto não é um número.
func ParseValor(raw string) *float64 {
	s := cleanValueText(raw)
	if s == "" || !numberRegex.MatchString(s) {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// CleanValues aplica ParseValor elemento a elemento; uma entrada inválida
// vira nil sem interromper as demais.
func CleanValues(values []string) []*float64 {
	out := make([]*float64, len(values))
	for i, v := range values {
		out[i] = ParseValor(v)
	}
	return out
}
