// package domain/models.go
package domain

import "time"

// Nomes canônicos das colunas de um extrato.
const (
	ColData          = "Data"
	ColTipo          = "Tipo"
	ColDetalhe       = "Detalhe"
	ColIdentificador = "Identificador"
	ColValor         = "Valor"
	ColObservacao    = "Observação"
	ColValorBruto    = "ValorBruto"
	ColArquivo       = "Arquivo"
)

// ColunasExtrato é a ordem fixa das colunas devolvidas pelo leitor de extratos.
var ColunasExtrato = []string{ColData, ColTipo, ColDetalhe, ColIdentificador, ColValor, ColObservacao, ColValorBruto}

// ColunasConsolidado acrescenta a coluna de origem às colunas do extrato.
var ColunasConsolidado = []string{ColArquivo, ColData, ColTipo, ColDetalhe, ColIdentificador, ColValor, ColObservacao, ColValorBruto}

// ColunasDetalhe é o cabeçalho das abas de detalhe do relatório.
var ColunasDetalhe = []string{ColArquivo, ColData, ColTipo, ColDetalhe, ColIdentificador, ColValor, ColObservacao}

// Categorias de transação, já na forma normalizada usada para comparação.
const (
	CategoriaTarifa    = "tarifa operacoes pix"
	CategoriaDevolucao = "devolucao recebida pix"
)

// Nomes das abas do relatório Excel.
const (
	AbaResumo     = "Resumo Tarifa Pix"
	AbaDevolucoes = "Devolução Recebida Pix"
	AbaTarifas    = "Detalhe Tarifas Pix"
)

// --- Modelos do Consolidador Pix ---

// ArquivoExtrato é um arquivo enviado pelo usuário, ainda em bytes.
type ArquivoExtrato struct {
	Nome     string
	Conteudo []byte
}

// Lancamento representa uma linha de um extrato BS2 já normalizada.
// Valor é nil quando o texto original não pôde ser interpretado.
type Lancamento struct {
	Arquivo       string   `json:"arquivo"`
	Data          string   `json:"data"`
	Tipo          string   `json:"tipo"`
	Detalhe       string   `json:"detalhe"`
	Identificador string   `json:"identificador"`
	Valor         *float64 `json:"valor"`
	Observacao    string   `json:"observacao"`
	ValorBruto    string   `json:"valor_bruto"`
}

// LeituraExtrato guarda o resultado da leitura de um arquivo junto com os
// dados de diagnóstico (encoding detectado, linha do cabeçalho, colunas ignoradas).
type LeituraExtrato struct {
	Encoding         string       `json:"encoding"`
	LinhaCabecalho   int          `json:"linha_cabecalho"` // -1 quando não há cabeçalho
	ColunasIgnoradas []string     `json:"colunas_ignoradas,omitempty"`
	Lancamentos      []Lancamento `json:"-"`
}

// Classificacao contém os subconjuntos de tarifas e devoluções e seus totais.
type Classificacao struct {
	Tarifas         []Lancamento `json:"tarifas"`
	Devolucoes      []Lancamento `json:"devolucoes"`
	TotalTarifas    float64      `json:"total_tarifas"`
	TotalDevolucoes float64      `json:"total_devolucoes"`
}

// TotaisArquivo é o recorte da classificação para um único arquivo de origem.
type TotaisArquivo struct {
	Arquivo         string  `json:"arquivo"`
	Linhas          int     `json:"linhas"`
	QtdTarifas      int     `json:"qtd_tarifas"`
	QtdDevolucoes   int     `json:"qtd_devolucoes"`
	TotalTarifas    float64 `json:"total_tarifas"`
	TotalDevolucoes float64 `json:"total_devolucoes"`
}

// TipoResumo agrupa os lançamentos por Tipo como aparece no extrato.
type TipoResumo struct {
	Tipo      string  `json:"tipo"`
	Categoria string  `json:"categoria,omitempty"`
	Sugestao  string  `json:"sugestao,omitempty"`
	Linhas    int     `json:"linhas"`
	Total     float64 `json:"total"`
}

// ArquivoLido resume a leitura de um arquivo para exibição.
type ArquivoLido struct {
	Arquivo string `json:"arquivo"`
	Linhas  int    `json:"linhas"`
	LeituraExtrato
}

// ResumoConsolidacao reúne os indicadores exibidos ao usuário.
type ResumoConsolidacao struct {
	Arquivos                 int             `json:"arquivos"`
	LinhasTotais             int             `json:"linhas_totais"`
	TotalTarifas             float64         `json:"total_tarifas"`
	TotalDevolucoes          float64         `json:"total_devolucoes"`
	TotalTarifasFormatado    string          `json:"total_tarifas_formatado"`
	TotalDevolucoesFormatado string          `json:"total_devolucoes_formatado"`
	PorArquivo               []TotaisArquivo `json:"por_arquivo"`
	Leituras                 []ArquivoLido   `json:"leituras"`
	Tipos                    []TipoResumo    `json:"tipos"`
	PreviaTarifas            []Lancamento    `json:"previa_tarifas"`
	PreviaDevolucoes         []Lancamento    `json:"previa_devolucoes"`
	GeradoEm                 time.Time       `json:"gerado_em"`
}
