package pix

import (
	"fmt"
	"strings"
	"time"

	"pix-service/internal/core/report"
	"pix-service/internal/domain"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultPreviewRows é o número de linhas das prévias quando nada é configurado.
const DefaultPreviewRows = 50

// Service define a interface do consolidador de extratos Pix.
type Service interface {
	Consolidate(files []domain.ArquivoExtrato) []domain.Lancamento
	Summarize(files []domain.ArquivoExtrato) domain.ResumoConsolidacao
	BuildReport(files []domain.ArquivoExtrato) ([]byte, error)
}

type service struct {
	logger      *zap.Logger
	previewRows int
}

// NewService cria uma nova instância do serviço de consolidação.
func NewService(logger *zap.Logger, previewRows int) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if previewRows <= 0 {
		previewRows = DefaultPreviewRows
	}
	return &service{logger: logger, previewRows: previewRows}
}

func (svc *service) consolidar(files []domain.ArquivoExtrato) ([]domain.Lancamento, []ResultadoArquivo) {
	linhas, resultados := consolidar(files)
	for _, res := range resultados {
		if res.Err != nil {
			svc.logger.Warn("planilha ignorada",
				zap.String("arquivo", res.Arquivo),
				zap.Error(res.Err))
			continue
		}
		if res.Leitura.LinhaCabecalho < 0 {
			svc.logger.Warn("cabeçalho 'Data;' não encontrado",
				zap.String("arquivo", res.Arquivo),
				zap.String("encoding", res.Leitura.Encoding))
			continue
		}
		svc.logger.Info("extrato lido",
			zap.String("arquivo", res.Arquivo),
			zap.String("encoding", res.Leitura.Encoding),
			zap.Int("linha_cabecalho", res.Leitura.LinhaCabecalho),
			zap.Int("linhas", len(res.Leitura.Lancamentos)),
			zap.Strings("colunas_ignoradas", res.Leitura.ColunasIgnoradas))
	}
	if len(linhas) == 0 && len(files) > 0 {
		svc.logger.Warn("nenhum arquivo gerou lançamentos", zap.Int("arquivos", len(files)))
	}
	return linhas, resultados
}

// Consolidate junta os extratos enviados em uma única tabela.
func (svc *service) Consolidate(files []domain.ArquivoExtrato) []domain.Lancamento {
	linhas, _ := svc.consolidar(files)
	return linhas
}

// Summarize calcula os indicadores da consolidação.
func (svc *service) Summarize(files []domain.ArquivoExtrato) domain.ResumoConsolidacao {
	linhas, resultados := svc.consolidar(files)
	c := FilterAndTotals(linhas)

	leituras := make([]domain.ArquivoLido, 0, len(resultados))
	for _, res := range resultados {
		leituras = append(leituras, domain.ArquivoLido{
			Arquivo:        res.Arquivo,
			Linhas:         len(res.Leitura.Lancamentos),
			LeituraExtrato: res.Leitura,
		})
	}

	return domain.ResumoConsolidacao{
		Arquivos:                 len(files),
		LinhasTotais:             len(linhas),
		TotalTarifas:             report.Round2(c.TotalTarifas),
		TotalDevolucoes:          report.Round2(c.TotalDevolucoes),
		TotalTarifasFormatado:    FormatBRL(c.TotalTarifas),
		TotalDevolucoesFormatado: FormatBRL(c.TotalDevolucoes),
		PorArquivo:               TotalsByFile(linhas),
		Leituras:                 leituras,
		Tipos:                    TypeBreakdown(linhas),
		PreviaTarifas:            head(c.Tarifas, svc.previewRows),
		PreviaDevolucoes:         head(c.Devolucoes, svc.previewRows),
		GeradoEm:                 time.Now(),
	}
}

// BuildReport consolida os arquivos e gera o Excel com as três abas.
func (svc *service) BuildReport(files []domain.ArquivoExtrato) ([]byte, error) {
	linhas, _ := svc.consolidar(files)
	c := FilterAndTotals(linhas)
	c.Tarifas = SortByData(c.Tarifas)
	c.Devolucoes = SortByData(c.Devolucoes)

	out, err := report.Build(c)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar relatório: %w", err)
	}
	svc.logger.Info("relatório gerado",
		zap.Int("arquivos", len(files)),
		zap.Int("linhas", len(linhas)),
		zap.Int("tarifas", len(c.Tarifas)),
		zap.Int("devolucoes", len(c.Devolucoes)),
		zap.Float64("total_tarifas", c.TotalTarifas),
		zap.Float64("total_devolucoes", c.TotalDevolucoes))
	return out, nil
}

func head(linhas []domain.Lancamento, n int) []domain.Lancamento {
	if len(linhas) > n {
		return linhas[:n]
	}
	return linhas
}

// FormatBRL formata um valor como moeda brasileira: "R$ 1.234,56".
func FormatBRL(v float64) string {
	s := decimal.NewFromFloat(v).StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}
