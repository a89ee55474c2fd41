package pix

import (
	"pix-service/internal/domain"
)

// ResultadoArquivo é a leitura de um arquivo dentro da consolidação.
type ResultadoArquivo struct {
	Arquivo string
	Leitura domain.LeituraExtrato
	Err     error // apenas falhas de conversão de planilha
}

// lerArquivo lê um arquivo enviado, convertendo planilhas quando necessário.
func lerArquivo(file domain.ArquivoExtrato) ResultadoArquivo {
	content := file.Conteudo
	if isWorkbook(file.Nome) {
		converted, err := workbookToStatement(file.Nome, content)
		if err != nil {
			return ResultadoArquivo{
				Arquivo: file.Nome,
				Leitura: domain.LeituraExtrato{LinhaCabecalho: -1},
				Err:     err,
			}
		}
		content = converted
	}
	return ResultadoArquivo{Arquivo: file.Nome, Leitura: LerExtrato(content)}
}

// consolidar lê todos os arquivos e concatena os lançamentos na ordem de
// entrada, marcando cada linha com o nome do arquivo de origem.
func consolidar(files []domain.ArquivoExtrato) ([]domain.Lancamento, []ResultadoArquivo) {
	linhas := []domain.Lancamento{}
	resultados := make([]ResultadoArquivo, 0, len(files))

	for _, file := range files {
		res := lerArquivo(file)
		resultados = append(resultados, res)
		if len(res.Leitura.Lancamentos) == 0 {
			continue
		}
		for _, l := range res.Leitura.Lancamentos {
			l.Arquivo = file.Nome
			linhas = append(linhas, l)
		}
	}
	return linhas, resultados
}

// Consolidate aplica o leitor de extratos a cada arquivo e junta o resultado.
// Arquivos sem lançamentos são ignorados; sem nenhuma linha, devolve uma
// tabela vazia (não nil).
func Consolidate(files []domain.ArquivoExtrato) []domain.Lancamento {
	linhas, _ := consolidar(files)
	return linhas
}
