package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"pix-service/internal/api/responses"
	"pix-service/internal/core/pix"
	"pix-service/internal/core/session"
	"pix-service/internal/domain"

	"github.com/gin-gonic/gin"
)

// ReportFileName é o nome do Excel entregue ao usuário.
const ReportFileName = "resultado_pix_consolidado.xlsx"

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var allowedExtensions = map[string]bool{
	".csv":  true,
	".txt":  true,
	".xlsx": true,
	".xls":  true,
}

// PixHandler lida com as requisições do consolidador de extratos Pix.
type PixHandler struct {
	service pix.Service
	store   *session.Store
}

// NewPixHandler cria um novo handler do consolidador.
func NewPixHandler(service pix.Service, store *session.Store) *PixHandler {
	return &PixHandler{
		service: service,
		store:   store,
	}
}

// readUploadedFiles lê todos os arquivos do campo "files" do formulário.
func readUploadedFiles(c *gin.Context) ([]domain.ArquivoExtrato, int, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf("formulário multipart inválido: %w", err)
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		return nil, http.StatusBadRequest, errors.New("nenhum arquivo foi enviado")
	}

	files := make([]domain.ArquivoExtrato, 0, len(headers))
	for _, header := range headers {
		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !allowedExtensions[ext] {
			return nil, http.StatusBadRequest, fmt.Errorf("extensão de arquivo não suportada: %s (%s)", ext, header.Filename)
		}

		file, err := header.Open()
		if err != nil {
			return nil, http.StatusInternalServerError, fmt.Errorf("não foi possível abrir o arquivo %s: %w", header.Filename, err)
		}
		content, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, http.StatusInternalServerError, fmt.Errorf("não foi possível ler o arquivo %s: %w", header.Filename, err)
		}
		files = append(files, domain.ArquivoExtrato{Nome: header.Filename, Conteudo: content})
	}
	return files, http.StatusOK, nil
}

// HandleAddFiles adiciona os arquivos enviados à consolidação.
func (h *PixHandler) HandleAddFiles(c *gin.Context) {
	files, code, err := readUploadedFiles(c)
	if err != nil {
		responses.Error(c, code, "Arquivos não encontrados ou inválidos", err.Error())
		return
	}

	added := h.store.AddAll(files)
	responses.Success(c, gin.H{
		"adicionados": added,
		"total":       h.store.Len(),
	}, fmt.Sprintf("%d arquivo(s) adicionado(s).", added))
}

// HandleListFiles lista os arquivos da consolidação.
func (h *PixHandler) HandleListFiles(c *gin.Context) {
	entries := h.store.List()
	responses.Success(c, entries, fmt.Sprintf("Arquivos na consolidação: %d", len(entries)))
}

// HandleClearFiles remove todos os arquivos da consolidação.
func (h *PixHandler) HandleClearFiles(c *gin.Context) {
	h.store.Clear()
	responses.Success(c, nil, "Consolidação limpa.")
}

// HandleRemoveFile remove um arquivo da consolidação pelo ID.
func (h *PixHandler) HandleRemoveFile(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.Remove(id); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			responses.Error(c, http.StatusNotFound, "Arquivo não encontrado", err.Error())
			return
		}
		responses.Error(c, http.StatusInternalServerError, "Erro ao remover arquivo", err.Error())
		return
	}
	responses.Success(c, gin.H{"total": h.store.Len()}, "Arquivo removido.")
}

// HandleSummary devolve os indicadores consolidados da sessão.
func (h *PixHandler) HandleSummary(c *gin.Context) {
	files := h.store.Files()
	if len(files) == 0 {
		responses.Error(c, http.StatusBadRequest, "Adicione arquivos para ver os indicadores.")
		return
	}

	resumo := h.service.Summarize(files)
	message := "Consolidação concluída com sucesso"
	if resumo.LinhasTotais == 0 {
		message = "Nenhum lançamento encontrado nos arquivos enviados"
	}
	responses.Success(c, resumo, message)
}

// HandleReport gera o Excel consolidado a partir dos arquivos da sessão.
func (h *PixHandler) HandleReport(c *gin.Context) {
	files := h.store.Files()
	if len(files) == 0 {
		responses.Error(c, http.StatusBadRequest, "Adicione arquivos para habilitar o download do Excel.")
		return
	}
	h.sendReport(c, files)
}

// HandleConvert gera o Excel diretamente dos arquivos enviados, sem usar a sessão.
func (h *PixHandler) HandleConvert(c *gin.Context) {
	files, code, err := readUploadedFiles(c)
	if err != nil {
		responses.Error(c, code, "Arquivos não encontrados ou inválidos", err.Error())
		return
	}
	h.sendReport(c, files)
}

func (h *PixHandler) sendReport(c *gin.Context, files []domain.ArquivoExtrato) {
	out, err := h.service.BuildReport(files)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Erro ao gerar o Excel consolidado", err.Error())
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+ReportFileName)
	c.Data(http.StatusOK, xlsxContentType, out)
}
