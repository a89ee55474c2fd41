// Package config carrega a configuração do serviço a partir do ambiente.
package config

import (
	"bufio"
	"log"
	"os"
	"strconv"
	"strings"
)

// Config reúne os parâmetros do serviço.
type Config struct {
	Port        string
	MaxUploadMB int64
	PreviewRows int
	GinMode     string
}

// Valores padrão.
const (
	DefaultPort        = "8084"
	DefaultMaxUploadMB = 32
	DefaultPreviewRows = 50
)

// Load lê o arquivo .env (se existir) e as variáveis de ambiente.
// Variáveis já definidas no ambiente têm prioridade sobre o .env.
func Load() Config {
	loadEnv(".env")
	return FromEnv()
}

// FromEnv monta a configuração apenas com as variáveis de ambiente.
func FromEnv() Config {
	return Config{
		Port:        getString("PIX_PORT", DefaultPort),
		MaxUploadMB: int64(getInt("PIX_MAX_UPLOAD_MB", DefaultMaxUploadMB)),
		PreviewRows: getInt("PIX_PREVIEW_ROWS", DefaultPreviewRows),
		GinMode:     getString("GIN_MODE", ""),
	}
}

func getString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Valor inválido para %s: %q, usando %d", key, v, def)
		return def
	}
	return n
}

func loadEnv(path string) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Print("Arquivo .env não encontrado, prosseguindo com variáveis de ambiente")
		} else {
			log.Printf("Erro ao carregar .env: %v", err)
		}
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if _, exists := os.LookupEnv(key); !exists {
			os.Setenv(key, value)
		}
	}
	log.Print("Variáveis de ambiente carregadas de .env")
}
