// cmd/pix/main.go
package main

import (
	"log"

	"pix-service/internal/api/handlers"
	"pix-service/internal/api/responses"
	"pix-service/internal/config"
	"pix-service/internal/core/pix"
	"pix-service/internal/core/session"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	responses.InitLogger()
	defer responses.Logger().Sync()

	pixService := pix.NewService(responses.Logger(), cfg.PreviewRows)
	pixHandler := handlers.NewPixHandler(pixService, session.NewStore())

	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxUploadMB << 20
	handlers.RegisterRoutes(router, pixHandler)

	log.Printf("🚀 Pix Service (Go) iniciado e escutando na porta %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Falha ao iniciar o servidor do consolidador Pix: ", err)
	}
}
