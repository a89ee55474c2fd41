package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes registra as rotas do consolidador no router.
func RegisterRoutes(router *gin.Engine, pixHandler *PixHandler) {
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/pix/files", pixHandler.HandleAddFiles)
		apiV1.GET("/pix/files", pixHandler.HandleListFiles)
		apiV1.DELETE("/pix/files", pixHandler.HandleClearFiles)
		apiV1.DELETE("/pix/files/:id", pixHandler.HandleRemoveFile)
		apiV1.GET("/pix/summary", pixHandler.HandleSummary)
		apiV1.GET("/pix/report", pixHandler.HandleReport)
		apiV1.POST("/convert/pix", pixHandler.HandleConvert)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP", "service": "pix-service"})
	})
}
