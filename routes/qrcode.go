package routes

import (
	"github.com/gin-gonic/gin"

	"qrgen/handlers"
	"qrgen/middleware"
)

func RegisterQRCodeRoutes(r *gin.Engine) {
	r.GET("/", handlers.Index)
	r.POST("/generate", middleware.RateLimitMiddleware(), handlers.GenerateQR)
	r.GET("/records", handlers.Records)
	r.GET("/view/:slug", handlers.ViewQR)
	r.GET("/download/:slug", handlers.DownloadQR)

	api := r.Group("/api")
	api.GET("/qrcodes", handlers.ListQRCodes)
}
