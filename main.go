package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"qrgen/handlers"
	"qrgen/initializers"
	"qrgen/routes"
)

const defaultPort = "8080"

func main() {
	initializers.ConnectToDatabase()
	initializers.InitStorage()
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:   []string{"Content-Length", "Content-Disposition"},
		MaxAge:          12 * time.Hour,
	}))

	handlers.LoadTemplates(router)
	routes.RegisterQRCodeRoutes(router)

	log.Printf("QR generator listening on http://localhost:%s/", port)
	log.Fatal(router.Run(":" + port))
}
