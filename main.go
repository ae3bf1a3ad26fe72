package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: .env file not found, using system environment variables")
	}
}

func main() {

	// Load .env variables
	LoadEnv()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET is missing in .env")
	}

	app := &App{
		DB:        InitDB(),
		Cache:     ConnectRedis(),
		Registrar: NewRegistrar(os.Getenv("REGISTRATION_WEBHOOK_URL")),
	}

	// First run against an empty database gets the demo parish team
	SeedDemoData(app.DB)

	// Start Gin
	r := gin.Default()

	r.Use(CORSMiddleware())
	r.Use(RequestID())

	SetupRoutes(r, app)

	// Start server
	log.Println("🚀 Server running on http://localhost:8080")
	r.Run(":8080")
}
