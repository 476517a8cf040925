package main

import (
	"time"

	"conciliacion-bancaria-backend/internal/config"
	"conciliacion-bancaria-backend/internal/models"
	"conciliacion-bancaria-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, relying on system env")
	}

	server := config.LoadServer()
	matching := config.LoadMatching()

	db := config.InitDB()

	db.AutoMigrate(
		&models.BankMovement{},
		&models.ConductorPayment{},
		&models.TrackingItem{},
		&models.ReconciliationResult{},
		&models.ImportBatch{},
		&models.OverrideAuditLog{},
	)

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{server.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-User-Email"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, matching, server.Workers)

	if err := r.Run(":" + server.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
