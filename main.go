package main

import (
	"log"
	"net/http"
	"os"

	"chatkeep/config"
	_ "chatkeep/docs"
	"chatkeep/jobs"
	"chatkeep/repository"
	"chatkeep/routes"
	"chatkeep/services"
	"chatkeep/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer config.CloseDB()

	reportService := services.NewReportService(services.ReportServiceOptions{
		Repo:   repository.NewChatRepository(config.DB),
		Logger: logger.NewDefaultLogger(logger.InfoLevel).Named("usage-report"),
	})
	jobs.SetUsageReporter(reportService)

	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	routes.SetupRoutes(router, config.DB, config.RedisClient)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
