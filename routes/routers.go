package routes

import (
	"chatkeep/controllers"
	middlewares "chatkeep/middleware"
	"chatkeep/repository"
	"chatkeep/services"
	"chatkeep/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) {
	log := logger.NewDefaultLogger(logger.InfoLevel)

	userRepo := repository.NewUserRepository(db)
	chatRepo := repository.NewChatRepository(db)

	userService := services.NewUserService(services.UserServiceOptions{
		Repo:   userRepo,
		Redis:  redisCli,
		Logger: log.Named("user-service"),
	})
	chatService := services.NewChatService(services.ChatServiceOptions{
		Repo:   chatRepo,
		Logger: log.Named("chat-service"),
	})
	reportService := services.NewReportService(services.ReportServiceOptions{
		Repo:   chatRepo,
		Logger: log.Named("report-service"),
	})

	userController := controllers.NewUserController(userService)
	chatController := controllers.NewChatController(chatService, reportService)

	router.Use(middlewares.RequestIDMiddleware())

	api := router.Group("/api")
	api.POST("/regist_user_info", userController.RegisterUserInfo)
	api.GET("/check-license", userController.CheckLicense)
	api.GET("/check-userinfo", userController.CheckUserInfo)

	api.PUT("/update-chat", chatController.UpdateChat)
	api.GET("/chat-history", chatController.GetChatHistory)
	api.GET("/get-chat-histories", chatController.GetChatHistories)
	api.GET("/get-chat-list/:id", chatController.GetChatList)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
