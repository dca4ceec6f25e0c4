package config

import (
	"log"

	"chatkeep/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

var RedisClient *redis.Client

func InitApp() (*gin.Engine, *cron.Cron, error) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	initComponents()

	// Cron tính lịch theo timezone chuẩn: job nửa đêm chạy đúng nửa
	// đêm giờ tham chiếu, không phụ thuộc timezone của server
	loc, err := utils.Location()
	if err != nil {
		return nil, nil, err
	}
	c := cron.New(cron.WithLocation(loc))

	return router, c, nil
}

func initComponents() {
	LoadEnv()

	ConnectDB()

	var err error
	RedisClient, err = ConnectRedis()
	if err != nil {
		// Không có Redis thì chạy không cache
		log.Printf("Warning: không kết nối được Redis, tắt cache: %v", err)
		RedisClient = nil
	}

	log.Println("All components initialized successfully")
}
