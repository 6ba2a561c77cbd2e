package routes

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Sh4dowyy/podoloog-sub000/config"
	"github.com/Sh4dowyy/podoloog-sub000/middleware"
)

// SetupRouter создаёт gin.Engine, регистрирует все маршруты и возвращает роутер
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())

	// CORS middleware ДО роутов
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Lang"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// загруженные изображения раздаются статикой
	r.Static("/uploads", "./uploads")

	SetupAuthRoutes(r)
	SetupContentRoutes(r)
	SetupBlogRoutes(r)
	SetupReviewRoutes(r)
	SetupGalleryRoutes(r)
	SetupAdminRoutes(r)

	return r
}
