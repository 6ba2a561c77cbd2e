package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Sh4dowyy/podoloog-sub000/controllers"
	"github.com/Sh4dowyy/podoloog-sub000/middleware"
)

func SetupAuthRoutes(r *gin.Engine) {
	authController := controllers.NewAuthController()

	r.POST("/auth/login", authController.Login)
	r.GET("/auth/google", authController.GoogleLogin)
	r.GET("/auth/callback", authController.GoogleCallback)

	authed := r.Group("/auth", middleware.JWTAuthMiddleware())
	{
		authed.POST("/logout", authController.Logout)
		authed.GET("/me", authController.Me)
	}
}
