package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Sh4dowyy/podoloog-sub000/controllers"
)

func SetupReviewRoutes(r *gin.Engine) {
	reviewController := controllers.NewReviewController()

	r.GET("/reviews", reviewController.ListPublished)
	// публичная отправка отзыва, auto-publish
	r.POST("/api/reviews/public", reviewController.CreatePublic)
}
