package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Sh4dowyy/podoloog-sub000/controllers"
	"github.com/Sh4dowyy/podoloog-sub000/middleware"
)

// SetupGalleryRoutes — REST галереи и аплоады. Чтение публичное,
// запись и загрузка файлов только под JWT.
func SetupGalleryRoutes(r *gin.Engine) {
	galleryController := controllers.NewGalleryController()
	uploadController := controllers.NewUploadController()

	r.GET("/api/gallery", galleryController.List)
	r.GET("/api/gallery/:id", galleryController.GetByID)

	authed := r.Group("/api", middleware.JWTAuthMiddleware())
	{
		authed.POST("/gallery", galleryController.Create)
		authed.PUT("/gallery/:id", galleryController.Update)
		authed.DELETE("/gallery/:id", galleryController.Delete)
		authed.POST("/gallery/upload", uploadController.GalleryUpload)
		authed.POST("/upload", uploadController.GenericUpload)
	}
}
