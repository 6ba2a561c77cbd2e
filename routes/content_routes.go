package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Sh4dowyy/podoloog-sub000/controllers"
)

// SetupContentRoutes — публичные read-only ручки сайта.
// Отдают только опубликованный/активный контент.
func SetupContentRoutes(r *gin.Engine) {
	serviceController := controllers.NewServiceController()
	credentialController := controllers.NewCredentialController()
	valueController := controllers.NewValueController()
	biomechanicsController := controllers.NewBiomechanicsController()
	productController := controllers.NewProductController()

	r.GET("/services", serviceController.ListPublished)
	r.GET("/credentials", credentialController.ListPublished)
	r.GET("/values", valueController.ListActive)
	r.GET("/biomechanics", biomechanicsController.ListPublished)
	r.GET("/brands", productController.ListPublishedBrands)
	r.GET("/products", productController.ListPublishedProducts)
}
