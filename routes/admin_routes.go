package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Sh4dowyy/podoloog-sub000/controllers"
	"github.com/Sh4dowyy/podoloog-sub000/middleware"
)

// SetupAdminRoutes — CRUD-фасад админки, весь за JWT.
func SetupAdminRoutes(r *gin.Engine) {
	credentialController := controllers.NewCredentialController()
	blogController := controllers.NewBlogController()
	reviewController := controllers.NewReviewController()
	serviceController := controllers.NewServiceController()
	productController := controllers.NewProductController()
	valueController := controllers.NewValueController()
	biomechanicsController := controllers.NewBiomechanicsController()

	adminGroup := r.Group("/admin", middleware.JWTAuthMiddleware())
	{
		credentials := adminGroup.Group("/credentials")
		{
			credentials.GET("", credentialController.List)
			credentials.GET("/:id", credentialController.GetByID)
			credentials.POST("", credentialController.Create)
			credentials.PUT("/:id", credentialController.Update)
			credentials.DELETE("/:id", credentialController.Delete)
		}

		blog := adminGroup.Group("/blog")
		{
			blog.GET("", blogController.List)
			blog.GET("/:id", blogController.GetByID)
			blog.POST("", blogController.Create)
			blog.PUT("/:id", blogController.Update)
			blog.DELETE("/:id", blogController.Delete)
		}

		reviews := adminGroup.Group("/reviews")
		{
			reviews.GET("", reviewController.List)
			reviews.GET("/:id", reviewController.GetByID)
			reviews.POST("", reviewController.Create)
			reviews.PUT("/:id", reviewController.Update)
			reviews.DELETE("/:id", reviewController.Delete)
		}

		services := adminGroup.Group("/services")
		{
			services.GET("", serviceController.List)
			services.GET("/:id", serviceController.GetByID)
			services.POST("", serviceController.Create)
			services.PUT("/:id", serviceController.Update)
			services.DELETE("/:id", serviceController.Delete)
		}

		brands := adminGroup.Group("/brands")
		{
			brands.GET("", productController.ListBrands)
			brands.GET("/:id", productController.GetBrandByID)
			brands.POST("", productController.CreateBrand)
			brands.PUT("/:id", productController.UpdateBrand)
			brands.DELETE("/:id", productController.DeleteBrand)
		}

		products := adminGroup.Group("/products")
		{
			products.GET("", productController.ListProducts)
			products.GET("/:id", productController.GetProductByID)
			products.POST("", productController.CreateProduct)
			products.PUT("/:id", productController.UpdateProduct)
			products.DELETE("/:id", productController.DeleteProduct)
		}

		values := adminGroup.Group("/values")
		{
			values.GET("", valueController.List)
			values.GET("/:id", valueController.GetByID)
			values.POST("", valueController.Create)
			values.PUT("/:id", valueController.Update)
			values.DELETE("/:id", valueController.Delete)
		}

		biomechanics := adminGroup.Group("/biomechanics")
		{
			biomechanics.GET("", biomechanicsController.List)
			biomechanics.GET("/:id", biomechanicsController.GetByID)
			biomechanics.POST("", biomechanicsController.Create)
			biomechanics.PUT("/:id", biomechanicsController.Update)
			biomechanics.DELETE("/:id", biomechanicsController.Delete)
		}
	}
}
