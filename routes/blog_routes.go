package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Sh4dowyy/podoloog-sub000/controllers"
)

func SetupBlogRoutes(r *gin.Engine) {
	blogController := controllers.NewBlogController()
	grp := r.Group("/blog")
	{
		grp.GET("", blogController.ListPublished)
		grp.GET("/:slug", blogController.GetBySlug)
	}
}
