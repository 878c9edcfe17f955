package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/cecepns/lily-mily-kosmetik/controllers"
	"github.com/cecepns/lily-mily-kosmetik/middleware"
)

func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")

	// Public routes
	api.POST("/auth/login", controllers.Login)

	api.GET("/categories", controllers.GetCategories)
	api.GET("/brands", controllers.GetBrands)
	api.GET("/products", controllers.GetProducts)
	api.GET("/products/:id", controllers.GetProduct)
	api.GET("/reviews", controllers.GetReviews)
	api.POST("/reviews", controllers.CreateReview)

	// Admin routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/categories", controllers.CreateCategory)
		protected.PUT("/categories/:id", controllers.UpdateCategory)
		protected.DELETE("/categories/:id", controllers.DeleteCategory)

		protected.POST("/brands", controllers.CreateBrand)
		protected.PUT("/brands/:id", controllers.UpdateBrand)
		protected.DELETE("/brands/:id", controllers.DeleteBrand)

		products := protected.Group("/products")
		{
			products.POST("", controllers.CreateProduct)
			products.POST("/bulk", controllers.BulkCreateProducts)
			products.PUT("/:id", controllers.UpdateProduct)
			products.DELETE("/:id", controllers.DeleteProduct)
			products.DELETE("/:id/image", controllers.RemoveProductImage)
		}

		protected.GET("/reviews/admin", controllers.GetAllReviews)
		protected.PUT("/reviews/:id/approve", controllers.ApproveReview)
		protected.DELETE("/reviews/:id", controllers.DeleteReview)

		protected.POST("/upload", controllers.UploadFile)
		protected.POST("/reports", controllers.GenerateReport)
	}
}
