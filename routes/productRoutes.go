package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ytayachi/magasin-api/controllers"
)

func ProductRoutes(server *gin.Engine, ctrl *controllers.ProductController) {
	products := server.Group("/api/products")
	{
		products.GET("", ctrl.GetProducts)
		products.GET("/:id", ctrl.GetProduct)
		products.POST("", ctrl.CreateProduct)
		products.PUT("/:id", ctrl.UpdateProduct)
		products.DELETE("/:id", ctrl.DeleteProduct)
	}
}
