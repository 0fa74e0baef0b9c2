package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ytayachi/magasin-api/controllers"
)

func OrderRoutes(server *gin.Engine, ctrl *controllers.OrderController) {
	orders := server.Group("/api/orders")
	{
		orders.GET("", ctrl.GetOrders)
		orders.GET("/:id", ctrl.GetOrder)
		orders.POST("", ctrl.CreateOrder)
		orders.PUT("/:id", ctrl.UpdateOrder)
		orders.PATCH("/:id", ctrl.UpdateOrderStatus)
		orders.DELETE("/:id", ctrl.DeleteOrder)
	}
}
