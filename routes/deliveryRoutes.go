package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ytayachi/magasin-api/controllers"
)

func DeliveryRoutes(server *gin.Engine, ctrl *controllers.DeliveryController) {
	deliveries := server.Group("/api/deliveries")
	{
		deliveries.GET("", ctrl.GetDeliveries)
		deliveries.GET("/:id", ctrl.GetDelivery)
		deliveries.GET("/track/:code", ctrl.TrackDelivery)
		deliveries.GET("/phone/:number", ctrl.GetDeliveriesByPhone)
		deliveries.POST("", ctrl.CreateDelivery)
		deliveries.PUT("/:id", ctrl.UpdateDelivery)
		deliveries.DELETE("/:id", ctrl.DeleteDelivery)
	}
}
