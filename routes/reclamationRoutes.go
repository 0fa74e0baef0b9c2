package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ytayachi/magasin-api/controllers"
)

func ReclamationRoutes(server *gin.Engine, ctrl *controllers.ReclamationController) {
	reclamations := server.Group("/api/reclamations")
	{
		reclamations.GET("", ctrl.GetReclamations)
		reclamations.GET("/:id", ctrl.GetReclamation)
		reclamations.POST("", ctrl.CreateReclamation)
		reclamations.PUT("/:id", ctrl.UpdateReclamation)
		reclamations.PATCH("/:id", ctrl.UpdateReclamationStatus)
		reclamations.DELETE("/:id", ctrl.DeleteReclamation)
	}
}
