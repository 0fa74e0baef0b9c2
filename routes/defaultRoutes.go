package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ytayachi/magasin-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
	server.GET("/api/health", controllers.GetHealth)
}
