package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ytayachi/magasin-api/config"
	"github.com/ytayachi/magasin-api/controllers"
	"github.com/ytayachi/magasin-api/initializers"
	"github.com/ytayachi/magasin-api/routes"
	"github.com/ytayachi/magasin-api/services"
	"github.com/ytayachi/magasin-api/store"
)

func main() {
	cfg := config.Load()

	db, err := initializers.ConnectToDB(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := initializers.SyncDatabase(db); err != nil {
		log.Fatal(err)
	}

	st := store.New(db)
	notifier := services.NewNotifier(cfg.WebhookURL)
	orderService := services.NewOrderService(st, notifier)
	deliveryService := services.NewDeliveryService(st, notifier, orderService)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.ProductRoutes(server, controllers.NewProductController(st))
	routes.OrderRoutes(server, controllers.NewOrderController(st, orderService))
	routes.DeliveryRoutes(server, controllers.NewDeliveryController(st, deliveryService))
	routes.ReclamationRoutes(server, controllers.NewReclamationController(st))

	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
