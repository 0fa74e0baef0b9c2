package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"error": message})
}

func GetHome(ctx *gin.Context) {
	message := `Welcome to Magasin API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

PRODUCT
- POST "/api/products" - Create new product
- GET "/api/products" - Get all products (query params filter exact-match)
- GET "/api/products/{id}" - Get product by ID
- PUT "/api/products/{id}" - Update product
- DELETE "/api/products/{id}" - Delete product

ORDER
- POST "/api/orders" - Create a new order
- GET "/api/orders" - Retrieve all orders
- GET "/api/orders/{id}" - Get order by ID
- PUT "/api/orders/{id}" - Update order
- PATCH "/api/orders/{id}" - Update order status
- DELETE "/api/orders/{id}" - Delete order by ID

DELIVERY
- POST "/api/deliveries" - Create a new delivery
- GET "/api/deliveries" - Retrieve all deliveries
- GET "/api/deliveries/{id}" - Get delivery by ID
- GET "/api/deliveries/track/{code}" - Track delivery by tracking number
- GET "/api/deliveries/phone/{number}" - Get deliveries by customer phone
- PUT "/api/deliveries/{id}" - Update delivery
- DELETE "/api/deliveries/{id}" - Delete delivery

RECLAMATION
- POST "/api/reclamations" - Create a new reclamation
- GET "/api/reclamations" - Retrieve all reclamations
- GET "/api/reclamations/{id}" - Get reclamation by ID
- PUT "/api/reclamations/{id}" - Update reclamation
- PATCH "/api/reclamations/{id}" - Update reclamation status
- DELETE "/api/reclamations/{id}" - Delete reclamation`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}

func GetHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "Server is running",
	})
}
