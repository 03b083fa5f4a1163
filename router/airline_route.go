package router

import (
	"airline_booking_api/config"
	"airline_booking_api/controllers"
	"airline_booking_api/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func AirlineRoutes(r *gin.Engine, client *mongo.Client, db string) {
	airlineCollection := config.GetCollection(client, db, "airlines")
	airlineRepo := repository.NewMongoAirlineRepository(airlineCollection)
	airlineController := controllers.NewAirlineController(airlineRepo)

	r.POST("/airlines", airlineController.CreateAirline)
	r.POST("/airlines/:id/flights", airlineController.CreateFlight)
	r.GET("/airlines", airlineController.GetAllAirlines)
	r.GET("/airlines/search", airlineController.SearchFlights)
}
