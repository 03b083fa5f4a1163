package router

import (
	"airline_booking_api/config"
	"airline_booking_api/controllers"
	"airline_booking_api/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func BookingRoutes(r *gin.Engine, client *mongo.Client, db string) {
	bookingCollection := config.GetCollection(client, db, "bookings")
	airlineCollection := config.GetCollection(client, db, "airlines")
	bookingRepo := repository.NewMongoBookingRepository(bookingCollection)
	airlineRepo := repository.NewMongoAirlineRepository(airlineCollection)
	bookingController := controllers.NewBookingController(bookingRepo, airlineRepo)

	r.POST("/bookings/:flightId", bookingController.CreateBooking)
	r.GET("/bookings", bookingController.GetAllBookings)
	// The path parameter is a flight id: payment looks up the booking by the
	// flight it references, not by the booking's own id.
	r.POST("/bookings/payment/:flightId", bookingController.MakePayment)
}
