package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"airline_booking_api/models"
	"airline_booking_api/repository"
	"airline_booking_api/validations"
)

type BookingController struct {
	Bookings repository.BookingRepository
	Airlines repository.AirlineRepository
}

func NewBookingController(bookings repository.BookingRepository, airlines repository.AirlineRepository) *BookingController {
	return &BookingController{
		Bookings: bookings,
		Airlines: airlines,
	}
}

// ========== HANDLERS ==========

// CreateBooking reserves a flight for a passenger. The flight must exist in
// some airline's embedded list; the booking records only the flight id.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	flightID, err := primitive.ObjectIDFromHex(c.Param("flightId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight id"})
		return
	}

	var req validations.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	airline, err := bc.Airlines.FindByFlightID(ctx, flightID)
	if err == repository.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Flight not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error querying airline", "error": err.Error()})
		return
	}

	var matchingFlight *models.Flight
	for i := range airline.Flights {
		if airline.Flights[i].ID == flightID {
			matchingFlight = &airline.Flights[i]
			break
		}
	}
	// Cannot happen when the airline-level query matched; kept as a distinct
	// branch rather than trusting the query shape.
	if matchingFlight == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Matching flight not found"})
		return
	}

	now := time.Now()
	booking := models.Booking{
		ID:        primitive.NewObjectID(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Flight:    matchingFlight.ID,
		IsBooked:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := bc.Bookings.Insert(ctx, &booking); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error querying airline", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Flight booked successfully",
		"booking": booking,
	})
}

// GetAllBookings lists every booking, paid or not.
func (bc *BookingController) GetAllBookings(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	bookings, err := bc.Bookings.FindAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching bookings", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Bookings fetched successfully",
		"bookings": bookings,
	})
}

// MakePayment confirms payment for the booking referencing the given flight.
// Payment is simulated: isBooked flips false to true, once, and stays true.
func (bc *BookingController) MakePayment(c *gin.Context) {
	flightID, err := primitive.ObjectIDFromHex(c.Param("flightId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	switch err := bc.Bookings.ConfirmPayment(ctx, flightID); err {
	case nil:
		c.JSON(http.StatusOK, gin.H{"message": "Payment confirmed and flight booked"})
	case repository.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"message": "Flight booking not found"})
	case repository.ErrAlreadyPaid:
		c.JSON(http.StatusConflict, gin.H{"message": "This flight has already been booked and payed for"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error processing payment", "error": err.Error()})
	}
}
