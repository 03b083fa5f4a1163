package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"airline_booking_api/models"
	"airline_booking_api/repository"
	"airline_booking_api/utils"
	"airline_booking_api/validations"
)

type AirlineController struct {
	Airlines repository.AirlineRepository
}

func NewAirlineController(airlines repository.AirlineRepository) *AirlineController {
	return &AirlineController{Airlines: airlines}
}

// ========== HANDLERS ==========

// CreateAirline registers a new airline with its initial flight list.
// Airline names are unique after lowercasing; a duplicate is a conflict.
func (ac *AirlineController) CreateAirline(c *gin.Context) {
	var req validations.CreateAirlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	name := utils.Normalize(req.Name)

	_, err := ac.Airlines.FindByName(ctx, name)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "Airline already existing"})
		return
	}
	if err != repository.ErrNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating airline", "error": err.Error()})
		return
	}

	flights := make([]models.Flight, 0, len(req.Flights))
	for _, f := range req.Flights {
		date, err := utils.ParseFlightDate(f.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight date"})
			return
		}
		flights = append(flights, models.Flight{
			ID:              primitive.NewObjectID(),
			DepartureCity:   utils.Normalize(f.DepartureCity),
			DestinationCity: utils.Normalize(f.DestinationCity),
			Price:           f.Price,
			Date:            date,
		})
	}

	airline := models.Airline{
		ID:      primitive.NewObjectID(),
		Name:    name,
		Flights: flights,
	}

	if err := ac.Airlines.Insert(ctx, &airline); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating airline", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "airline successfully created",
		"data":    airline,
	})
}

// CreateFlight appends a flight to an existing airline. The flight id is
// generated here and never accepted from the client.
func (ac *AirlineController) CreateFlight(c *gin.Context) {
	airlineID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid airline id"})
		return
	}

	var req validations.CreateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := utils.ParseFlightDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight date"})
		return
	}

	flight := models.Flight{
		ID:              primitive.NewObjectID(),
		DepartureCity:   utils.Normalize(req.DepartureCity),
		DestinationCity: utils.Normalize(req.DestinationCity),
		Price:           req.Price,
		Date:            date,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	updated, err := ac.Airlines.PushFlight(ctx, airlineID, flight)
	if err == repository.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "airline not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding flight", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Flight successfully added",
		"data":    updated,
	})
}

// GetAllAirlines lists every airline with a total count.
func (ac *AirlineController) GetAllAirlines(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	airlines, count, err := ac.Airlines.FindAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching airlines", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    count,
		"airlines": airlines,
	})
}

// SearchFlights returns the airlines serving the requested route on the
// requested day, each with its flight list narrowed to the matching flights.
func (ac *AirlineController) SearchFlights(c *gin.Context) {
	var req validations.SearchFlightsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := utils.ParseFlightDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	airlines, err := ac.Airlines.Search(ctx,
		utils.Normalize(req.DepartureCity),
		utils.Normalize(req.DestinationCity),
		date,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching airlines", "error": err.Error()})
		return
	}

	if len(airlines) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No available airline"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Available airlines",
		"airlines": airlines,
	})
}
