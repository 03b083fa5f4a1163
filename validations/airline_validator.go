package validations

// FlightInput is a flight as submitted by a client. Dates travel as
// YYYY-MM-DD strings and are canonicalized before storage.
type FlightInput struct {
	DepartureCity   string  `json:"departureCity" binding:"required,city"`
	DestinationCity string  `json:"destinationCity" binding:"required,city"`
	Price           float64 `json:"price" binding:"gte=0"`
	Date            string  `json:"date" binding:"required,datetime=2006-01-02"`
}

type CreateAirlineRequest struct {
	Name    string        `json:"name" binding:"required,min=1"`
	Flights []FlightInput `json:"flights"`
}

type CreateFlightRequest struct {
	DepartureCity   string  `json:"departureCity" binding:"required,city"`
	DestinationCity string  `json:"destinationCity" binding:"required,city"`
	Price           float64 `json:"price" binding:"gte=0"`
	Date            string  `json:"date" binding:"required,datetime=2006-01-02"`
}

type SearchFlightsRequest struct {
	DepartureCity   string `form:"departureCity" binding:"required"`
	DestinationCity string `form:"destinationCity" binding:"required"`
	Date            string `form:"date" binding:"required,datetime=2006-01-02"`
}
