package controllers_test

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"airline_booking_api/models"
	"airline_booking_api/repository"
)

// fakeAirlineRepo is an in-memory stand-in for the airlines collection. A
// non-nil err is returned from every method, and flightIDAirline overrides
// FindByFlightID when set.
type fakeAirlineRepo struct {
	airlines        []*models.Airline
	err             error
	flightIDAirline *models.Airline
}

func (f *fakeAirlineRepo) Insert(_ context.Context, airline *models.Airline) error {
	if f.err != nil {
		return f.err
	}
	stored := *airline
	f.airlines = append(f.airlines, &stored)
	return nil
}

func (f *fakeAirlineRepo) FindByName(_ context.Context, name string) (*models.Airline, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.airlines {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAirlineRepo) FindByFlightID(_ context.Context, flightID primitive.ObjectID) (*models.Airline, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.flightIDAirline != nil {
		return f.flightIDAirline, nil
	}
	for _, a := range f.airlines {
		for _, fl := range a.Flights {
			if fl.ID == flightID {
				return a, nil
			}
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAirlineRepo) PushFlight(_ context.Context, airlineID primitive.ObjectID, flight models.Flight) (*models.Airline, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.airlines {
		if a.ID == airlineID {
			a.Flights = append(a.Flights, flight)
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAirlineRepo) FindAll(_ context.Context) ([]models.Airline, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	airlines := []models.Airline{}
	for _, a := range f.airlines {
		airlines = append(airlines, *a)
	}
	return airlines, int64(len(airlines)), nil
}

func (f *fakeAirlineRepo) Search(_ context.Context, departureCity, destinationCity string, date time.Time) ([]models.Airline, error) {
	if f.err != nil {
		return nil, f.err
	}
	results := []models.Airline{}
	for _, a := range f.airlines {
		matching := []models.Flight{}
		for _, fl := range a.Flights {
			if fl.DepartureCity == departureCity && fl.DestinationCity == destinationCity && fl.Date.Equal(date) {
				matching = append(matching, fl)
			}
		}
		if len(matching) > 0 {
			results = append(results, models.Airline{ID: a.ID, Name: a.Name, Flights: matching})
		}
	}
	return results, nil
}

// fakeBookingRepo is an in-memory stand-in for the bookings collection.
type fakeBookingRepo struct {
	bookings []*models.Booking
	err      error
}

func (f *fakeBookingRepo) Insert(_ context.Context, booking *models.Booking) error {
	if f.err != nil {
		return f.err
	}
	stored := *booking
	f.bookings = append(f.bookings, &stored)
	return nil
}

func (f *fakeBookingRepo) FindAll(_ context.Context) ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	bookings := []models.Booking{}
	for _, b := range f.bookings {
		bookings = append(bookings, *b)
	}
	return bookings, nil
}

func (f *fakeBookingRepo) ConfirmPayment(_ context.Context, flightID primitive.ObjectID) error {
	if f.err != nil {
		return f.err
	}
	for _, b := range f.bookings {
		if b.Flight == flightID && !b.IsBooked {
			b.IsBooked = true
			b.UpdatedAt = time.Now()
			return nil
		}
	}
	for _, b := range f.bookings {
		if b.Flight == flightID {
			return repository.ErrAlreadyPaid
		}
	}
	return repository.ErrNotFound
}
