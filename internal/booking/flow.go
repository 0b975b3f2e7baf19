// Package booking drives booking submission: it validates the current
// selection and form inputs locally, then issues exactly one creation call
// per successful submission. Network and validation failures are terminal
// for the attempt; the user must re-submit explicitly.
package booking

import (
	"context"
	"sync"
	"time"

	"dzbooking/internal/domain"
	"dzbooking/internal/models"
	"dzbooking/internal/selection"
)

// Outcome of a submission attempt.
type Outcome string

const (
	// OutcomeConfirmed means the booking was created; the caller hands off
	// to the bookings list with no further state retained.
	OutcomeConfirmed Outcome = "confirmed"
	// OutcomeLoginRedirect means no session user is present; route to login
	// instead of submitting.
	OutcomeLoginRedirect Outcome = "login_redirect"
	// OutcomeSeatTaken is the seat-already-booked conflict; Result.Seats
	// carries a refreshed availability snapshot when one could be fetched.
	OutcomeSeatTaken Outcome = "seat_taken"
	// OutcomeInvalid is a local validation failure; nothing was sent.
	OutcomeInvalid Outcome = "invalid"
	// OutcomeFailed is a network or unknown backend failure.
	OutcomeFailed Outcome = "failed"
	// OutcomeBusy means a submission is already in flight; duplicate
	// submissions could double-book a seat and are rejected outright.
	OutcomeBusy Outcome = "busy"
)

// Result reports one submission attempt. MessageKey is an i18n key for the
// inline message to show, when any.
type Result struct {
	Outcome    Outcome
	MessageKey string
	Err        error
}

// Session exposes the piece of session state the flows need.
type Session interface {
	Authenticated() bool
}

type busAPI interface {
	CreateBusBooking(ctx context.Context, req models.BusBookingRequest) (models.BusBooking, error)
	TripDetail(ctx context.Context, tripID string) (models.TripDetail, error)
}

// BusFlow submits seat bookings for one trip page session.
type BusFlow struct {
	API     busAPI
	Session Session

	mu       sync.Mutex
	inFlight bool
}

// BusResult extends Result with the created booking and, on a seat
// conflict, the refreshed seat map.
type BusResult struct {
	Result
	Booking models.BusBooking
	Seats   []models.Seat
}

// Submit validates preconditions and books the selected seat. Preconditions
// are checked before any network call: session user present, a seat
// selected, passenger name and phone non-empty.
func (f *BusFlow) Submit(ctx context.Context, trip models.Trip, sel *selection.SeatSelection, passengerName, passengerPhone string) BusResult {
	if !f.begin() {
		return BusResult{Result: Result{Outcome: OutcomeBusy}}
	}
	defer f.end()

	if f.Session == nil || !f.Session.Authenticated() {
		return BusResult{Result: Result{Outcome: OutcomeLoginRedirect}}
	}
	seat, ok := sel.Current()
	if !ok {
		return BusResult{Result: Result{
			Outcome:    OutcomeInvalid,
			MessageKey: "bus.chooseSeat",
			Err:        domain.ValidationError{Field: "seat", Msg: "no seat selected"},
		}}
	}
	if passengerName == "" || passengerPhone == "" {
		return BusResult{Result: Result{
			Outcome:    OutcomeInvalid,
			MessageKey: "bus.passengerData",
			Err:        domain.ValidationError{Field: "passenger", Msg: "name and phone are required"},
		}}
	}

	created, err := f.API.CreateBusBooking(ctx, models.BusBookingRequest{
		TripID:         trip.ID,
		PassengerName:  passengerName,
		PassengerPhone: passengerPhone,
		SeatNumber:     seat.SeatNumber,
	})
	switch {
	case err == nil:
		return BusResult{Result: Result{Outcome: OutcomeConfirmed}, Booking: created}
	case domain.IsConflict(err):
		// The seat was booked under us. Refresh availability so the user
		// can pick another seat; never retry silently.
		res := BusResult{Result: Result{
			Outcome:    OutcomeSeatTaken,
			MessageKey: "bus.seatTaken",
			Err:        err,
		}}
		if detail, derr := f.API.TripDetail(ctx, trip.ID); derr == nil {
			res.Seats = detail.Seats
		}
		return res
	case domain.IsAuthRequired(err):
		return BusResult{Result: Result{Outcome: OutcomeLoginRedirect, Err: err}}
	default:
		return BusResult{Result: Result{
			Outcome:    OutcomeFailed,
			MessageKey: "booking.bookingError",
			Err:        err,
		}}
	}
}

func (f *BusFlow) begin() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inFlight {
		return false
	}
	f.inFlight = true
	return true
}

func (f *BusFlow) end() {
	f.mu.Lock()
	f.inFlight = false
	f.mu.Unlock()
}

type hotelAPI interface {
	CreateHotelBooking(ctx context.Context, req models.HotelBookingRequest) (models.HotelBooking, error)
}

// HotelFlow submits room bookings for one hotel page session.
type HotelFlow struct {
	API     hotelAPI
	Session Session

	mu       sync.Mutex
	inFlight bool
}

// HotelResult extends Result with the created booking.
type HotelResult struct {
	Result
	Booking models.HotelBooking
}

// Submit validates preconditions and books the selected room. An inverted
// date range blocks locally; checkout equal to checkin is allowed and bills
// one night.
func (f *HotelFlow) Submit(ctx context.Context, hotelID string, sel *selection.RoomSelection, checkIn, checkOut time.Time, guests int) HotelResult {
	if !f.begin() {
		return HotelResult{Result: Result{Outcome: OutcomeBusy}}
	}
	defer f.end()

	if f.Session == nil || !f.Session.Authenticated() {
		return HotelResult{Result: Result{Outcome: OutcomeLoginRedirect}}
	}
	room, ok := sel.Current()
	if !ok {
		return HotelResult{Result: Result{
			Outcome:    OutcomeInvalid,
			MessageKey: "booking.bookingError",
			Err:        domain.ValidationError{Field: "room", Msg: "no room selected"},
		}}
	}
	if checkOut.Before(checkIn) {
		return HotelResult{Result: Result{
			Outcome:    OutcomeInvalid,
			MessageKey: "booking.bookingError",
			Err:        domain.ValidationError{Field: "dates", Msg: "check-out before check-in"},
		}}
	}
	if guests < 1 {
		guests = 1
	}

	created, err := f.API.CreateHotelBooking(ctx, models.HotelBookingRequest{
		HotelID:      hotelID,
		RoomID:       room.ID,
		CheckInDate:  checkIn.Format(time.RFC3339),
		CheckOutDate: checkOut.Format(time.RFC3339),
		GuestsCount:  guests,
	})
	switch {
	case err == nil:
		return HotelResult{Result: Result{Outcome: OutcomeConfirmed}, Booking: created}
	case domain.IsAuthRequired(err):
		return HotelResult{Result: Result{Outcome: OutcomeLoginRedirect, Err: err}}
	default:
		return HotelResult{Result: Result{
			Outcome:    OutcomeFailed,
			MessageKey: "booking.bookingError",
			Err:        err,
		}}
	}
}

func (f *HotelFlow) begin() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inFlight {
		return false
	}
	f.inFlight = true
	return true
}

func (f *HotelFlow) end() {
	f.mu.Lock()
	f.inFlight = false
	f.mu.Unlock()
}
