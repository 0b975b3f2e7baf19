// Package store is the in-memory data store behind the local stub backend.
// It mirrors the external booking API's behavior closely enough to exercise
// the client core: the real backend stays the system of record in
// production. One mutex guards everything; the dataset is small.
package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"dzbooking/internal/domain"
	"dzbooking/internal/models"
	"dzbooking/internal/selection"
	"dzbooking/internal/utils"
)

// Account couples a user with its password hash; only the stub holds
// credentials.
type Account struct {
	User         models.User
	PasswordHash string
}

type Store struct {
	mu sync.RWMutex

	accounts  map[string]Account // keyed by lowercase email
	routes    map[string]models.Route
	companies map[string]models.Company
	trips     map[string]models.Trip
	seats     map[string][]models.Seat // keyed by trip ID

	busBookings   map[string]models.BusBooking
	hotelBookings map[string]models.HotelBooking

	hotels map[string]models.Hotel
	rooms  map[string][]models.Room // keyed by hotel ID
}

func New() *Store {
	return &Store{
		accounts:      map[string]Account{},
		routes:        map[string]models.Route{},
		companies:     map[string]models.Company{},
		trips:         map[string]models.Trip{},
		seats:         map[string][]models.Seat{},
		busBookings:   map[string]models.BusBooking{},
		hotelBookings: map[string]models.HotelBooking{},
		hotels:        map[string]models.Hotel{},
		rooms:         map[string][]models.Room{},
	}
}

// CreateAccount registers a user. Email is the unique key.
func (s *Store) CreateAccount(email, fullName, phone, password string) (models.User, error) {
	key := strings.ToLower(strings.TrimSpace(email))
	if key == "" || strings.TrimSpace(password) == "" {
		return models.User{}, domain.ValidationError{Field: "credentials", Msg: "email and password are required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[key]; exists {
		return models.User{}, domain.ConflictError{Resource: "user", Msg: "Email already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}

	user := models.User{
		ID:          uuid.NewString(),
		Email:       key,
		FullName:    strings.TrimSpace(fullName),
		PhoneNumber: strings.TrimSpace(phone),
	}
	s.accounts[key] = Account{User: user, PasswordHash: string(hash)}
	return user, nil
}

// Authenticate checks email/password and returns the user.
func (s *Store) Authenticate(email, password string) (models.User, error) {
	key := strings.ToLower(strings.TrimSpace(email))

	s.mu.RLock()
	acc, ok := s.accounts[key]
	s.mu.RUnlock()
	if !ok {
		return models.User{}, domain.AuthRequiredError{}
	}
	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
		return models.User{}, domain.AuthRequiredError{}
	}
	return acc.User, nil
}

// UserByID resolves a token subject back to a user.
func (s *Store) UserByID(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, acc := range s.accounts {
		if acc.User.ID == id {
			return acc.User, true
		}
	}
	return models.User{}, false
}

// SearchTrips returns bundles for a route on a date, ordered by departure
// time. Only trips with enough free seats for the party are returned.
func (s *Store) SearchTrips(req models.BusSearchRequest) []models.TripBundle {
	passengers := req.PassengersCount
	if passengers < 1 {
		passengers = 1
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.TripBundle{}
	for _, t := range s.trips {
		route := s.routes[t.RouteID]
		if route.OriginCity != req.OriginCity || route.DestinationCity != req.DestinationCity {
			continue
		}
		if t.DepartureDate != req.DepartureDate {
			continue
		}
		if t.AvailableSeats < passengers {
			continue
		}
		out = append(out, models.TripBundle{
			Trip:    t,
			Route:   route,
			Company: s.companies[t.CompanyID],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Trip.DepartureTime < out[j].Trip.DepartureTime
	})
	return out
}

// TripDetail returns the trip with its seat map.
func (s *Store) TripDetail(tripID string) (models.TripDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.trips[tripID]
	if !ok {
		return models.TripDetail{}, domain.NotFoundError{Resource: "trip"}
	}
	seats := make([]models.Seat, len(s.seats[tripID]))
	copy(seats, s.seats[tripID])
	return models.TripDetail{
		Trip:    t,
		Route:   s.routes[t.RouteID],
		Company: s.companies[t.CompanyID],
		Seats:   seats,
	}, nil
}

// BookSeat creates a bus booking, failing with a conflict when the seat was
// taken in the meantime.
func (s *Store) BookSeat(userID string, req models.BusBookingRequest) (models.BusBooking, error) {
	if strings.TrimSpace(req.PassengerName) == "" || strings.TrimSpace(req.PassengerPhone) == "" {
		return models.BusBooking{}, domain.ValidationError{Field: "passenger", Msg: "Passenger name and phone are required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trip, ok := s.trips[req.TripID]
	if !ok {
		return models.BusBooking{}, domain.NotFoundError{Resource: "trip"}
	}

	seats := s.seats[req.TripID]
	idx := -1
	for i, seat := range seats {
		if seat.SeatNumber == req.SeatNumber {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.BusBooking{}, domain.NotFoundError{Resource: "seat"}
	}
	if !seats[idx].IsAvailable {
		return models.BusBooking{}, domain.ConflictError{Resource: "seat", Msg: "Seat is already booked"}
	}

	seats[idx].IsAvailable = false
	trip.AvailableSeats--
	s.trips[req.TripID] = trip

	price := seats[idx].Price
	if price == 0 {
		price = trip.Price
	}

	booking := models.BusBooking{
		ID:             uuid.NewString(),
		UserID:         userID,
		TripID:         req.TripID,
		SeatNumber:     req.SeatNumber,
		PassengerName:  strings.TrimSpace(req.PassengerName),
		PassengerPhone: strings.TrimSpace(req.PassengerPhone),
		Price:          price,
		Status:         models.BusBookingConfirmed,
		BookingDate:    utils.NowUTC().Format(time.RFC3339),
	}
	s.busBookings[booking.ID] = booking
	return booking, nil
}

// UserBusBookings lists a user's bus bookings with trip context, newest
// first.
func (s *Store) UserBusBookings(userID string) []models.BusBookingBundle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.BusBookingBundle{}
	for _, b := range s.busBookings {
		if b.UserID != userID {
			continue
		}
		trip := s.trips[b.TripID]
		out = append(out, models.BusBookingBundle{
			Booking: b,
			Trip:    trip,
			Route:   s.routes[trip.RouteID],
			Company: s.companies[trip.CompanyID],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Booking.BookingDate > out[j].Booking.BookingDate
	})
	return out
}

// CancelBusBooking flips a pending/confirmed booking to canceled and frees
// the seat again.
func (s *Store) CancelBusBooking(userID, bookingID string) (models.BusBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.busBookings[bookingID]
	if !ok || b.UserID != userID {
		return models.BusBooking{}, domain.NotFoundError{Resource: "booking"}
	}
	if b.Status != models.BusBookingPending && b.Status != models.BusBookingConfirmed {
		return models.BusBooking{}, domain.ValidationError{Field: "status", Msg: "Booking cannot be canceled"}
	}

	b.Status = models.BusBookingCanceled
	s.busBookings[bookingID] = b

	seats := s.seats[b.TripID]
	for i, seat := range seats {
		if seat.SeatNumber == b.SeatNumber {
			seats[i].IsAvailable = true
			break
		}
	}
	trip := s.trips[b.TripID]
	trip.AvailableSeats++
	s.trips[b.TripID] = trip

	return b, nil
}

// Hotels lists hotels, optionally narrowed to a city.
func (s *Store) Hotels(city string) []models.Hotel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Hotel{}
	for _, h := range s.hotels {
		if city != "" && h.City != city {
			continue
		}
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Hotel fetches one hotel.
func (s *Store) Hotel(id string) (models.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.hotels[id]
	if !ok {
		return models.Hotel{}, domain.NotFoundError{Resource: "hotel"}
	}
	return h, nil
}

// RoomsByHotel lists a hotel's rooms.
func (s *Store) RoomsByHotel(hotelID string) []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rooms := make([]models.Room, len(s.rooms[hotelID]))
	copy(rooms, s.rooms[hotelID])
	return rooms
}

// BookRoom creates a hotel booking with the total computed server-side from
// the nightly price and the billable nights.
func (s *Store) BookRoom(userID string, req models.HotelBookingRequest) (models.HotelBooking, error) {
	checkIn, err := parseAPIDate(req.CheckInDate)
	if err != nil {
		return models.HotelBooking{}, domain.ValidationError{Field: "check_in_date", Msg: "Invalid date"}
	}
	checkOut, err := parseAPIDate(req.CheckOutDate)
	if err != nil {
		return models.HotelBooking{}, domain.ValidationError{Field: "check_out_date", Msg: "Invalid date"}
	}
	if checkOut.Before(checkIn) {
		return models.HotelBooking{}, domain.ValidationError{Field: "dates", Msg: "Check-out before check-in"}
	}
	guests := req.GuestsCount
	if guests < 1 {
		guests = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.hotels[req.HotelID]; !ok {
		return models.HotelBooking{}, domain.NotFoundError{Resource: "hotel"}
	}
	var room *models.Room
	for i, r := range s.rooms[req.HotelID] {
		if r.ID == req.RoomID {
			room = &s.rooms[req.HotelID][i]
			break
		}
	}
	if room == nil {
		return models.HotelBooking{}, domain.NotFoundError{Resource: "room"}
	}

	total := room.PricePerNight * int64(selection.Nights(checkIn, checkOut))
	booking := models.HotelBooking{
		ID:           uuid.NewString(),
		UserID:       userID,
		HotelID:      req.HotelID,
		RoomID:       req.RoomID,
		CheckInDate:  checkIn.Format(time.RFC3339),
		CheckOutDate: checkOut.Format(time.RFC3339),
		GuestsCount:  guests,
		TotalPrice:   total,
		Status:       models.HotelBookingConfirmed,
		CreatedAt:    utils.NowUTC().Format(time.RFC3339),
	}
	s.hotelBookings[booking.ID] = booking
	return booking, nil
}

// UserHotelBookings lists a user's hotel bookings, newest first.
func (s *Store) UserHotelBookings(userID string) []models.HotelBooking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.HotelBooking{}
	for _, b := range s.hotelBookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out
}

// parseAPIDate accepts both RFC3339 timestamps and bare YYYY-MM-DD dates,
// matching what the browser client sends.
func parseAPIDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return utils.ParseDate(s)
}
