package models

// Bus service classes. The class drives price, feature set and seat count.
const (
	BusStandard = "standard"
	BusPremium  = "premium"
	BusVIP      = "vip"
)

// BusBooking statuses as returned by the backend. Note the single-l
// "canceled" spelling; the hotel vertical uses "cancelled".
const (
	BusBookingPending   = "pending"
	BusBookingConfirmed = "confirmed"
	BusBookingCanceled  = "canceled"
	BusBookingCompleted = "completed"
)

// Trip is one scheduled bus departure. Times are zero-padded HH:MM strings;
// arrival may fall on the next day relative to departure.
type Trip struct {
	ID             string   `json:"id"`
	RouteID        string   `json:"route_id"`
	CompanyID      string   `json:"company_id"`
	DepartureDate  string   `json:"departure_date"`
	DepartureTime  string   `json:"departure_time"`
	ArrivalTime    string   `json:"arrival_time"`
	BusType        string   `json:"bus_type"`
	Price          int64    `json:"price"`
	AvailableSeats int      `json:"available_seats"`
	TotalSeats     int      `json:"total_seats"`
	Features       []string `json:"features"`
}

// Seat carries its own price which may differ from the trip base price.
type Seat struct {
	ID          string `json:"id"`
	TripID      string `json:"trip_id"`
	SeatNumber  int    `json:"seat_number"`
	IsAvailable bool   `json:"is_available"`
	Price       int64  `json:"price"`
}

// Route links two cities from the fixed city set.
type Route struct {
	ID              string `json:"id"`
	OriginCity      string `json:"origin_city"`
	DestinationCity string `json:"destination_city"`
	DistanceKM      int    `json:"distance_km"`
}

type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TripBundle is one search result: a trip with its route and operator.
type TripBundle struct {
	Trip    Trip    `json:"trip"`
	Route   Route   `json:"route"`
	Company Company `json:"company"`
}

// TripDetail is the /bus/trips/{id} payload including the seat map.
type TripDetail struct {
	Trip    Trip    `json:"trip"`
	Route   Route   `json:"route"`
	Company Company `json:"company"`
	Seats   []Seat  `json:"seats"`
}

type BusBooking struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	TripID         string `json:"trip_id"`
	SeatNumber     int    `json:"seat_number"`
	PassengerName  string `json:"passenger_name"`
	PassengerPhone string `json:"passenger_phone"`
	Price          int64  `json:"price"`
	Status         string `json:"status"`
	BookingDate    string `json:"booking_date"`
}

// BusBookingBundle pairs a booking with its trip context for list views.
type BusBookingBundle struct {
	Booking BusBooking `json:"booking"`
	Trip    Trip       `json:"trip"`
	Route   Route      `json:"route"`
	Company Company    `json:"company"`
}

// BusSearchRequest is the POST /api/bus/search body.
type BusSearchRequest struct {
	OriginCity      string `json:"origin_city"`
	DestinationCity string `json:"destination_city"`
	DepartureDate   string `json:"departure_date"`
	PassengersCount int    `json:"passengers_count"`
}

// BusBookingRequest is the POST /api/bus/bookings body.
type BusBookingRequest struct {
	TripID         string `json:"trip_id"`
	PassengerName  string `json:"passenger_name"`
	PassengerPhone string `json:"passenger_phone"`
	SeatNumber     int    `json:"seat_number"`
}

// Cities bookable on the bus vertical.
var Cities = []string{
	"algiers", "oran", "constantine", "annaba", "setif",
	"batna", "blida", "sidi_bel_abbes", "tlemcen", "biskra",
}

// IsCity reports whether code belongs to the fixed city set.
func IsCity(code string) bool {
	for _, c := range Cities {
		if c == code {
			return true
		}
	}
	return false
}
