package models

// Hotel booking statuses. The hotel vertical spells "cancelled" with a
// double l, unlike bus bookings.
const (
	HotelBookingPending   = "pending"
	HotelBookingConfirmed = "confirmed"
	HotelBookingCancelled = "cancelled"
)

type Hotel struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	City         string   `json:"city"`
	Address      string   `json:"address"`
	Stars        int      `json:"stars"`
	Rating       float64  `json:"rating"`
	ReviewsCount int      `json:"reviews_count"`
	Amenities    []string `json:"amenities"`
	Images       []string `json:"images"`
	Description  string   `json:"description"`
}

type Room struct {
	ID            string   `json:"id"`
	HotelID       string   `json:"hotel_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PricePerNight int64    `json:"price_per_night"`
	Capacity      int      `json:"capacity"`
	Images        []string `json:"images"`
}

type HotelBooking struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	HotelID      string `json:"hotel_id"`
	RoomID       string `json:"room_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	GuestsCount  int    `json:"guests_count"`
	TotalPrice   int64  `json:"total_price"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

// HotelSearchRequest is the POST /api/search/hotels body.
type HotelSearchRequest struct {
	City         string `json:"city"`
	CheckInDate  string `json:"check_in_date,omitempty"`
	CheckOutDate string `json:"check_out_date,omitempty"`
	GuestsCount  int    `json:"guests_count,omitempty"`
}

// HotelBookingRequest is the POST /api/bookings body.
type HotelBookingRequest struct {
	HotelID      string `json:"hotel_id"`
	RoomID       string `json:"room_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	GuestsCount  int    `json:"guests_count"`
}
