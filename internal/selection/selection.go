// Package selection tracks the single bookable unit (seat or room) chosen
// in an active booking session. The state is a plain value owned by the page
// session that created it; it carries no rendering concerns.
package selection

import (
	"math"
	"time"

	"dzbooking/internal/models"
)

// SeatSelection holds at most one selected seat.
type SeatSelection struct {
	seat *models.Seat
}

// Select replaces any prior selection with seat. Selecting a seat flagged
// unavailable is a no-op: the seat map may be stale against a concurrent
// booking, and the stale unit must not enter the session. Returns whether
// the selection changed.
func (s *SeatSelection) Select(seat models.Seat) bool {
	if !seat.IsAvailable {
		return false
	}
	s.seat = &seat
	return true
}

// Clear drops the selection, e.g. after navigating away.
func (s *SeatSelection) Clear() {
	s.seat = nil
}

// Current returns the selected seat, if any.
func (s *SeatSelection) Current() (models.Seat, bool) {
	if s.seat == nil {
		return models.Seat{}, false
	}
	return *s.seat, true
}

// Price returns the selected seat's own price when it carries one, else the
// trip base price. With no selection it returns basePrice.
func (s *SeatSelection) Price(basePrice int64) int64 {
	if s.seat == nil || s.seat.Price == 0 {
		return basePrice
	}
	return s.seat.Price
}

// RoomSelection holds at most one selected room.
type RoomSelection struct {
	room *models.Room
}

// Select replaces any prior selection with room.
func (s *RoomSelection) Select(room models.Room) {
	s.room = &room
}

func (s *RoomSelection) Clear() {
	s.room = nil
}

func (s *RoomSelection) Current() (models.Room, bool) {
	if s.room == nil {
		return models.Room{}, false
	}
	return *s.room, true
}

// Nights counts billable nights between check-in and check-out, with a floor
// of one night even when checkout equals checkin. A partial day rounds up.
func Nights(checkIn, checkOut time.Time) int {
	days := math.Ceil(checkOut.Sub(checkIn).Hours() / 24)
	if days < 1 {
		return 1
	}
	return int(days)
}

// StayTotal computes the stay price for the selected room: nightly price
// times billable nights. Returns 0 with no selection.
func (s *RoomSelection) StayTotal(checkIn, checkOut time.Time) int64 {
	if s.room == nil {
		return 0
	}
	return s.room.PricePerNight * int64(Nights(checkIn, checkOut))
}
