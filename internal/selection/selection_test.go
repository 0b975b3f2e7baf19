package selection

import (
	"testing"
	"time"

	"dzbooking/internal/models"
)

func TestUnavailableSeatIsNoOp(t *testing.T) {
	var sel SeatSelection

	taken := models.Seat{ID: "s1", SeatNumber: 7, IsAvailable: false, Price: 1500}
	if sel.Select(taken) {
		t.Fatalf("selecting an unavailable seat must not change state")
	}
	if _, ok := sel.Current(); ok {
		t.Fatalf("selection should still be empty")
	}

	free := models.Seat{ID: "s2", SeatNumber: 8, IsAvailable: true, Price: 1500}
	if !sel.Select(free) {
		t.Fatalf("selecting an available seat failed")
	}
	if sel.Select(taken) {
		t.Fatalf("unavailable seat replaced an existing selection")
	}
	got, ok := sel.Current()
	if !ok || got.SeatNumber != 8 {
		t.Fatalf("selection changed, got %+v", got)
	}
}

func TestSelectReplacesPriorSeat(t *testing.T) {
	var sel SeatSelection
	sel.Select(models.Seat{ID: "s1", SeatNumber: 3, IsAvailable: true})
	sel.Select(models.Seat{ID: "s2", SeatNumber: 4, IsAvailable: true})

	got, ok := sel.Current()
	if !ok || got.SeatNumber != 4 {
		t.Fatalf("second selection did not replace first, got %+v", got)
	}
}

func TestClear(t *testing.T) {
	var sel SeatSelection
	sel.Select(models.Seat{ID: "s1", SeatNumber: 1, IsAvailable: true})
	sel.Clear()
	if _, ok := sel.Current(); ok {
		t.Fatalf("Clear left a selection behind")
	}
}

func TestSeatPriceOverridesBase(t *testing.T) {
	var sel SeatSelection
	if got := sel.Price(2000); got != 2000 {
		t.Fatalf("no selection should fall back to base price, got %d", got)
	}

	sel.Select(models.Seat{ID: "s1", SeatNumber: 1, IsAvailable: true, Price: 2500})
	if got := sel.Price(2000); got != 2500 {
		t.Fatalf("seat price not used, got %d", got)
	}

	sel.Select(models.Seat{ID: "s2", SeatNumber: 2, IsAvailable: true, Price: 0})
	if got := sel.Price(2000); got != 2000 {
		t.Fatalf("zero seat price should fall back to base, got %d", got)
	}
}

func TestNightsFloorOfOne(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := Nights(day, day); got != 1 {
		t.Fatalf("same-day stay = %d nights, want 1", got)
	}
	if got := Nights(day, day.AddDate(0, 0, 2)); got != 2 {
		t.Fatalf("two-day span = %d nights, want 2", got)
	}
	// Inverted range is a validation error upstream; the floor still holds.
	if got := Nights(day.AddDate(0, 0, 1), day); got != 1 {
		t.Fatalf("inverted range = %d nights, want 1", got)
	}
}

func TestStayTotal(t *testing.T) {
	var sel RoomSelection
	checkIn := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if got := sel.StayTotal(checkIn, checkIn.AddDate(0, 0, 2)); got != 0 {
		t.Fatalf("no selection should total 0, got %d", got)
	}

	sel.Select(models.Room{ID: "r1", PricePerNight: 9000})
	if got := sel.StayTotal(checkIn, checkIn); got != 9000 {
		t.Fatalf("same-day total = %d, want one night (9000)", got)
	}
	if got := sel.StayTotal(checkIn, checkIn.AddDate(0, 0, 2)); got != 18000 {
		t.Fatalf("two-night total = %d, want 18000", got)
	}
}
