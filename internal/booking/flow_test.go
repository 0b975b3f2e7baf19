package booking

import (
	"context"
	"testing"
	"time"

	"dzbooking/internal/domain"
	"dzbooking/internal/models"
	"dzbooking/internal/selection"
)

type fakeSession bool

func (s fakeSession) Authenticated() bool { return bool(s) }

type fakeBusAPI struct {
	createCalls int
	detailCalls int
	createErr   error
	created     models.BusBooking
	detail      models.TripDetail
	started     chan struct{} // closed once Create is entered
	block       chan struct{} // when set, Create waits until closed
}

func (f *fakeBusAPI) CreateBusBooking(ctx context.Context, req models.BusBookingRequest) (models.BusBooking, error) {
	f.createCalls++
	if f.started != nil {
		close(f.started)
		f.started = nil
	}
	if f.block != nil {
		<-f.block
	}
	if f.createErr != nil {
		return models.BusBooking{}, f.createErr
	}
	return f.created, nil
}

func (f *fakeBusAPI) TripDetail(ctx context.Context, tripID string) (models.TripDetail, error) {
	f.detailCalls++
	return f.detail, nil
}

func selectedSeat(n int) *selection.SeatSelection {
	var sel selection.SeatSelection
	sel.Select(models.Seat{ID: "s", SeatNumber: n, IsAvailable: true})
	return &sel
}

func TestNoSelectionNeverCallsNetwork(t *testing.T) {
	api := &fakeBusAPI{}
	flow := &BusFlow{API: api, Session: fakeSession(true)}

	var empty selection.SeatSelection
	res := flow.Submit(context.Background(), models.Trip{ID: "t1"}, &empty, "Amine", "0550")
	if res.Outcome != OutcomeInvalid {
		t.Fatalf("outcome = %s, want invalid", res.Outcome)
	}
	if res.MessageKey != "bus.chooseSeat" {
		t.Fatalf("message key = %s", res.MessageKey)
	}
	if api.createCalls != 0 {
		t.Fatalf("network called %d times with no selection", api.createCalls)
	}
}

func TestUnauthenticatedYieldsLoginRedirect(t *testing.T) {
	api := &fakeBusAPI{}
	flow := &BusFlow{API: api, Session: fakeSession(false)}

	res := flow.Submit(context.Background(), models.Trip{ID: "t1"}, selectedSeat(4), "Amine", "0550")
	if res.Outcome != OutcomeLoginRedirect {
		t.Fatalf("outcome = %s, want login_redirect", res.Outcome)
	}
	if api.createCalls != 0 {
		t.Fatalf("unauthenticated submission issued %d network calls", api.createCalls)
	}
}

func TestMissingPassengerDataBlocksLocally(t *testing.T) {
	api := &fakeBusAPI{}
	flow := &BusFlow{API: api, Session: fakeSession(true)}

	res := flow.Submit(context.Background(), models.Trip{ID: "t1"}, selectedSeat(4), "", "0550")
	if res.Outcome != OutcomeInvalid || !domain.IsValidation(res.Err) {
		t.Fatalf("outcome = %s err = %v, want local validation", res.Outcome, res.Err)
	}
	if api.createCalls != 0 {
		t.Fatalf("invalid form issued %d network calls", api.createCalls)
	}
}

func TestSuccessfulSubmissionMakesExactlyOneCall(t *testing.T) {
	api := &fakeBusAPI{created: models.BusBooking{ID: "b1", Status: models.BusBookingConfirmed}}
	flow := &BusFlow{API: api, Session: fakeSession(true)}

	res := flow.Submit(context.Background(), models.Trip{ID: "t1"}, selectedSeat(4), "Amine", "0550")
	if res.Outcome != OutcomeConfirmed {
		t.Fatalf("outcome = %s err = %v", res.Outcome, res.Err)
	}
	if res.Booking.ID != "b1" {
		t.Fatalf("booking = %+v", res.Booking)
	}
	if api.createCalls != 1 {
		t.Fatalf("create called %d times, want exactly 1", api.createCalls)
	}
}

func TestSeatConflictRefreshesAvailability(t *testing.T) {
	api := &fakeBusAPI{
		createErr: domain.ConflictError{Resource: "seat", Msg: "Seat is already booked"},
		detail: models.TripDetail{Seats: []models.Seat{
			{SeatNumber: 4, IsAvailable: false},
			{SeatNumber: 5, IsAvailable: true},
		}},
	}
	flow := &BusFlow{API: api, Session: fakeSession(true)}

	res := flow.Submit(context.Background(), models.Trip{ID: "t1"}, selectedSeat(4), "Amine", "0550")
	if res.Outcome != OutcomeSeatTaken {
		t.Fatalf("outcome = %s, want seat_taken", res.Outcome)
	}
	if res.MessageKey != "bus.seatTaken" {
		t.Fatalf("message key = %s", res.MessageKey)
	}
	if api.detailCalls != 1 {
		t.Fatalf("availability refreshed %d times, want 1", api.detailCalls)
	}
	if len(res.Seats) != 2 || res.Seats[0].IsAvailable {
		t.Fatalf("stale seat snapshot: %+v", res.Seats)
	}
	if api.createCalls != 1 {
		t.Fatalf("conflict must not retry, create called %d times", api.createCalls)
	}
}

func TestNetworkFailureIsTerminalNotRetried(t *testing.T) {
	api := &fakeBusAPI{createErr: domain.InternalError{Msg: "request failed"}}
	flow := &BusFlow{API: api, Session: fakeSession(true)}

	res := flow.Submit(context.Background(), models.Trip{ID: "t1"}, selectedSeat(4), "Amine", "0550")
	if res.Outcome != OutcomeFailed {
		t.Fatalf("outcome = %s, want failed", res.Outcome)
	}
	if api.createCalls != 1 {
		t.Fatalf("failed submission retried: %d calls", api.createCalls)
	}
}

func TestSecondSubmitWhileInFlightIsRejected(t *testing.T) {
	api := &fakeBusAPI{started: make(chan struct{}), block: make(chan struct{})}
	started := api.started
	flow := &BusFlow{API: api, Session: fakeSession(true)}

	first := make(chan BusResult, 1)
	go func() {
		first <- flow.Submit(context.Background(), models.Trip{ID: "t1"}, selectedSeat(4), "Amine", "0550")
	}()

	// Wait until the first submission reached the API.
	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatalf("first submission never reached the API")
	}

	res := flow.Submit(context.Background(), models.Trip{ID: "t1"}, selectedSeat(4), "Amine", "0550")
	if res.Outcome != OutcomeBusy {
		t.Fatalf("duplicate submit outcome = %s, want busy", res.Outcome)
	}

	close(api.block)
	if r := <-first; r.Outcome != OutcomeConfirmed {
		t.Fatalf("first submission outcome = %s err = %v", r.Outcome, r.Err)
	}
	if api.createCalls != 1 {
		t.Fatalf("double submission reached the API: %d calls", api.createCalls)
	}
}

type fakeHotelAPI struct {
	calls   int
	lastReq models.HotelBookingRequest
	err     error
}

func (f *fakeHotelAPI) CreateHotelBooking(ctx context.Context, req models.HotelBookingRequest) (models.HotelBooking, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return models.HotelBooking{}, f.err
	}
	return models.HotelBooking{ID: "hb1", Status: models.HotelBookingConfirmed}, nil
}

func TestHotelInvertedDatesBlockLocally(t *testing.T) {
	api := &fakeHotelAPI{}
	flow := &HotelFlow{API: api, Session: fakeSession(true)}

	var sel selection.RoomSelection
	sel.Select(models.Room{ID: "r1", PricePerNight: 9000})

	in := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	out := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	res := flow.Submit(context.Background(), "h1", &sel, in, out, 2)
	if res.Outcome != OutcomeInvalid || !domain.IsValidation(res.Err) {
		t.Fatalf("outcome = %s err = %v, want local validation", res.Outcome, res.Err)
	}
	if api.calls != 0 {
		t.Fatalf("inverted range issued %d network calls", api.calls)
	}
}

func TestHotelSameDayStayIsAccepted(t *testing.T) {
	api := &fakeHotelAPI{}
	flow := &HotelFlow{API: api, Session: fakeSession(true)}

	var sel selection.RoomSelection
	sel.Select(models.Room{ID: "r1", PricePerNight: 9000})

	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	res := flow.Submit(context.Background(), "h1", &sel, day, day, 2)
	if res.Outcome != OutcomeConfirmed {
		t.Fatalf("outcome = %s err = %v", res.Outcome, res.Err)
	}
	if api.lastReq.RoomID != "r1" || api.lastReq.GuestsCount != 2 {
		t.Fatalf("unexpected request: %+v", api.lastReq)
	}
}

func TestHotelNoRoomSelectedNeverCallsNetwork(t *testing.T) {
	api := &fakeHotelAPI{}
	flow := &HotelFlow{API: api, Session: fakeSession(true)}

	var sel selection.RoomSelection
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	res := flow.Submit(context.Background(), "h1", &sel, day, day.AddDate(0, 0, 1), 1)
	if res.Outcome != OutcomeInvalid {
		t.Fatalf("outcome = %s, want invalid", res.Outcome)
	}
	if api.calls != 0 {
		t.Fatalf("no selection issued %d network calls", api.calls)
	}
}
