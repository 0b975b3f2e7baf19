// Package api is the REST gateway client for the booking backend. It owns
// request timeouts and wire-error mapping; callers own cancellation via
// context (navigating away cancels the context so a late response is never
// applied to a dead view).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"dzbooking/internal/domain"
	"dzbooking/internal/models"
)

// seatTakenDetail is the backend's conflict detail for a concurrently
// booked seat. It arrives with status 400, not 409.
const seatTakenDetail = "Seat is already booked"

const defaultTimeout = 30 * time.Second

// Client issues REST calls with bearer-token auth on user-scoped routes.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	// TokenFunc supplies the current session token; empty means anonymous.
	TokenFunc func() string

	log *logrus.Logger
}

// New builds a client for baseURL (scheme://host, no trailing /api).
func New(baseURL string, tokenFunc func() string) *Client {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: defaultTimeout},
		TokenFunc:  tokenFunc,
		log:        logger,
	}
}

// SetLogger swaps the request logger, mainly to raise verbosity in dev.
func (c *Client) SetLogger(l *logrus.Logger) {
	if l != nil {
		c.log = l
	}
}

// apiError is the backend error envelope ({"detail": "..."}).
type apiError struct {
	Detail string `json:"detail"`
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, authed bool, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return domain.InternalError{Msg: "build request", Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authed {
		token := ""
		if c.TokenFunc != nil {
			token = c.TokenFunc()
		}
		if token == "" {
			return domain.AuthRequiredError{}
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return domain.InternalError{Msg: "request failed", Err: err}
	}
	defer resp.Body.Close()

	c.log.WithFields(logrus.Fields{
		"method":  method,
		"path":    path,
		"status":  resp.StatusCode,
		"latency": time.Since(start).String(),
	}).Debug("api call")

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.InternalError{Msg: "read response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.mapError(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return domain.InternalError{Msg: "decode response", Err: err}
	}
	return nil
}

func (c *Client) mapError(status int, raw []byte) error {
	var e apiError
	_ = json.Unmarshal(raw, &e)
	detail := strings.TrimSpace(e.Detail)

	switch {
	case status == http.StatusBadRequest && detail == seatTakenDetail:
		return domain.ConflictError{Resource: "seat", Msg: detail}
	case status == http.StatusUnauthorized:
		return domain.AuthRequiredError{}
	case status == http.StatusNotFound:
		return domain.NotFoundError{Resource: detail}
	case status == http.StatusBadRequest:
		return domain.ValidationError{Msg: detail}
	default:
		return domain.InternalError{Msg: fmt.Sprintf("backend error (%d): %s", status, detail)}
	}
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any, authed bool) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return domain.InternalError{Msg: "encode request", Err: err}
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(raw), "application/json", authed, out)
}

// SearchTrips runs a bus search and returns trip bundles.
func (c *Client) SearchTrips(ctx context.Context, req models.BusSearchRequest) ([]models.TripBundle, error) {
	var out []models.TripBundle
	if err := c.postJSON(ctx, "/api/bus/search", req, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

// TripDetail fetches a trip with its seat map.
func (c *Client) TripDetail(ctx context.Context, tripID string) (models.TripDetail, error) {
	var out models.TripDetail
	err := c.do(ctx, http.MethodGet, "/api/bus/trips/"+url.PathEscape(tripID), nil, "", false, &out)
	return out, err
}

// CreateBusBooking books one seat. A concurrently booked seat surfaces as a
// domain.ConflictError.
func (c *Client) CreateBusBooking(ctx context.Context, req models.BusBookingRequest) (models.BusBooking, error) {
	var out models.BusBooking
	err := c.postJSON(ctx, "/api/bus/bookings", req, &out, true)
	return out, err
}

// MyBusBookings lists the session user's bus bookings.
func (c *Client) MyBusBookings(ctx context.Context) ([]models.BusBookingBundle, error) {
	var out []models.BusBookingBundle
	err := c.do(ctx, http.MethodGet, "/api/bus/bookings/me", nil, "", true, &out)
	return out, err
}

// CancelBusBooking cancels a bus booking; the backend confirms the status
// transition.
func (c *Client) CancelBusBooking(ctx context.Context, bookingID string) (models.BusBooking, error) {
	var out models.BusBooking
	err := c.do(ctx, http.MethodPut, "/api/bus/bookings/"+url.PathEscape(bookingID)+"/cancel", nil, "", true, &out)
	return out, err
}

// Hotels lists hotels, optionally narrowed by city.
func (c *Client) Hotels(ctx context.Context, city string) ([]models.Hotel, error) {
	path := "/api/hotels"
	if city != "" {
		path += "?city=" + url.QueryEscape(city)
	}
	var out []models.Hotel
	err := c.do(ctx, http.MethodGet, path, nil, "", false, &out)
	return out, err
}

// Hotel fetches one hotel.
func (c *Client) Hotel(ctx context.Context, hotelID string) (models.Hotel, error) {
	var out models.Hotel
	err := c.do(ctx, http.MethodGet, "/api/hotels/"+url.PathEscape(hotelID), nil, "", false, &out)
	return out, err
}

// HotelRooms lists the rooms of a hotel.
func (c *Client) HotelRooms(ctx context.Context, hotelID string) ([]models.Room, error) {
	var out []models.Room
	err := c.do(ctx, http.MethodGet, "/api/rooms/hotel/"+url.PathEscape(hotelID), nil, "", false, &out)
	return out, err
}

// SearchHotels runs the hotel search endpoint.
func (c *Client) SearchHotels(ctx context.Context, req models.HotelSearchRequest) ([]models.Hotel, error) {
	var out []models.Hotel
	err := c.postJSON(ctx, "/api/search/hotels", req, &out, false)
	return out, err
}

// CreateHotelBooking books a room for a date range.
func (c *Client) CreateHotelBooking(ctx context.Context, req models.HotelBookingRequest) (models.HotelBooking, error) {
	var out models.HotelBooking
	err := c.postJSON(ctx, "/api/bookings", req, &out, true)
	return out, err
}

// MyBookings lists the session user's hotel bookings.
func (c *Client) MyBookings(ctx context.Context) ([]models.HotelBooking, error) {
	var out []models.HotelBooking
	err := c.do(ctx, http.MethodGet, "/api/bookings/me", nil, "", true, &out)
	return out, err
}

// Login authenticates with the OAuth2 password flow (form-encoded
// username/password) and returns the token envelope.
func (c *Client) Login(ctx context.Context, email, password string) (models.Token, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var out models.Token
	err := c.do(ctx, http.MethodPost, "/api/auth/login",
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", false, &out)
	return out, err
}

// Register creates an account and returns a ready session token.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (models.Token, error) {
	var out models.Token
	err := c.postJSON(ctx, "/api/auth/register", req, &out, false)
	return out, err
}
