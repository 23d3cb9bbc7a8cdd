// Package integration provides helpers and integration tests for the booking
// service. Integration tests exercise the real stack end to end: HTTP
// handlers, use cases, the flight generator, and the in-memory store.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/skyroutes/flight-booking-service/internal/adapter/http"
	"github.com/skyroutes/flight-booking-service/internal/adapter/store"
	"github.com/skyroutes/flight-booking-service/internal/domain"
	"github.com/skyroutes/flight-booking-service/internal/generator"
	"github.com/skyroutes/flight-booking-service/internal/infrastructure/timeutil"
	"github.com/skyroutes/flight-booking-service/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo  *echo.Echo
	Store *store.Memory
	Clock *timeutil.MockClock
}

// NewTestServer creates a test server wired with a fixed-seed generator, an
// in-memory store, and a mock clock so results are reproducible.
func NewTestServer(seed int64) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	clock := timeutil.NewMockClock(time.UnixMilli(1735689600123))
	inventory := generator.New(clock, &generator.Config{Seed: seed})
	bookingStore := store.NewMemory()

	searchUC := usecase.NewSearchUseCase(inventory, clock)
	bookingUC := usecase.NewBookingUseCase(bookingStore, clock)

	handler := httpAdapter.NewHandler(searchUC, bookingUC)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:  e,
		Store: bookingStore,
		Clock: clock,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a flight search with the given body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResponse parses the response body as a SearchResponse.
func (r Response) ParseSearchResponse() (*domain.SearchResponse, error) {
	var resp domain.SearchResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseBooking parses the response body as a Booking.
func (r *Response) ParseBooking() (*domain.Booking, error) {
	var booking domain.Booking
	if err := json.Unmarshal(r.Body, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	Passengers    int    `json:"passengers"`
}

// DefaultSearchRequest returns a valid search request body for testing.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:        "DEL",
		Destination:   "GOI",
		DepartureDate: "2025-06-15",
		Passengers:    2,
	}
}
