package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"salonbook/models"
	"salonbook/services/booking"
	"salonbook/utils"

	"github.com/gin-gonic/gin"
)

// stubBookingService returns canned results so the handler tests only cover
// binding and the error-code to status mapping.
type stubBookingService struct {
	slots   []models.AvailableSlot
	booking *models.Booking
	err     error
}

func (s *stubBookingService) GetAvailableSlots(context.Context, string, string, string) ([]models.AvailableSlot, error) {
	return s.slots, s.err
}

func (s *stubBookingService) CreateBooking(context.Context, models.CreateBookingRequest, string) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) GetBooking(context.Context, string) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) ListCustomerBookings(context.Context, string) ([]models.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []models.Booking{}, nil
}

func (s *stubBookingService) UpdateBookingStatus(context.Context, string, string) (*models.Booking, error) {
	return s.booking, s.err
}

func (s *stubBookingService) CancelBooking(context.Context, string, bool) (*models.Booking, error) {
	return s.booking, s.err
}

func newTestRouter(stub *stubBookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(stub, utils.GetLogger())
	r := gin.New()
	r.GET("/api/booking/slots", h.GetAvailableSlots)
	r.POST("/api/booking", h.CreateBooking)
	r.GET("/api/booking/:id", h.GetBooking)
	r.PATCH("/api/booking/:id/status", h.UpdateBookingStatus)
	r.DELETE("/api/booking/:id", h.CancelBooking)
	return r
}

func TestGetAvailableSlotsHandler(t *testing.T) {
	stub := &stubBookingService{slots: []models.AvailableSlot{
		{StartTime: "09:00", EndTime: "10:00"},
		{StartTime: "11:00", EndTime: "12:00"},
	}}
	r := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/booking/slots?staffMemberId=stf-1&serviceId=svc-cut&date=2026-03-02", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	var body struct {
		Slots []models.AvailableSlot `json:"slots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(body.Slots) != 2 || body.Slots[0].StartTime != "09:00" {
		t.Errorf("unexpected slots payload: %+v", body.Slots)
	}
}

func TestGetAvailableSlotsHandlerMissingParams(t *testing.T) {
	r := newTestRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking/slots?staffMemberId=stf-1", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestBookingErrorStatusMapping(t *testing.T) {
	cases := []struct {
		code string
		want int
	}{
		{booking.CodeInvalidArgument, http.StatusBadRequest},
		{booking.CodeNotFound, http.StatusNotFound},
		{booking.CodeSlotConflict, http.StatusConflict},
		{booking.CodePolicyViolation, http.StatusUnprocessableEntity},
		{"", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		stub := &stubBookingService{err: &booking.Error{Code: tc.code, Message: "boom"}}
		if tc.code == "" {
			stub.err = context.DeadlineExceeded
		}
		r := newTestRouter(stub)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/booking/b-1", nil)
		r.ServeHTTP(w, req)

		if w.Code != tc.want {
			t.Errorf("code %q: status = %d, want %d", tc.code, w.Code, tc.want)
		}
	}
}

func TestCreateBookingHandler(t *testing.T) {
	stub := &stubBookingService{booking: &models.Booking{
		ID: "b-1", ServiceID: "svc-cut", StaffMemberID: "stf-1", CustomerID: "cus-1",
		Date: "2026-03-02", Start: 600, End: 660, Status: models.StatusPending, TotalPrice: 45,
	}}
	r := newTestRouter(stub)

	payload := `{"serviceId":"svc-cut","staffMemberId":"stf-1","customerId":"cus-1","appointmentDate":"2026-03-02","startTime":"10:00"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", w.Code, w.Body.String())
	}
	var resp models.BookingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.StartTime != "10:00" || resp.EndTime != "11:00" {
		t.Errorf("times rendered as %s-%s, want 10:00-11:00", resp.StartTime, resp.EndTime)
	}
}

func TestCreateBookingHandlerRejectsIncompleteBody(t *testing.T) {
	r := newTestRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking", strings.NewReader(`{"serviceId":"svc-cut"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUpdateBookingStatusHandler(t *testing.T) {
	stub := &stubBookingService{booking: &models.Booking{
		ID: "b-1", Date: "2026-03-02", Start: 600, End: 660, Status: models.StatusConfirmed,
	}}
	r := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/booking/b-1/status", strings.NewReader(`{"status":"confirmed"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	// Missing status field fails binding.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, "/api/booking/b-1/status", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
