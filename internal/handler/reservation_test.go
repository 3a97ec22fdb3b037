package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/property-reservation/internal/booking"
	"github.com/iliyamo/property-reservation/internal/model"
	"github.com/iliyamo/property-reservation/internal/queue"
)

var handlerNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func day(n int) time.Time { return handlerNow.AddDate(0, 0, n) }

// fakeStore is an in-memory booking.Store so handler tests run without
// MySQL.
type fakeStore struct {
	clients      map[string]model.Client
	reservations map[string]model.Reservation
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		clients:      map[string]model.Client{},
		reservations: map[string]model.Reservation{},
	}
}

func (s *fakeStore) GetClient(_ context.Context, id string) (model.Client, error) {
	c, ok := s.clients[id]
	if !ok {
		return model.Client{}, booking.ErrClientNotFound
	}
	return c, nil
}

func (s *fakeStore) SaveReservation(_ context.Context, r model.Reservation) error {
	s.reservations[r.ID] = r
	return nil
}

func (s *fakeStore) GetReservation(_ context.Context, id string) (model.Reservation, error) {
	r, ok := s.reservations[id]
	if !ok {
		return model.Reservation{}, booking.ErrReservationNotFound
	}
	return r, nil
}

func (s *fakeStore) ListReservations(_ context.Context) ([]model.Reservation, error) {
	out := make([]model.Reservation, 0, len(s.reservations))
	for _, r := range s.reservations {
		out = append(out, r)
	}
	return out, nil
}

func (s *fakeStore) ListReservationsByClient(ctx context.Context, clientID string) ([]model.Reservation, error) {
	all, _ := s.ListReservations(ctx)
	out := make([]model.Reservation, 0)
	for _, r := range all {
		if r.ClientID == clientID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeStore) ListReservationsByProperty(ctx context.Context, propertyID string) ([]model.Reservation, error) {
	all, _ := s.ListReservations(ctx)
	out := make([]model.Reservation, 0)
	for _, r := range all {
		if r.ForProperty(propertyID) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeStore) UpdateReservation(_ context.Context, r model.Reservation) error {
	if _, ok := s.reservations[r.ID]; !ok {
		return booking.ErrReservationNotFound
	}
	s.reservations[r.ID] = r
	return nil
}

func (s *fakeStore) DeleteReservation(_ context.Context, id string) error {
	if _, ok := s.reservations[id]; !ok {
		return booking.ErrReservationNotFound
	}
	delete(s.reservations, id)
	return nil
}

func newTestHandler(t *testing.T) (*ReservationHandler, *fakeStore, *[]queue.ReservationStatusEvent) {
	t.Helper()
	store := newFakeStore()
	store.clients["client-1"] = model.Client{ID: "client-1", Name: "Dana Cohen", Email: "dana@example.com"}

	seq := 0
	svc := booking.NewService(store,
		func() time.Time { return handlerNow },
		func() string { seq++; return fmt.Sprintf("res-%d", seq) })

	events := &[]queue.ReservationStatusEvent{}
	h := NewReservationHandler(svc, nil, nil,
		func(_ context.Context, ev queue.ReservationStatusEvent) error {
			*events = append(*events, ev)
			return nil
		})
	return h, store, events
}

func doJSON(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateReservation(t *testing.T) {
	h, store, _ := newTestHandler(t)
	e := echo.New()

	body := fmt.Sprintf(`{"client_id":"client-1","date":%q,"end_date":%q,"number_of_guests":2}`,
		day(2).Format(time.RFC3339), day(5).Format(time.RFC3339))
	c, rec := doJSON(e, http.MethodPost, "/v1/reservations", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	var got model.Reservation
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got.Status != model.StatusPending {
		t.Fatalf("status = %q, want %q", got.Status, model.StatusPending)
	}
	if _, ok := store.reservations[got.ID]; !ok {
		t.Fatalf("reservation %q not persisted", got.ID)
	}
}

func TestCreateReservationUnknownClient(t *testing.T) {
	h, store, _ := newTestHandler(t)
	e := echo.New()

	body := fmt.Sprintf(`{"client_id":"nobody","date":%q,"end_date":%q,"number_of_guests":2}`,
		day(2).Format(time.RFC3339), day(5).Format(time.RFC3339))
	c, rec := doJSON(e, http.MethodPost, "/v1/reservations", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if len(store.reservations) != 0 {
		t.Fatalf("reservation persisted for unknown client")
	}
}

func TestCreateReservationPastDate(t *testing.T) {
	h, store, _ := newTestHandler(t)
	e := echo.New()

	body := fmt.Sprintf(`{"client_id":"client-1","date":%q,"end_date":%q,"number_of_guests":2}`,
		day(-3).Format(time.RFC3339), day(2).Format(time.RFC3339))
	c, rec := doJSON(e, http.MethodPost, "/v1/reservations", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if len(store.reservations) != 0 {
		t.Fatalf("invalid reservation persisted")
	}
}

func TestConfirmPublishesEvent(t *testing.T) {
	h, store, events := newTestHandler(t)
	e := echo.New()

	store.reservations["res-9"] = model.Reservation{
		ID:        "res-9",
		ClientID:  "client-1",
		StartDate: day(-10),
		EndDate:   day(-7),
		Guests:    2,
		Status:    model.StatusPending,
		UpdatedAt: day(-10),
	}

	c, rec := doJSON(e, http.MethodPost, "/v1/reservations/res-9/confirm", "")
	c.SetParamNames("id")
	c.SetParamValues("res-9")

	if err := h.Confirm(c); err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if got := store.reservations["res-9"].Status; got != model.StatusConfirmed {
		t.Fatalf("stored status = %q, want %q", got, model.StatusConfirmed)
	}
	if len(*events) != 1 {
		t.Fatalf("published %d events, want 1", len(*events))
	}
	ev := (*events)[0]
	if ev.ReservationID != "res-9" || ev.Status != model.StatusConfirmed {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestCancelPublishesEvent(t *testing.T) {
	h, store, events := newTestHandler(t)
	e := echo.New()

	store.reservations["res-4"] = model.Reservation{
		ID:        "res-4",
		ClientID:  "client-1",
		StartDate: day(3),
		EndDate:   day(6),
		Guests:    4,
		Status:    model.StatusConfirmed,
		UpdatedAt: day(-1),
	}

	c, rec := doJSON(e, http.MethodPost, "/v1/reservations/res-4/cancel", "")
	c.SetParamNames("id")
	c.SetParamValues("res-4")

	if err := h.Cancel(c); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := store.reservations["res-4"].Status; got != model.StatusCancelled {
		t.Fatalf("stored status = %q, want %q", got, model.StatusCancelled)
	}
	if len(*events) != 1 || (*events)[0].Status != model.StatusCancelled {
		t.Fatalf("unexpected events %+v", *events)
	}
}

func TestDeleteReservation(t *testing.T) {
	h, store, _ := newTestHandler(t)
	e := echo.New()

	store.reservations["res-7"] = model.Reservation{ID: "res-7", ClientID: "client-1"}

	c, rec := doJSON(e, http.MethodDelete, "/v1/reservations/res-7", "")
	c.SetParamNames("id")
	c.SetParamValues("res-7")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}

	c, rec = doJSON(e, http.MethodDelete, "/v1/reservations/res-7", "")
	c.SetParamNames("id")
	c.SetParamValues("res-7")
	if err := h.Delete(c); err != nil {
		t.Fatalf("second Delete returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestUpdateStatusOnlyOnLapsedDates(t *testing.T) {
	h, store, _ := newTestHandler(t)
	e := echo.New()

	store.reservations["res-2"] = model.Reservation{
		ID:        "res-2",
		ClientID:  "client-1",
		StartDate: day(-20),
		EndDate:   day(-17),
		Guests:    2,
		Status:    model.StatusPending,
		UpdatedAt: day(-20),
	}

	c, rec := doJSON(e, http.MethodPatch, "/v1/reservations/res-2", `{"status":"cancelled"}`)
	c.SetParamNames("id")
	c.SetParamValues("res-2")
	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if got := store.reservations["res-2"].Status; got != model.StatusCancelled {
		t.Fatalf("stored status = %q, want %q", got, model.StatusCancelled)
	}
}
