package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/property-reservation/internal/booking"
	"github.com/iliyamo/property-reservation/internal/model"
	"github.com/iliyamo/property-reservation/internal/queue"
	"github.com/iliyamo/property-reservation/internal/repository"
)

// ReservationHandler exposes the reservation lifecycle over HTTP.  The
// booking service owns validation and persistence; the handler maps its
// error vocabulary to status codes and emits queue events on status
// transitions.  Publish is injectable so tests run without a broker.
type ReservationHandler struct {
	Service    *booking.Service
	Clients    *repository.ClientRepo
	Properties *repository.PropertyRepo
	Publish    func(ctx context.Context, ev queue.ReservationStatusEvent) error
}

func NewReservationHandler(svc *booking.Service, clients *repository.ClientRepo, properties *repository.PropertyRepo,
	publish func(ctx context.Context, ev queue.ReservationStatusEvent) error) *ReservationHandler {
	if svc == nil {
		panic("nil service passed to NewReservationHandler")
	}
	return &ReservationHandler{Service: svc, Clients: clients, Properties: properties, Publish: publish}
}

// reservationError maps booking sentinels to an HTTP response.
func reservationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, booking.ErrClientNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "client not found"})
	case errors.Is(err, booking.ErrReservationNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	case errors.Is(err, booking.ErrPastDate),
		errors.Is(err, booking.ErrInvalidRange),
		errors.Is(err, booking.ErrInvalidGuestCount):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
}

// Create books a new pending reservation.
func (h *ReservationHandler) Create(c echo.Context) error {
	var req booking.CreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ClientID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "client_id required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	r, err := h.Service.Create(ctx, req)
	if err != nil {
		return reservationError(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

// GetByID returns one reservation.
func (h *ReservationHandler) GetByID(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	r, err := h.Service.Get(ctx, c.Param("id"))
	if err != nil {
		return reservationError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

// List returns reservations, optionally filtered by client_id or
// property_id query parameters.
func (h *ReservationHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	var (
		items []model.Reservation
		err   error
	)
	switch {
	case c.QueryParam("client_id") != "":
		items, err = h.Service.ListByClient(ctx, c.QueryParam("client_id"))
	case c.QueryParam("property_id") != "":
		items, err = h.Service.ListByProperty(ctx, c.QueryParam("property_id"))
	default:
		items, err = h.Service.List(ctx)
	}
	if err != nil {
		return reservationError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Update applies a partial update.  A status-only body never re-validates
// dates, so lapsed reservations can still change state.
func (h *ReservationHandler) Update(c echo.Context) error {
	var patch booking.Patch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	r, err := h.Service.Update(ctx, c.Param("id"), patch)
	if err != nil {
		return reservationError(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

// Delete removes a reservation permanently.
func (h *ReservationHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Service.Delete(ctx, c.Param("id")); err != nil {
		return reservationError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Confirm moves a reservation to confirmed and publishes a status event.
func (h *ReservationHandler) Confirm(c echo.Context) error {
	return h.transition(c, h.Service.Confirm)
}

// Cancel moves a reservation to cancelled and publishes a status event.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	return h.transition(c, h.Service.Cancel)
}

func (h *ReservationHandler) transition(c echo.Context, op func(context.Context, string) (model.Reservation, error)) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	r, err := op(ctx, c.Param("id"))
	if err != nil {
		return reservationError(c, err)
	}
	h.publishStatus(ctx, r)
	return c.JSON(http.StatusOK, r)
}

// publishStatus emits a ReservationStatusEvent.  Publishing is best
// effort: broker failures never fail the request.
func (h *ReservationHandler) publishStatus(ctx context.Context, r model.Reservation) {
	if h.Publish == nil {
		return
	}
	ev := queue.ReservationStatusEvent{
		ReservationID: r.ID,
		ClientID:      r.ClientID,
		PropertyID:    r.PropertyID,
		Status:        r.Status,
		StartDate:     r.StartDate.UTC().Format(time.RFC3339),
		EndDate:       r.EndDate.UTC().Format(time.RFC3339),
		Guests:        r.Guests,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if h.Clients != nil {
		if client, err := h.Clients.GetByID(ctx, r.ClientID); err == nil {
			ev.ClientName = client.Name
		}
	}
	if h.Properties != nil && r.PropertyID != nil {
		if p, err := h.Properties.GetByID(ctx, *r.PropertyID); err == nil {
			ev.PropertyName = p.Name
		}
	}
	_ = h.Publish(ctx, ev)
}
