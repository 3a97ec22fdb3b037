package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/property-reservation/internal/booking"
	"github.com/iliyamo/property-reservation/internal/repository"
)

// AvailabilityHandler serves availability and calendar projections.  The
// booking package does all the computation; this handler only loads the
// property and its reservations and shapes the response.
type AvailabilityHandler struct {
	Properties   *repository.PropertyRepo
	Reservations *repository.ReservationRepo
}

func NewAvailabilityHandler(properties *repository.PropertyRepo, reservations *repository.ReservationRepo) *AvailabilityHandler {
	if properties == nil || reservations == nil {
		panic("nil repository passed to NewAvailabilityHandler")
	}
	return &AvailabilityHandler{Properties: properties, Reservations: reservations}
}

// GetAvailability reports one property's availability at the current
// instant, with the computed state and a display message.
func (h *AvailabilityHandler) GetAvailability(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Properties.GetByID(ctx, c.Param("id"))
	if err != nil {
		if err == repository.ErrPropertyNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	reservations, err := h.Reservations.ListByProperty(ctx, p.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	now := time.Now().UTC()
	info := booking.CalculateAvailability(p, reservations, now)
	display := booking.AvailabilityDisplay(p, info)
	return c.JSON(http.StatusOK, echo.Map{
		"property_id":  p.ID,
		"availability": info,
		"message":      display.Message,
	})
}

// ListAvailability reports availability for every property, in listing
// order.
func (h *AvailabilityHandler) ListAvailability(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	properties, err := h.Properties.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	reservations, err := h.Reservations.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	now := time.Now().UTC()
	out := booking.PropertiesAvailability(properties, reservations, now)
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetCalendar projects a property's day-by-day calendar.  Query params:
// start=YYYY-MM-DD (default today) and weeks=N (default 4, max 26).
func (h *AvailabilityHandler) GetCalendar(c echo.Context) error {
	now := time.Now().UTC()

	start := now
	if v := c.QueryParam("start"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start, want YYYY-MM-DD"})
		}
		start = parsed
	}
	weeks := 4
	if v := c.QueryParam("weeks"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 26 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid weeks, want 1-26"})
		}
		weeks = n
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Properties.GetByID(ctx, c.Param("id"))
	if err != nil {
		if err == repository.ErrPropertyNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	reservations, err := h.Reservations.ListByProperty(ctx, p.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	days := booking.GenerateCalendar(p, reservations, start, weeks, now)
	return c.JSON(http.StatusOK, echo.Map{
		"property_id": p.ID,
		"weeks":       weeks,
		"days":        days,
	})
}
