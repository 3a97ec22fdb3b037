package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/property-reservation/internal/model"
	"github.com/iliyamo/property-reservation/internal/repository"
	"github.com/iliyamo/property-reservation/internal/utils"
)

// PropertyHandler exposes CRUD and search endpoints for properties.
// Write operations are restricted to admins at the routing layer.
type PropertyHandler struct {
	Properties *repository.PropertyRepo
}

func NewPropertyHandler(properties *repository.PropertyRepo) *PropertyHandler {
	if properties == nil {
		panic("nil repository passed to NewPropertyHandler")
	}
	return &PropertyHandler{Properties: properties}
}

type propertyReq struct {
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	Spec         *model.PropertySpec `json:"spec"`
	NightlyPrice *float64            `json:"nightly_price"`
	Availability string              `json:"availability"`
}

func validAvailability(s string) bool {
	switch s {
	case model.AvailabilityAvailable, model.AvailabilityUnavailable,
		model.AvailabilityReserved, model.AvailabilityMaintenance:
		return true
	}
	return false
}

// Create registers a new property.  Availability defaults to available.
func (h *PropertyHandler) Create(c echo.Context) error {
	var req propertyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	availability := req.Availability
	if availability == "" {
		availability = model.AvailabilityAvailable
	}
	if !validAvailability(availability) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid availability"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	p := model.Property{
		ID:           utils.NewID(),
		Name:         req.Name,
		Description:  req.Description,
		Availability: availability,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.Spec != nil {
		p.Spec = *req.Spec
	}
	if req.NightlyPrice != nil {
		p.NightlyPrice = *req.NightlyPrice
	}
	if err := h.Properties.Create(ctx, p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create property failed"})
	}
	return c.JSON(http.StatusCreated, p)
}

// GetByID returns one property.
func (h *PropertyHandler) GetByID(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Properties.GetByID(ctx, c.Param("id"))
	if err != nil {
		if err == repository.ErrPropertyNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, p)
}

// List returns all properties ordered by name.
func (h *PropertyHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	properties, err := h.Properties.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": properties})
}

// Update overwrites the mutable fields of a property.  Omitted fields
// keep their stored values.
func (h *PropertyHandler) Update(c echo.Context) error {
	var req propertyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Availability != "" && !validAvailability(req.Availability) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid availability"})
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
	if v := strings.TrimSpace(req.Name); v != "" {
		p.Name = v
	}
	if req.Description != "" {
		p.Description = req.Description
	}
	if req.Spec != nil {
		p.Spec = *req.Spec
	}
	if req.NightlyPrice != nil {
		p.NightlyPrice = *req.NightlyPrice
	}
	if req.Availability != "" {
		p.Availability = req.Availability
	}
	p.UpdatedAt = time.Now().UTC()

	if err := h.Properties.Update(ctx, p); err != nil {
		if err == repository.ErrPropertyNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update property failed"})
	}
	return c.JSON(http.StatusOK, p)
}

// Delete removes a property permanently.
func (h *PropertyHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Properties.Delete(ctx, c.Param("id")); err != nil {
		if err == repository.ErrPropertyNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete property failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Search is the public browsing endpoint.  Filters come from query
// parameters; pagination defaults to page 1 with 20 rows and caps at 100.
func (h *PropertyHandler) Search(c echo.Context) error {
	q := repository.PropertySearchQuery{
		Name:         strings.TrimSpace(c.QueryParam("name")),
		Location:     strings.TrimSpace(c.QueryParam("location")),
		Type:         strings.TrimSpace(c.QueryParam("type")),
		Availability: strings.TrimSpace(c.QueryParam("availability")),
		Page:         1,
		PageSize:     20,
	}
	if q.Availability != "" && !validAvailability(q.Availability) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid availability"})
	}
	if v := c.QueryParam("min_capacity"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid min_capacity"})
		}
		q.MinCapacity = n
	}
	if v := c.QueryParam("max_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid max_price"})
		}
		q.MaxPrice = f
	}
	if v := c.QueryParam("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			q.Page = n
		}
	}
	if v := c.QueryParam("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			q.PageSize = n
		}
	}
	if q.PageSize > 100 {
		q.PageSize = 100
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, total, err := h.Properties.Search(ctx, q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items":     rows,
		"total":     total,
		"page":      q.Page,
		"page_size": q.PageSize,
	})
}
