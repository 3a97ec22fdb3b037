// Package router wires handlers and middleware onto the Echo instance.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/property-reservation/internal/config"
	"github.com/iliyamo/property-reservation/internal/handler"
	"github.com/iliyamo/property-reservation/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers authentication routes.  Unauthenticated
// operations live under /v1/auth; /v1/me requires a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("ADMIN", "AGENT"))
	auth.GET("/me", a.Me)
}

// APIDeps bundles everything RegisterAPI needs.
type APIDeps struct {
	JWTSecret    string
	Redis        *redis.Client
	Clients      *handler.ClientHandler
	Properties   *handler.PropertyHandler
	Reservations *handler.ReservationHandler
	Availability *handler.AvailabilityHandler
}

// RegisterAPI registers the domain routes.
//
// Public, read-only endpoints (property search, availability, calendars)
// carry the Redis response cache and rate limiter.  Everything that
// reads or mutates client and reservation data requires an access token
// with the ADMIN or AGENT role; property writes are ADMIN only.
func RegisterAPI(e *echo.Echo, d APIDeps) {
	cache := middleware.NewResponseCache(config.LoadCacheConfig(), d.Redis)
	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), d.Redis)

	public := e.Group("/v1", limit)
	public.GET("/search/properties", d.Properties.Search, cache)
	public.GET("/properties/availability", d.Availability.ListAvailability, cache)
	public.GET("/properties/:id/availability", d.Availability.GetAvailability, cache)
	public.GET("/properties/:id/calendar", d.Availability.GetCalendar, cache)

	staff := e.Group("/v1", limit, middleware.JWTAuth(d.JWTSecret), middleware.RequireRole("ADMIN", "AGENT"))

	staff.POST("/clients", d.Clients.Create)
	staff.GET("/clients", d.Clients.List)
	staff.GET("/clients/:id", d.Clients.GetByID)
	staff.PATCH("/clients/:id", d.Clients.Update)
	staff.DELETE("/clients/:id", d.Clients.Delete)

	staff.GET("/properties", d.Properties.List)
	staff.GET("/properties/:id", d.Properties.GetByID)

	admin := e.Group("/v1", limit, middleware.JWTAuth(d.JWTSecret), middleware.RequireRole("ADMIN"))
	admin.POST("/properties", d.Properties.Create)
	admin.PATCH("/properties/:id", d.Properties.Update)
	admin.DELETE("/properties/:id", d.Properties.Delete)

	staff.POST("/reservations", d.Reservations.Create)
	staff.GET("/reservations", d.Reservations.List)
	staff.GET("/reservations/:id", d.Reservations.GetByID)
	staff.PATCH("/reservations/:id", d.Reservations.Update)
	staff.DELETE("/reservations/:id", d.Reservations.Delete)
	staff.POST("/reservations/:id/confirm", d.Reservations.Confirm)
	staff.POST("/reservations/:id/cancel", d.Reservations.Cancel)
}
