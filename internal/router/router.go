package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/blockflix/blockflix/internal/handler"
	"github.com/blockflix/blockflix/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication
// on the provided Echo instance.  Currently it exposes only a health
// check, used by load balancers and monitoring to verify the service
// is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication routes and their
// middleware.  Unauthenticated operations live under /v1/auth; the
// authenticated profile endpoint lives under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterStore registers the catalog and rental-store routes.  Film
// browsing is public; the listing endpoint additionally sits behind
// the Redis response cache (cacheMW may be a pass-through when Redis
// is unavailable).  Payments and rentals require a valid access token.
func RegisterStore(e *echo.Echo, f *handler.FilmHandler, p *handler.PaymentHandler, r *handler.RentalHandler, jwtSecret string, cacheMW echo.MiddlewareFunc) {
	e.GET("/v1/films", f.List, cacheMW)
	e.GET("/v1/films/:id", f.Get)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/payments", p.List)
	auth.GET("/rentals", r.List)
	auth.POST("/rentals", r.Rent)
	auth.POST("/rentals/return", r.Return)
}
