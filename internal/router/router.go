// Package router defines how HTTP routes are registered for the
// application. All pages are server-rendered; POST routes that accept
// form submissions additionally pass through the rate limiter.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-booking/internal/handler"
	"github.com/iliyamo/event-booking/internal/middleware"
	"github.com/iliyamo/event-booking/internal/session"
)

// RegisterRoutes wires every route of the application onto the
// provided Echo instance. The limiter middleware may be a no-op when
// rate limiting is disabled.
func RegisterRoutes(
	e *echo.Echo,
	auth *handler.AuthHandler,
	catalog *handler.CatalogHandler,
	quote *handler.QuoteHandler,
	requests *handler.RequestHandler,
	sessions session.Store,
	limiter echo.MiddlewareFunc,
) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Public catalog pages.
	e.GET("/", catalog.Landing)
	e.GET("/events", catalog.ListEvents)
	e.GET("/event/:id", catalog.EventDetail)

	// Account pages.
	e.GET("/signup", auth.SignupForm)
	e.POST("/signup", auth.Signup, limiter)
	e.GET("/signin", auth.SigninForm)
	e.POST("/signin", auth.Signin, limiter)
	e.GET("/signout", auth.Signout)

	// Quote flow; anonymous submissions are allowed.
	e.GET("/quote/:id", quote.QuoteForm)
	e.POST("/quote/:id", quote.SubmitQuote, limiter)

	// Request lookup. Viewing a single request needs only the number;
	// the per-user listing requires a signed-in session.
	e.GET("/request/:number", requests.ViewRequest)
	e.GET("/myrequests", requests.MyRequests, middleware.RequireUser(sessions))
}
