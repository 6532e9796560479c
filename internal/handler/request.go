package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/event-booking/internal/repository"
	"github.com/iliyamo/event-booking/internal/session"
)

// RequestHandler serves the request view and the per-user listing.
type RequestHandler struct {
	Requests RequestStore
	Sessions session.Store
}

// ViewRequest shows one request looked up by its number. Requests are
// viewable by anyone holding the number; an unknown number redirects
// to the listing with a notice.
func (h *RequestHandler) ViewRequest(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	req, err := h.Requests.GetByNumber(ctx, c.Param("number"))
	if err != nil {
		if err != repository.ErrRequestNotFound {
			log.Error().Err(err).Msg("request: load failed")
		}
		flash(c, h.Sessions, "Request not found")
		return redirect(c, "/events")
	}

	return render(c, h.Sessions, "request_view.html", echo.Map{"Request": req})
}

// MyRequests lists the signed-in user's requests, newest first. The
// route is guarded by middleware.RequireUser; the nil check is a
// fallback for misconfigured routing.
func (h *RequestHandler) MyRequests(c echo.Context) error {
	u := currentUser(c)
	if u == nil {
		return redirect(c, "/signin")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	requests, err := h.Requests.ListByUser(ctx, u.ID)
	if err != nil {
		log.Error().Err(err).Msg("request: list failed")
		flash(c, h.Sessions, "Could not load your requests. Please try again.")
		requests = nil
	}

	return render(c, h.Sessions, "my_requests.html", echo.Map{"Requests": requests})
}
