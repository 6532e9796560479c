package handler

import (
	"context"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/event-booking/internal/model"
	"github.com/iliyamo/event-booking/internal/repository"
	"github.com/iliyamo/event-booking/internal/session"
)

// CatalogHandler serves the landing page and the public event pages.
// All of its routes are read-only and open to anonymous visitors.
type CatalogHandler struct {
	Events   EventStore
	Sessions session.Store
}

func (h *CatalogHandler) Landing(c echo.Context) error {
	return render(c, h.Sessions, "index.html", nil)
}

// ListEvents shows the catalog, filtered to districts containing the
// ?district= substring when one is given. The distinct district list
// for the filter box is always computed over the whole catalog,
// independent of the current filter.
func (h *CatalogHandler) ListEvents(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	district := c.QueryParam("district")
	var (
		events []model.Event
		err    error
	)
	if district != "" {
		events, err = h.Events.ListByDistrict(ctx, district)
	} else {
		events, err = h.Events.ListAll(ctx)
	}
	if err != nil {
		log.Error().Err(err).Msg("events: list failed")
		flash(c, h.Sessions, "Could not load events. Please try again.")
		events = nil
	}

	districts, err := h.Events.Districts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("events: list districts failed")
		districts = nil
	}

	return render(c, h.Sessions, "events.html", echo.Map{
		"Events":    events,
		"Districts": districts,
		"District":  district,
	})
}

// EventDetail shows one event; an unknown or malformed id redirects to
// the listing with a notice instead of erroring.
func (h *CatalogHandler) EventDetail(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		flash(c, h.Sessions, "Event not found")
		return redirect(c, "/events")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ev, err := h.Events.GetByID(ctx, id)
	if err != nil {
		if err != repository.ErrEventNotFound {
			log.Error().Err(err).Msg("events: load failed")
		}
		flash(c, h.Sessions, "Event not found")
		return redirect(c, "/events")
	}

	return render(c, h.Sessions, "event_detail.html", echo.Map{"Event": ev})
}
