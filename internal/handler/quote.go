package handler

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/event-booking/internal/model"
	"github.com/iliyamo/event-booking/internal/pricing"
	"github.com/iliyamo/event-booking/internal/queue"
	"github.com/iliyamo/event-booking/internal/repository"
	"github.com/iliyamo/event-booking/internal/session"
)

// QuoteHandler renders the quote form and turns a submission into a
// persisted booking request. Publisher may be nil, in which case no
// request.created events are emitted.
type QuoteHandler struct {
	Events    EventStore
	Requests  RequestStore
	Sessions  session.Store
	Publisher queue.Publisher
}

// loadEvent resolves the :id path parameter; on any failure the caller
// should redirect to the listing, a notice has already been flashed.
func (h *QuoteHandler) loadEvent(c echo.Context, ctx context.Context) (model.Event, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		flash(c, h.Sessions, "Event not found")
		return model.Event{}, false
	}
	ev, err := h.Events.GetByID(ctx, id)
	if err != nil {
		if err != repository.ErrEventNotFound {
			log.Error().Err(err).Msg("quote: load event failed")
		}
		flash(c, h.Sessions, "Event not found")
		return model.Event{}, false
	}
	return ev, true
}

func (h *QuoteHandler) QuoteForm(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ev, ok := h.loadEvent(c, ctx)
	if !ok {
		return redirect(c, "/events")
	}
	return render(c, h.Sessions, "quote_form.html", echo.Map{
		"Event":   ev,
		"Options": pricing.Options(),
	})
}

// SubmitQuote computes the total for the selected services and guest
// count, persists the request (attributed to the session's user when
// signed in, anonymous otherwise) and redirects to the request view.
func (h *QuoteHandler) SubmitQuote(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ev, ok := h.loadEvent(c, ctx)
	if !ok {
		return redirect(c, "/events")
	}

	var f quoteForm
	if err := c.Bind(&f); err != nil {
		f = quoteForm{}
	}
	rerender := func(msg string) error {
		flash(c, h.Sessions, msg)
		return render(c, h.Sessions, "quote_form.html", echo.Map{
			"Event":   ev,
			"Options": pricing.Options(),
		})
	}
	if err := validate.Struct(f); err != nil {
		return rerender(formErrorMessage(err, "Invalid input."))
	}

	guests := f.GuestCount()
	total := pricing.Total(ev.BasePrice, guests, f.Services)
	now := time.Now().UTC().Truncate(time.Second)
	number := pricing.NewRequestNumber(now)

	var userID *uint64
	if u := currentUser(c); u != nil {
		userID = &u.ID
	}

	req := &model.Request{
		RequestNumber:  number,
		UserID:         userID,
		EventID:        ev.ID,
		Guests:         guests,
		Services:       strings.Join(f.Services, ","),
		TotalPrice:     total,
		CreatedAt:      now,
		Status:         model.StatusNew,
		ContactName:    strings.TrimSpace(f.ContactName),
		ContactPhone:   strings.TrimSpace(f.ContactPhone),
		AdditionalInfo: f.AdditionalInfo,
	}
	if _, err := h.Requests.Create(ctx, req); err != nil {
		log.Error().Err(err).Msg("quote: create request failed")
		return rerender("Could not save your request. Please try again.")
	}

	if h.Publisher != nil {
		var uid uint64
		if userID != nil {
			uid = *userID
		}
		// Best effort: a lost event never fails the submission.
		_ = h.Publisher.PublishRequestCreated(ctx, queue.RequestCreatedEvent{
			RequestNumber: number,
			UserID:        uid,
			EventID:       ev.ID,
			EventTitle:    ev.Title,
			District:      ev.District,
			Guests:        guests,
			Services:      req.Services,
			TotalPrice:    total,
			CreatedAt:     now.Format(time.RFC3339),
		})
	}

	return redirect(c, "/request/"+number)
}
