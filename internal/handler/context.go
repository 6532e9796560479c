package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/event-booking/internal/model"
	"github.com/iliyamo/event-booking/internal/session"
)

// currentUser returns the signed-in user resolved by the session
// middleware, or nil for anonymous visitors.
func currentUser(c echo.Context) *model.User {
	if u, ok := c.Get("user").(*model.User); ok {
		return u
	}
	return nil
}

// currentSession returns the session resolved by the middleware.
func currentSession(c echo.Context) (session.Data, bool) {
	d, ok := c.Get("session").(session.Data)
	return d, ok
}

// ensureSession returns the request's session, creating one (and
// setting the cookie) when the visitor has none yet.
func ensureSession(c echo.Context, store session.Store) (session.Data, error) {
	if d, ok := currentSession(c); ok && d.Token != "" {
		return d, nil
	}
	token, err := store.Create(c.Request().Context())
	if err != nil {
		return session.Data{}, err
	}
	d := session.Data{Token: token}
	c.Set("session", d)
	c.SetCookie(session.Cookie(token))
	return d, nil
}

// flash appends a one-shot notice to the session, creating a session
// when needed. Failures are logged and swallowed; a lost notice must
// not break the page it accompanies.
func flash(c echo.Context, store session.Store, message string) {
	d, err := ensureSession(c, store)
	if err != nil {
		log.Warn().Err(err).Msg("flash: create session failed")
		return
	}
	if err := store.AddFlash(c.Request().Context(), d.Token, message); err != nil {
		log.Warn().Err(err).Msg("flash: store notice failed")
	}
}

// render executes a page template with the shared view data (current
// user, pending flash notices) merged into the page's own data.
func render(c echo.Context, store session.Store, page string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	data["CurrentUser"] = currentUser(c)
	if d, ok := currentSession(c); ok {
		msgs, err := store.PopFlashes(c.Request().Context(), d.Token)
		if err != nil {
			log.Warn().Err(err).Msg("render: pop flashes failed")
		} else if len(msgs) > 0 {
			data["Flashes"] = msgs
		}
	}
	return c.Render(http.StatusOK, page, data)
}

// redirect is a 303 redirect; every POST in the application answers
// with See Other so a refresh never resubmits the form.
func redirect(c echo.Context, location string) error {
	return c.Redirect(http.StatusSeeOther, location)
}
