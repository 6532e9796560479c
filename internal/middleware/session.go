// Package middleware contains reusable HTTP middleware: session
// resolution, the signed-in gate for protected pages, the form rate
// limiter and request logging.
package middleware

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/event-booking/internal/model"
	"github.com/iliyamo/event-booking/internal/session"
)

// userLoader is the subset of the user repository needed to resolve the
// signed-in user from a session.
type userLoader interface {
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

// LoadSession resolves the session cookie before every handler. When
// the token is valid, the session data is stored under "session" and,
// if a user is bound to it, the loaded user under "user". Handlers and
// templates read both; an absent or invalid cookie simply leaves them
// unset. Resolution failures never block the request.
func LoadSession(store session.Store, users userLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			ctx := c.Request().Context()
			data, err := store.Get(ctx, cookie.Value)
			if err != nil {
				if err != session.ErrNotFound {
					log.Warn().Err(err).Msg("session: lookup failed")
				}
				return next(c)
			}
			c.Set("session", data)
			if data.UserID != 0 {
				u, err := users.GetByID(ctx, data.UserID)
				switch {
				case err == nil:
					c.Set("user", &u)
				case err == sql.ErrNoRows:
					// user row gone; session stays anonymous
				default:
					log.Warn().Err(err).Msg("session: load user failed")
				}
			}
			return next(c)
		}
	}
}

// RequireUser guards pages that need a signed-in user. Unauthenticated
// visitors are redirected to the sign-in page with a notice; a session
// is created on the spot when the visitor has none, so the notice can
// be carried across the redirect.
func RequireUser(store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if u, ok := c.Get("user").(*model.User); ok && u != nil {
				return next(c)
			}
			ctx := c.Request().Context()
			data, ok := c.Get("session").(session.Data)
			if !ok {
				token, err := store.Create(ctx)
				if err != nil {
					log.Warn().Err(err).Msg("session: create failed")
					return c.Redirect(http.StatusSeeOther, "/signin")
				}
				data = session.Data{Token: token}
				c.SetCookie(session.Cookie(token))
			}
			_ = store.AddFlash(ctx, data.Token, "Please sign in to see your requests")
			return c.Redirect(http.StatusSeeOther, "/signin")
		}
	}
}
