package handler

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/event-booking/internal/config"
	"github.com/iliyamo/event-booking/internal/repository"
	"github.com/iliyamo/event-booking/internal/session"
	"github.com/iliyamo/event-booking/internal/utils"
)

// AuthHandler bundles dependencies for the signup, signin and signout
// pages.
type AuthHandler struct {
	Cfg      config.Config
	Users    UserStore
	Sessions session.Store
}

func NewAuthHandler(cfg config.Config, users UserStore, sessions session.Store) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users, Sessions: sessions}
}

func (h *AuthHandler) SignupForm(c echo.Context) error {
	return render(c, h.Sessions, "signup.html", echo.Map{"Username": "", "Email": ""})
}

// Signup creates a user from the form. Validation failures and
// duplicate usernames re-render the form with a notice and change no
// state; success redirects to sign-in.
func (h *AuthHandler) Signup(c echo.Context) error {
	var f signupForm
	if err := c.Bind(&f); err != nil {
		f = signupForm{}
	}
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)

	rerender := func(msg string) error {
		flash(c, h.Sessions, msg)
		return render(c, h.Sessions, "signup.html", echo.Map{"Username": f.Username, "Email": f.Email})
	}

	if err := validate.Struct(f); err != nil {
		return rerender(formErrorMessage(err, "Username and password are required."))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Users.Create(ctx, f.Username, f.Email, f.Password, h.Cfg.BcryptCost); err != nil {
		if err == repository.ErrUsernameExists {
			return rerender("Username already taken.")
		}
		log.Error().Err(err).Msg("signup: create user failed")
		return rerender("Could not create the account. Please try again.")
	}

	flash(c, h.Sessions, "Account created — please sign in")
	return redirect(c, "/signin")
}

func (h *AuthHandler) SigninForm(c echo.Context) error {
	return render(c, h.Sessions, "signin.html", echo.Map{"Username": ""})
}

// Signin verifies credentials and starts a fresh session. An unknown
// username and a wrong password produce the same notice, so the form
// cannot be used to enumerate accounts.
func (h *AuthHandler) Signin(c echo.Context) error {
	var f signinForm
	if err := c.Bind(&f); err != nil {
		f = signinForm{}
	}
	f.Username = strings.TrimSpace(f.Username)

	fail := func() error {
		flash(c, h.Sessions, "Incorrect username or password")
		return render(c, h.Sessions, "signin.html", echo.Map{"Username": f.Username})
	}

	if err := validate.Struct(f); err != nil {
		return fail()
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, f.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return fail()
		}
		log.Error().Err(err).Msg("signin: query failed")
		flash(c, h.Sessions, "Could not sign you in. Please try again.")
		return render(c, h.Sessions, "signin.html", echo.Map{"Username": f.Username})
	}
	if !utils.VerifyPassword(u.PasswordHash, f.Password) {
		return fail()
	}

	// Destroy whatever session the browser had and bind a brand-new
	// token to the user, so pre-login state can never leak into the
	// authenticated session.
	if d, ok := currentSession(c); ok {
		_ = h.Sessions.Destroy(ctx, d.Token)
	}
	token, err := h.Sessions.Create(ctx)
	if err == nil {
		err = h.Sessions.SetUser(ctx, token, u.ID)
	}
	if err != nil {
		log.Error().Err(err).Msg("signin: start session failed")
		flash(c, h.Sessions, "Could not sign you in. Please try again.")
		return render(c, h.Sessions, "signin.html", echo.Map{"Username": f.Username})
	}
	c.Set("session", session.Data{Token: token, UserID: u.ID})
	c.Set("user", &u)
	c.SetCookie(session.Cookie(token))

	_ = h.Sessions.AddFlash(ctx, token, "Signed in successfully")
	return redirect(c, "/events")
}

// Signout clears all session state unconditionally, signed in or not.
func (h *AuthHandler) Signout(c echo.Context) error {
	if d, ok := currentSession(c); ok {
		_ = h.Sessions.Destroy(c.Request().Context(), d.Token)
	}
	c.Set("session", nil)
	c.Set("user", nil)
	c.SetCookie(session.ExpiredCookie())

	flash(c, h.Sessions, "Signed out")
	return redirect(c, "/")
}
