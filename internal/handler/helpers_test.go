package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-booking/internal/session"
	"github.com/iliyamo/event-booking/web"
)

func testEcho() *echo.Echo {
	e := echo.New()
	e.Renderer = web.MustRenderer()
	return e
}

func testSessions() *session.MemoryStore {
	return session.NewMemoryStore(time.Hour)
}

// getContext builds a context for a GET request.
func getContext(e *echo.Echo, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// postContext builds a context for a form POST.
func postContext(e *echo.Echo, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
