package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-booking/internal/middleware"
	"github.com/iliyamo/event-booking/internal/model"
	"github.com/iliyamo/event-booking/internal/repository"
	"github.com/iliyamo/event-booking/internal/session"
)

func sampleRequest(number string, userID *uint64) model.RequestWithEvent {
	return model.RequestWithEvent{
		Request: model.Request{
			ID:            1,
			RequestNumber: number,
			UserID:        userID,
			EventID:       5,
			Guests:        3,
			Services:      "decoration,photography",
			TotalPrice:    15000,
			CreatedAt:     time.Date(2025, 12, 1, 10, 30, 0, 0, time.UTC),
			Status:        model.StatusNew,
			ContactName:   "Alice",
		},
		EventTitle: "Grand Wedding Expo",
	}
}

func TestViewRequest(t *testing.T) {
	e := testEcho()
	requests := new(MockRequestStore)
	requests.On("GetByNumber", mock.Anything, "REQ-20251201103000-0A1B2C").
		Return(sampleRequest("REQ-20251201103000-0A1B2C", nil), nil)
	h := &RequestHandler{Requests: requests, Sessions: testSessions()}

	c, rec := getContext(e, "/request/REQ-20251201103000-0A1B2C")
	c.SetParamNames("number")
	c.SetParamValues("REQ-20251201103000-0A1B2C")
	require.NoError(t, h.ViewRequest(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "REQ-20251201103000-0A1B2C")
	assert.Contains(t, body, "Grand Wedding Expo")
	assert.Contains(t, body, "15000")
	assert.Contains(t, body, "NEW")
}

func TestViewRequestNotFound(t *testing.T) {
	e := testEcho()
	requests := new(MockRequestStore)
	requests.On("GetByNumber", mock.Anything, "REQ-NOPE").
		Return(model.RequestWithEvent{}, repository.ErrRequestNotFound)
	h := &RequestHandler{Requests: requests, Sessions: testSessions()}

	c, rec := getContext(e, "/request/REQ-NOPE")
	c.SetParamNames("number")
	c.SetParamValues("REQ-NOPE")
	require.NoError(t, h.ViewRequest(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/events", rec.Header().Get(echo.HeaderLocation))
}

func TestMyRequestsListsOwnRequests(t *testing.T) {
	e := testEcho()
	uid := uint64(42)
	requests := new(MockRequestStore)
	requests.On("ListByUser", mock.Anything, uid).
		Return([]model.RequestWithEvent{sampleRequest("REQ-20251201103000-0A1B2C", &uid)}, nil)
	h := &RequestHandler{Requests: requests, Sessions: testSessions()}

	c, rec := getContext(e, "/myrequests")
	c.Set("user", &model.User{ID: 42, Username: "alice"})
	require.NoError(t, h.MyRequests(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "REQ-20251201103000-0A1B2C")
}

func TestMyRequestsRequiresUser(t *testing.T) {
	e := testEcho()
	sessions := testSessions()
	requests := new(MockRequestStore)
	h := &RequestHandler{Requests: requests, Sessions: sessions}

	guarded := middleware.RequireUser(sessions)(h.MyRequests)

	c, rec := getContext(e, "/myrequests")
	require.NoError(t, guarded(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/signin", rec.Header().Get(echo.HeaderLocation))
	requests.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)

	// The sign-in prompt is stashed as a flash for the redirect target.
	var token string
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName {
			token = ck.Value
		}
	}
	require.NotEmpty(t, token, "expected a session cookie carrying the flash")
	msgs, err := sessions.PopFlashes(c.Request().Context(), token)
	require.NoError(t, err)
	assert.Contains(t, msgs, "Please sign in to see your requests")
}
