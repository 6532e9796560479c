package handler

import (
	"net/http"
	"net/url"
	"regexp"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-booking/internal/model"
	"github.com/iliyamo/event-booking/internal/repository"
)

var requestLocationRe = regexp.MustCompile(`^/request/(REQ-\d{14}-[0-9A-F]{6})$`)

var quoteEvent = model.Event{
	ID:        5,
	Title:     "Grand Wedding Expo",
	District:  "Hyderabad",
	DateText:  "2025-12-01",
	BasePrice: 1000,
}

func TestQuoteFormShowsEventAndServices(t *testing.T) {
	e := testEcho()
	events := new(MockEventStore)
	events.On("GetByID", mock.Anything, uint64(5)).Return(quoteEvent, nil)
	h := &QuoteHandler{Events: events, Sessions: testSessions()}

	c, rec := getContext(e, "/quote/5")
	c.SetParamNames("id")
	c.SetParamValues("5")
	require.NoError(t, h.QuoteForm(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Grand Wedding Expo")
	assert.Contains(t, rec.Body.String(), "Photography")
	assert.Contains(t, rec.Body.String(), `name="services"`)
}

func TestQuoteFormUnknownEvent(t *testing.T) {
	e := testEcho()
	events := new(MockEventStore)
	events.On("GetByID", mock.Anything, uint64(99)).
		Return(model.Event{}, repository.ErrEventNotFound)
	h := &QuoteHandler{Events: events, Sessions: testSessions()}

	c, rec := getContext(e, "/quote/99")
	c.SetParamNames("id")
	c.SetParamValues("99")
	require.NoError(t, h.QuoteForm(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/events", rec.Header().Get(echo.HeaderLocation))
}

func TestSubmitQuoteComputesTotal(t *testing.T) {
	e := testEcho()
	events := new(MockEventStore)
	events.On("GetByID", mock.Anything, uint64(5)).Return(quoteEvent, nil)

	var captured *model.Request
	requests := new(MockRequestStore)
	requests.On("Create", mock.Anything, mock.AnythingOfType("*model.Request")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*model.Request) }).
		Return(uint64(1), nil)

	pub := new(MockPublisher)
	pub.On("PublishRequestCreated", mock.Anything, mock.Anything).Return(nil)

	h := &QuoteHandler{Events: events, Requests: requests, Sessions: testSessions(), Publisher: pub}

	c, rec := postContext(e, "/quote/5", url.Values{
		"guests":       {"3"},
		"services":     {"decoration", "photography"},
		"contact_name": {"Alice"},
	})
	c.SetParamNames("id")
	c.SetParamValues("5")
	require.NoError(t, h.SubmitQuote(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	loc := rec.Header().Get(echo.HeaderLocation)
	m := requestLocationRe.FindStringSubmatch(loc)
	require.NotNil(t, m, "unexpected redirect target %q", loc)

	require.NotNil(t, captured)
	// 1000*3 guests + 5000 decoration + 7000 photography.
	assert.Equal(t, int64(15000), captured.TotalPrice)
	assert.Equal(t, m[1], captured.RequestNumber)
	assert.Equal(t, model.StatusNew, captured.Status)
	assert.Equal(t, "decoration,photography", captured.Services)
	assert.Equal(t, "Alice", captured.ContactName)
	assert.Nil(t, captured.UserID, "anonymous submission must not carry a user")

	pub.AssertCalled(t, "PublishRequestCreated", mock.Anything, mock.Anything)
}

func TestSubmitQuoteCoercesBadGuests(t *testing.T) {
	e := testEcho()
	events := new(MockEventStore)
	events.On("GetByID", mock.Anything, uint64(5)).Return(quoteEvent, nil)

	var captured *model.Request
	requests := new(MockRequestStore)
	requests.On("Create", mock.Anything, mock.AnythingOfType("*model.Request")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*model.Request) }).
		Return(uint64(1), nil)

	h := &QuoteHandler{Events: events, Requests: requests, Sessions: testSessions()}

	c, rec := postContext(e, "/quote/5", url.Values{
		"guests":   {"abc"},
		"services": {"sound"},
	})
	c.SetParamNames("id")
	c.SetParamValues("5")
	require.NoError(t, h.SubmitQuote(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	require.NotNil(t, captured)
	assert.Equal(t, 0, captured.Guests)
	// Base contributes nothing at zero guests; only the flat fee remains.
	assert.Equal(t, int64(4000), captured.TotalPrice)
}

func TestSubmitQuoteAttributesSignedInUser(t *testing.T) {
	e := testEcho()
	events := new(MockEventStore)
	events.On("GetByID", mock.Anything, uint64(5)).Return(quoteEvent, nil)

	var captured *model.Request
	requests := new(MockRequestStore)
	requests.On("Create", mock.Anything, mock.AnythingOfType("*model.Request")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(*model.Request) }).
		Return(uint64(1), nil)

	h := &QuoteHandler{Events: events, Requests: requests, Sessions: testSessions()}

	c, rec := postContext(e, "/quote/5", url.Values{"guests": {"2"}})
	c.SetParamNames("id")
	c.SetParamValues("5")
	c.Set("user", &model.User{ID: 42, Username: "alice"})
	require.NoError(t, h.SubmitQuote(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	require.NotNil(t, captured)
	require.NotNil(t, captured.UserID)
	assert.Equal(t, uint64(42), *captured.UserID)
	assert.Equal(t, int64(2000), captured.TotalPrice)
}

func TestSubmitQuoteCreateFailureRerenders(t *testing.T) {
	e := testEcho()
	events := new(MockEventStore)
	events.On("GetByID", mock.Anything, uint64(5)).Return(quoteEvent, nil)

	requests := new(MockRequestStore)
	requests.On("Create", mock.Anything, mock.AnythingOfType("*model.Request")).
		Return(uint64(0), assert.AnError)

	h := &QuoteHandler{Events: events, Requests: requests, Sessions: testSessions()}

	c, rec := postContext(e, "/quote/5", url.Values{"guests": {"2"}})
	c.SetParamNames("id")
	c.SetParamValues("5")
	require.NoError(t, h.SubmitQuote(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Could not save your request. Please try again.")
}
