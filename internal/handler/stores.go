// Package handler exposes the HTML page handlers. Handlers bind and
// validate form input at the boundary, call into the repositories, and
// recover every failure into a flash notice with a redirect or a
// re-rendered form; no error propagates to the transport layer.
package handler

import (
	"context"

	"github.com/iliyamo/event-booking/internal/model"
)

// Store interfaces are kept to the operations each handler needs so
// tests can substitute fakes; the repository types satisfy them.

type UserStore interface {
	Create(ctx context.Context, username, email, password string, cost int) (uint64, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
}

type EventStore interface {
	ListAll(ctx context.Context) ([]model.Event, error)
	ListByDistrict(ctx context.Context, district string) ([]model.Event, error)
	Districts(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id uint64) (model.Event, error)
}

type RequestStore interface {
	Create(ctx context.Context, req *model.Request) (uint64, error)
	GetByNumber(ctx context.Context, number string) (model.RequestWithEvent, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.RequestWithEvent, error)
}
