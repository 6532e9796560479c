package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/iliyamo/event-booking/internal/model"
	"github.com/iliyamo/event-booking/internal/queue"
)

// MockUserStore is a mock implementation of UserStore.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, username, email, password string, cost int) (uint64, error) {
	args := m.Called(ctx, username, email, password, cost)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.User), args.Error(1)
}

// MockEventStore is a mock implementation of EventStore.
type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) ListAll(ctx context.Context) ([]model.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

func (m *MockEventStore) ListByDistrict(ctx context.Context, district string) ([]model.Event, error) {
	args := m.Called(ctx, district)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

func (m *MockEventStore) Districts(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockEventStore) GetByID(ctx context.Context, id uint64) (model.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Event), args.Error(1)
}

// MockRequestStore is a mock implementation of RequestStore.
type MockRequestStore struct {
	mock.Mock
}

func (m *MockRequestStore) Create(ctx context.Context, req *model.Request) (uint64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockRequestStore) GetByNumber(ctx context.Context, number string) (model.RequestWithEvent, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(model.RequestWithEvent), args.Error(1)
}

func (m *MockRequestStore) ListByUser(ctx context.Context, userID uint64) ([]model.RequestWithEvent, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RequestWithEvent), args.Error(1)
}

// MockPublisher records published request.created events.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishRequestCreated(ctx context.Context, ev queue.RequestCreatedEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}
