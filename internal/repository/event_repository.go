// Package repository contains data access logic. This file defines the
// repository for catalog events. Events are seed-only: the application
// reads them but never writes, so the repo exposes only queries.
package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/event-booking/internal/model"
)

type EventRepo struct{ DB *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{DB: db} }

const eventColumns = "id,title,district,date_text,base_price,COALESCE(description,'')"

// ListAll returns every event in the catalog.
func (r *EventRepo) ListAll(ctx context.Context) ([]model.Event, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+eventColumns+" FROM events ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

// ListByDistrict returns events whose district contains the given
// substring. The district column uses a binary collation, so LIKE is
// case-sensitive here.
func (r *EventRepo) ListByDistrict(ctx context.Context, district string) ([]model.Event, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+eventColumns+" FROM events WHERE district LIKE CONCAT('%',?,'%') ORDER BY id",
		district)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvents(rows)
}

// Districts returns the distinct district values across all events,
// used to build the filter UI. Independent of any current filter.
func (r *EventRepo) Districts(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT DISTINCT district FROM events ORDER BY district")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []string{}
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// GetByID fetches a single event or ErrEventNotFound.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (model.Event, error) {
	var e model.Event
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+eventColumns+" FROM events WHERE id=? LIMIT 1",
		id).Scan(&e.ID, &e.Title, &e.District, &e.DateText, &e.BasePrice, &e.Description)
	if err == sql.ErrNoRows {
		return model.Event{}, ErrEventNotFound
	}
	return e, err
}

func scanEvents(rows *sql.Rows) ([]model.Event, error) {
	out := []model.Event{}
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.District, &e.DateText, &e.BasePrice, &e.Description); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
