// This file defines the repository for booking requests. Requests are
// written exactly once at quote submission and afterwards only read,
// either by request number or per user. Reads join the events table so
// the event title can be displayed without a second query.
package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/event-booking/internal/model"
)

type RequestRepo struct{ DB *sql.DB }

func NewRequestRepo(db *sql.DB) *RequestRepo { return &RequestRepo{DB: db} }

// Create inserts a request and returns its ID. req.UserID stays NULL in
// the database for anonymous submissions.
func (r *RequestRepo) Create(ctx context.Context, req *model.Request) (uint64, error) {
	var userID interface{}
	if req.UserID != nil {
		userID = *req.UserID
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO requests
		 (request_number,user_id,event_id,guests,services,total_price,created_at,status,contact_name,contact_phone,additional_info)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		req.RequestNumber, userID, req.EventID, req.Guests, req.Services,
		req.TotalPrice, req.CreatedAt, req.Status, req.ContactName,
		req.ContactPhone, req.AdditionalInfo)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

const requestColumns = `r.id,r.request_number,r.user_id,r.event_id,r.guests,
	COALESCE(r.services,''),r.total_price,r.created_at,r.status,
	COALESCE(r.contact_name,''),COALESCE(r.contact_phone,''),COALESCE(r.additional_info,''),
	COALESCE(e.title,'')`

// GetByNumber fetches a request with its event title or ErrRequestNotFound.
func (r *RequestRepo) GetByNumber(ctx context.Context, number string) (model.RequestWithEvent, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+requestColumns+
			" FROM requests r LEFT JOIN events e ON r.event_id = e.id WHERE r.request_number=? LIMIT 1",
		number)
	req, err := scanRequest(row)
	if err == sql.ErrNoRows {
		return model.RequestWithEvent{}, ErrRequestNotFound
	}
	return req, err
}

// ListByUser returns all requests owned by a user, newest first.
func (r *RequestRepo) ListByUser(ctx context.Context, userID uint64) ([]model.RequestWithEvent, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+requestColumns+
			" FROM requests r LEFT JOIN events e ON r.event_id = e.id WHERE r.user_id=? ORDER BY r.created_at DESC, r.id DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.RequestWithEvent{}
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface{ Scan(dest ...interface{}) error }

func scanRequest(s scanner) (model.RequestWithEvent, error) {
	var req model.RequestWithEvent
	var userID sql.NullInt64
	err := s.Scan(&req.ID, &req.RequestNumber, &userID, &req.EventID, &req.Guests,
		&req.Services, &req.TotalPrice, &req.CreatedAt, &req.Status,
		&req.ContactName, &req.ContactPhone, &req.AdditionalInfo, &req.EventTitle)
	if err != nil {
		return model.RequestWithEvent{}, err
	}
	if userID.Valid {
		uid := uint64(userID.Int64)
		req.UserID = &uid
	}
	return req, nil
}
