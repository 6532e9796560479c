package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/event-booking/internal/model"
	"github.com/iliyamo/event-booking/internal/utils"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create hashes the password and inserts the user, returning its ID.
// Usernames are stored exactly as given; matching is case-sensitive, so
// no normalization happens here. A duplicate username surfaces as
// ErrUsernameExists.
func (r *UserRepo) Create(ctx context.Context, username, email, password string, cost int) (uint64, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, email, password_hash) VALUES (?,?,?)",
		username, email, hash)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrUsernameExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByUsername fetches a user by exact username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,COALESCE(email,''),password_hash FROM users WHERE username=? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,COALESCE(email,''),password_hash FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash)
	return u, err
}
