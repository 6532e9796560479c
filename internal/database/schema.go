package database

import (
	"context"
	"database/sql"
)

// Schema DDL for the three application tables. username and district use a
// binary collation so lookups and substring filters are case-sensitive,
// matching the application's matching rules. Statements are idempotent so
// both the server and the seeder can run them at startup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		username VARCHAR(64) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL,
		email VARCHAR(255) NULL,
		password_hash VARCHAR(255) NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_username (username)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS events (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		title VARCHAR(255) NOT NULL,
		district VARCHAR(128) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL,
		date_text VARCHAR(64) NOT NULL,
		base_price BIGINT NOT NULL,
		description TEXT,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS requests (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		request_number VARCHAR(32) NOT NULL,
		user_id BIGINT UNSIGNED NULL,
		event_id BIGINT UNSIGNED NOT NULL,
		guests INT NOT NULL,
		services TEXT,
		total_price BIGINT NOT NULL,
		created_at DATETIME NOT NULL,
		status VARCHAR(16) NOT NULL,
		contact_name VARCHAR(255) NULL,
		contact_phone VARCHAR(64) NULL,
		additional_info TEXT,
		PRIMARY KEY (id),
		UNIQUE KEY uq_requests_number (request_number),
		KEY idx_requests_user (user_id),
		CONSTRAINT fk_requests_user FOREIGN KEY (user_id) REFERENCES users(id),
		CONSTRAINT fk_requests_event FOREIGN KEY (event_id) REFERENCES events(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the application tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
