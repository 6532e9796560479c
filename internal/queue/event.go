// Package queue defines message payloads exchanged over the message broker.
package queue

// RequestCreatedEvent is published when a booking request is persisted.
// It contains enough information for downstream consumers to log or
// trigger analytics without querying the primary database.
type RequestCreatedEvent struct {
    RequestNumber string `json:"request_number"`
    UserID        uint64 `json:"user_id"` // 0 for anonymous requests
    EventID       uint64 `json:"event_id"`
    EventTitle    string `json:"event_title"`
    District      string `json:"district"`
    Guests        int    `json:"guests"`
    Services      string `json:"services"`
    TotalPrice    int64  `json:"total_price"`
    CreatedAt     string `json:"created_at"`
}
