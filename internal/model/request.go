package model

import "time"

// StatusNew is the only request status the application assigns.
// Requests are created exactly once and never transition.
const StatusNew = "NEW"

// Request is a quote/booking record created from the quote form.
// The request number is generated once at creation and is globally
// unique and immutable. UserID is nil for anonymous submissions.
// Selected services are stored as a comma-joined string to stay
// byte-compatible with the original storage format.
//
// Fields:
//  ID             – primary key identifier.
//  RequestNumber  – human-readable unique number (REQ-...).
//  UserID         – owning user, nil when submitted anonymously.
//  EventID        – event the quote was requested for.
//  Guests         – guest count used in the price calculation.
//  Services       – comma-joined selected service keys.
//  TotalPrice     – computed total in whole currency units.
//  CreatedAt      – UTC creation timestamp.
//  Status         – fixed at StatusNew.
//  ContactName    – free-text contact name.
//  ContactPhone   – free-text contact phone.
//  AdditionalInfo – free-text notes from the form.
type Request struct {
	ID             uint64    // requests.id
	RequestNumber  string    // requests.request_number
	UserID         *uint64   // requests.user_id (nullable)
	EventID        uint64    // requests.event_id
	Guests         int       // requests.guests
	Services       string    // requests.services
	TotalPrice     int64     // requests.total_price
	CreatedAt      time.Time // requests.created_at
	Status         string    // requests.status
	ContactName    string    // requests.contact_name
	ContactPhone   string    // requests.contact_phone
	AdditionalInfo string    // requests.additional_info
}

// RequestWithEvent joins a request to its event title for display
// on the request view and "my requests" pages.
type RequestWithEvent struct {
	Request
	EventTitle string // events.title via join
}
