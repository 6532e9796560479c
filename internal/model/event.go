package model

// Event is a bookable offering in the catalog. Rows are inserted
// only by the seeder; the application never creates, updates or
// deletes events. The date is deliberately free-form text rather
// than a validated calendar date, matching how the catalog is
// curated.
//
// Fields:
//  ID          – primary key identifier of the event.
//  Title       – display name of the event.
//  District    – location used for substring filtering.
//  DateText    – free-form date string (e.g. "2025-11-01").
//  BasePrice   – per-guest base price in whole currency units.
//  Description – longer description shown on the detail page.
type Event struct {
	ID          uint64 // events.id
	Title       string // events.title
	District    string // events.district
	DateText    string // events.date_text
	BasePrice   int64  // events.base_price
	Description string // events.description
}
