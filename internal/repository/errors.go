// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrEventNotFound lets a handler redirect to the listing
// with a notice instead of failing hard, and ErrUsernameExists maps
// a duplicate-key insert onto a form validation message.
package repository

import "errors"

// ErrUsernameExists is returned when a signup attempts to reuse an
// existing username. Handlers should show it as a form notice.
var ErrUsernameExists = errors.New("username already exists")

// ErrEventNotFound is returned when an event id does not exist.
// Handlers should redirect to the event listing with a notice.
var ErrEventNotFound = errors.New("event not found")

// ErrRequestNotFound is returned when a request number does not
// exist. Handlers should redirect to the event listing with a notice.
var ErrRequestNotFound = errors.New("request not found")
