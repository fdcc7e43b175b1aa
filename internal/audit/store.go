package audit

import "context"

// Store persists audit events in append order.
type Store interface {
	Append(ctx context.Context, event Event) error
	// List returns the most recent events, oldest first. A non-positive limit
	// returns everything.
	List(ctx context.Context, limit int) ([]Event, error)
}
