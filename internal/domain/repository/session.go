package repository

import "context"

// Session scopes customer changes for a single order. Changes made through
// Customers become durable on Commit and are discarded on Rollback.
type Session interface {
	Customers() CustomerRepository
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// SessionFactory opens order sessions against the configured store.
type SessionFactory interface {
	Begin(ctx context.Context) (Session, error)
}

// Store is the full storage facade wired into the application.
type Store interface {
	SessionFactory
	CustomerReader
	HealthCheck(ctx context.Context) error
	Close()
}
