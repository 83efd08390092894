package repository

import (
	"context"

	"github.com/polkiloo/simpleshop/internal/domain/model"
)

// CustomerRepository is the storage contract used by order processing.
// GetByID returns a live handle: changes made through it are visible to later
// reads through the same repository.
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	AddCustomer(ctx context.Context, customer *model.Customer) error
}

// CustomerReader provides read-only lookups outside of an order session.
type CustomerReader interface {
	FindByID(ctx context.Context, id int64) (*model.Customer, error)
}
