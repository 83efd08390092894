package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/polkiloo/simpleshop/internal/domain/errors"
	"github.com/polkiloo/simpleshop/internal/domain/model"
	"github.com/polkiloo/simpleshop/internal/domain/repository"
)

// OrderProcessor applies order requests to the customer repository.
type OrderProcessor struct {
	customers repository.CustomerRepository
}

// NewOrderProcessor constructs OrderProcessor.
func NewOrderProcessor(customers repository.CustomerRepository) *OrderProcessor {
	return &OrderProcessor{customers: customers}
}

// ProcessOrder marks the referenced customer as having ordered, creating the
// customer first when the request names a new one. Returns whether a customer was created.
// Repository errors are returned unchanged.
func (p *OrderProcessor) ProcessOrder(ctx context.Context, request model.OrderRequest) (bool, error) {
	switch ref := dereference(request.Customer).(type) {
	case model.RegisteredCustomerRef:
		customer, err := p.customers.GetByID(ctx, ref.ID)
		if err != nil {
			return false, err
		}
		customer.PlaceOrder()
		return false, nil
	case model.NewCustomerRef:
		// Address lines and country stay on the request; only name and birth date are stored.
		customer := model.NewCustomer(ref.FirstName, ref.LastName, ref.DateOfBirth)
		if err := p.customers.AddCustomer(ctx, customer); err != nil {
			return false, err
		}
		customer.PlaceOrder()
		return true, nil
	default:
		return false, fmt.Errorf("%w: %T", domainErrors.ErrUnsupportedCustomerKind, request.Customer)
	}
}

func dereference(ref model.CustomerRef) model.CustomerRef {
	switch r := ref.(type) {
	case *model.RegisteredCustomerRef:
		if r != nil {
			return *r
		}
	case *model.NewCustomerRef:
		if r != nil {
			return *r
		}
	}
	return ref
}
