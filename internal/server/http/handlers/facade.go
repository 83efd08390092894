package handlers

import (
	"context"

	"github.com/polkiloo/simpleshop/internal/domain/model"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, request model.OrderRequest) (model.Receipt, error)
	QuoteOrder(request model.OrderRequest) (int64, error)
}

// CustomerFacade provides read access to stored customers.
type CustomerFacade interface {
	Customer(ctx context.Context, id int64) (*model.Customer, error)
}

// HealthFacade reports backing store availability.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	OrderFacade
	CustomerFacade
	HealthFacade
}
