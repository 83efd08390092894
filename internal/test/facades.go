package test

import (
	"context"
	"sync"
	"time"

	"github.com/polkiloo/simpleshop/internal/domain/model"
)

// ShopFacadeStub provides controllable behaviour for HTTP handlers.
type ShopFacadeStub struct {
	PlaceFn    func(context.Context, model.OrderRequest) (model.Receipt, error)
	QuoteFn    func(model.OrderRequest) (int64, error)
	CustomerFn func(context.Context, int64) (*model.Customer, error)
	HealthFn   func(context.Context) error
}

// PlaceOrder delegates to override or returns receipt for a registered customer.
func (s ShopFacadeStub) PlaceOrder(ctx context.Context, request model.OrderRequest) (model.Receipt, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, request)
	}
	return model.Receipt{CustomerID: 1}, nil
}

// QuoteOrder delegates to override or sums item prices.
func (s ShopFacadeStub) QuoteOrder(request model.OrderRequest) (int64, error) {
	if s.QuoteFn != nil {
		return s.QuoteFn(request)
	}
	var sum int64
	for _, item := range request.Items {
		sum += item.Price
	}
	return sum, nil
}

// Customer delegates to override or returns a customer with requested id.
func (s ShopFacadeStub) Customer(ctx context.Context, id int64) (*model.Customer, error) {
	if s.CustomerFn != nil {
		return s.CustomerFn(ctx, id)
	}
	return model.RestoreCustomer(id, "Anna", "Nowak", time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), false), nil
}

// Health delegates to override or reports healthy.
func (s ShopFacadeStub) Health(ctx context.Context) error {
	if s.HealthFn != nil {
		return s.HealthFn(ctx)
	}
	return nil
}

// ProcessedOrder captures a successful intake outcome.
type ProcessedOrder struct {
	Kind        string
	NewCustomer bool
	Sum         int64
}

// RecorderStub collects intake outcomes.
type RecorderStub struct {
	mu        sync.Mutex
	Processed []ProcessedOrder
	Failed    []string
}

// OrderProcessed records successful order.
func (r *RecorderStub) OrderProcessed(kind string, newCustomer bool, sum int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Processed = append(r.Processed, ProcessedOrder{Kind: kind, NewCustomer: newCustomer, Sum: sum})
}

// OrderFailed records failure reason.
func (r *RecorderStub) OrderFailed(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Failed = append(r.Failed, reason)
}
