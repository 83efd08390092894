package app

import (
	"context"

	"github.com/polkiloo/simpleshop/internal/domain/model"
	"github.com/polkiloo/simpleshop/internal/usecase"
)

// HealthChecker reports backing store availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// ShopFacade exposes order intake to the transport layer.
type ShopFacade struct {
	intake *usecase.OrderIntake
	health HealthChecker
}

func NewShopFacade(intake *usecase.OrderIntake, health HealthChecker) *ShopFacade {
	return &ShopFacade{intake: intake, health: health}
}

func (f *ShopFacade) PlaceOrder(ctx context.Context, request model.OrderRequest) (model.Receipt, error) {
	return f.intake.Place(ctx, request)
}

func (f *ShopFacade) QuoteOrder(request model.OrderRequest) (int64, error) {
	return f.intake.Quote(request)
}

func (f *ShopFacade) Customer(ctx context.Context, id int64) (*model.Customer, error) {
	return f.intake.Customer(ctx, id)
}

func (f *ShopFacade) Health(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
