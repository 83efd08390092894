package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/simpleshop/internal/domain/errors"
	"github.com/polkiloo/simpleshop/internal/domain/model"
	"github.com/polkiloo/simpleshop/internal/server/http/handlers"
	testhelpers "github.com/polkiloo/simpleshop/internal/test"
	"github.com/polkiloo/simpleshop/internal/usecase"
)

func newFacade(customers ...*model.Customer) (*ShopFacade, *testhelpers.StoreStub, *testhelpers.RecorderStub) {
	store := testhelpers.NewStoreStub(customers...)
	recorder := &testhelpers.RecorderStub{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	intake := usecase.NewOrderIntake(store, store, recorder, logger, 100)
	return NewShopFacade(intake, store), store, recorder
}

func TestShopFacadePlaceOrder(t *testing.T) {
	facade, store, recorder := newFacade()

	receipt, err := facade.PlaceOrder(context.Background(), testhelpers.PolishCustomerOrder(4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !receipt.NewCustomer || receipt.Sum != 40 {
		t.Fatalf("unexpected receipt: %+v", receipt)
	}
	stored, err := facade.Customer(context.Background(), receipt.CustomerID)
	if err != nil {
		t.Fatalf("customer lookup failed: %v", err)
	}
	if !stored.OrderPlaced() {
		t.Fatal("expected stored customer to have ordered")
	}
	if !store.Sessions[0].Committed || len(recorder.Processed) != 1 {
		t.Fatal("expected committed session and recorded outcome")
	}
}

func TestShopFacadeQuoteOrder(t *testing.T) {
	facade, store, _ := newFacade()
	sum, err := facade.QuoteOrder(testhelpers.PolishCustomerOrder(2))
	if err != nil || sum != 20 {
		t.Fatalf("unexpected quote %d: %v", sum, err)
	}
	if len(store.Sessions) != 0 {
		t.Fatal("quote must not open sessions")
	}
}

func TestShopFacadeCustomerNotFound(t *testing.T) {
	facade, _, _ := newFacade(model.RestoreCustomer(1, "Anna", "Nowak", time.Date(1980, time.March, 3, 0, 0, 0, 0, time.UTC), false))
	if _, err := facade.Customer(context.Background(), 2); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestShopFacadeHealth(t *testing.T) {
	facade, store, _ := newFacade()
	if err := facade.Health(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store.HealthErr = errors.New("ping")
	if err := facade.Health(context.Background()); err == nil {
		t.Fatal("expected health error")
	}
}

var _ handlers.ShopFacade = (*ShopFacade)(nil)
