package usecase

import (
	"errors"
	"math"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/simpleshop/internal/domain/errors"
	"github.com/polkiloo/simpleshop/internal/domain/model"
	"github.com/polkiloo/simpleshop/internal/test"
)

func TestValidateOrderRequest(t *testing.T) {
	valid := test.PolishCustomerOrder(2)

	cases := []struct {
		name     string
		request  model.OrderRequest
		maxItems int
		wantErr  bool
	}{
		{name: "valid new customer", request: valid, maxItems: 10},
		{name: "valid registered", request: model.OrderRequest{Customer: model.RegisteredCustomerRef{ID: 3}}, maxItems: 10},
		{name: "valid pointer", request: model.OrderRequest{Customer: &model.RegisteredCustomerRef{ID: 3}}},
		{name: "limit disabled", request: test.PolishCustomerOrder(500), maxItems: 0},
		{name: "missing customer", request: model.OrderRequest{}, wantErr: true},
		{name: "zero id", request: model.OrderRequest{Customer: model.RegisteredCustomerRef{}}, wantErr: true},
		{name: "negative id", request: model.OrderRequest{Customer: model.RegisteredCustomerRef{ID: -1}}, wantErr: true},
		{name: "blank first name", request: model.OrderRequest{Customer: model.NewCustomerRef{FirstName: " ", LastName: "Kowalski", DateOfBirth: birthday}}, wantErr: true},
		{name: "blank last name", request: model.OrderRequest{Customer: model.NewCustomerRef{FirstName: "Dawid", DateOfBirth: birthday}}, wantErr: true},
		{name: "missing birth date", request: model.OrderRequest{Customer: model.NewCustomerRef{FirstName: "Dawid", LastName: "Kowalski", DateOfBirth: time.Time{}}}, wantErr: true},
		{name: "too many items", request: test.PolishCustomerOrder(11), maxItems: 10, wantErr: true},
		{
			name: "max price single item",
			request: model.OrderRequest{Customer: model.RegisteredCustomerRef{ID: 1}, Items: []model.OrderItem{
				{Name: "a", Price: math.MaxInt64},
			}},
		},
		{
			name: "total overflows",
			request: model.OrderRequest{Customer: model.RegisteredCustomerRef{ID: 1}, Items: []model.OrderItem{
				{Name: "a", Price: math.MaxInt64 - 1},
				{Name: "b", Price: 2},
			}},
			wantErr: true,
		},
		{
			name:    "negative price",
			request: model.OrderRequest{Customer: model.RegisteredCustomerRef{ID: 1}, Items: []model.OrderItem{{Name: "refund", Price: -5}}},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateOrderRequest(tc.request, tc.maxItems)
			if tc.wantErr {
				if !errors.Is(err, domainErrors.ErrInvalidRequest) {
					t.Fatalf("expected invalid request, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
