package dto

import (
	"fmt"
	"time"

	domainErrors "github.com/polkiloo/simpleshop/internal/domain/errors"
	"github.com/polkiloo/simpleshop/internal/domain/model"
)

// CustomerPayload is the tagged JSON form of a customer reference.
type CustomerPayload struct {
	Kind         string `json:"kind" binding:"required"`
	ID           int64  `json:"id,omitempty"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	AddressLine1 string `json:"addressLine1,omitempty"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	AddressLine3 string `json:"addressLine3,omitempty"`
	Country      string `json:"country,omitempty"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
}

// ItemPayload is a single order line.
type ItemPayload struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// OrderRequest is the body of order endpoints.
type OrderRequest struct {
	Customer *CustomerPayload `json:"customer" binding:"required"`
	Items    []ItemPayload    `json:"items"`
}

// ToModel converts payload to domain request.
func (r OrderRequest) ToModel() (model.OrderRequest, error) {
	if r.Customer == nil {
		return model.OrderRequest{}, fmt.Errorf("%w: customer is required", domainErrors.ErrInvalidRequest)
	}
	ref, err := r.Customer.toRef()
	if err != nil {
		return model.OrderRequest{}, err
	}

	items := make([]model.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, model.OrderItem{Name: it.Name, Price: it.Price})
	}
	return model.OrderRequest{Customer: ref, Items: items}, nil
}

func (p CustomerPayload) toRef() (model.CustomerRef, error) {
	switch p.Kind {
	case model.CustomerKindRegistered:
		return model.RegisteredCustomerRef{ID: p.ID}, nil
	case model.CustomerKindNew:
		var dob time.Time
		if p.DateOfBirth != "" {
			parsed, err := time.Parse(time.DateOnly, p.DateOfBirth)
			if err != nil {
				return nil, fmt.Errorf("%w: dateOfBirth must be YYYY-MM-DD", domainErrors.ErrInvalidRequest)
			}
			dob = parsed
		}
		return model.NewCustomerRef{
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			AddressLine1: p.AddressLine1,
			AddressLine2: p.AddressLine2,
			AddressLine3: p.AddressLine3,
			Country:      p.Country,
			DateOfBirth:  dob,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domainErrors.ErrUnsupportedCustomerKind, p.Kind)
	}
}

// ReceiptResponse is returned after an order is placed.
type ReceiptResponse struct {
	NewCustomer bool  `json:"newCustomer"`
	CustomerID  int64 `json:"customerId"`
	Sum         int64 `json:"sum"`
}

// SumResponse carries an order total.
type SumResponse struct {
	Sum int64 `json:"sum"`
}

// CustomerResponse describes a stored customer.
type CustomerResponse struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	OrderPlaced bool   `json:"orderPlaced"`
}

// NewCustomerResponse maps a domain customer.
func NewCustomerResponse(c *model.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID(),
		FirstName:   c.FirstName(),
		LastName:    c.LastName(),
		DateOfBirth: c.DateOfBirth().Format(time.DateOnly),
		OrderPlaced: c.OrderPlaced(),
	}
}

// ErrorResponse is written for rejected requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
