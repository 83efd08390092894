package model

import "time"

const (
	CustomerKindRegistered = "registered"
	CustomerKindNew        = "new"
)

// CustomerRef identifies who places an order. The set of implementations is
// closed: RegisteredCustomerRef and NewCustomerRef.
type CustomerRef interface {
	Kind() string
	customerRef()
}

// RegisteredCustomerRef points at a customer that already exists.
type RegisteredCustomerRef struct {
	ID int64
}

func (RegisteredCustomerRef) Kind() string { return CustomerKindRegistered }
func (RegisteredCustomerRef) customerRef() {}

// NewCustomerRef carries the full profile of a customer not stored yet.
type NewCustomerRef struct {
	FirstName    string
	LastName     string
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
	Country      string
	DateOfBirth  time.Time
}

func (NewCustomerRef) Kind() string { return CustomerKindNew }
func (NewCustomerRef) customerRef() {}

var (
	_ CustomerRef = RegisteredCustomerRef{}
	_ CustomerRef = NewCustomerRef{}
)
