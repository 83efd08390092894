package model

import "time"

// Customer is the stored customer record. Profile fields are fixed at
// construction; the order flag changes only through PlaceOrder.
type Customer struct {
	id          int64
	firstName   string
	lastName    string
	dateOfBirth time.Time
	orderPlaced bool
}

// NewCustomer creates a customer that has not been stored yet.
func NewCustomer(firstName, lastName string, dateOfBirth time.Time) *Customer {
	return &Customer{firstName: firstName, lastName: lastName, dateOfBirth: dateOfBirth}
}

// RestoreCustomer rebuilds a customer loaded from storage.
func RestoreCustomer(id int64, firstName, lastName string, dateOfBirth time.Time, orderPlaced bool) *Customer {
	return &Customer{
		id:          id,
		firstName:   firstName,
		lastName:    lastName,
		dateOfBirth: dateOfBirth,
		orderPlaced: orderPlaced,
	}
}

func (c *Customer) ID() int64              { return c.id }
func (c *Customer) FirstName() string      { return c.firstName }
func (c *Customer) LastName() string       { return c.lastName }
func (c *Customer) DateOfBirth() time.Time { return c.dateOfBirth }
func (c *Customer) OrderPlaced() bool      { return c.orderPlaced }

// PlaceOrder marks the customer as having placed an order. Repeated calls are no-ops.
func (c *Customer) PlaceOrder() {
	c.orderPlaced = true
}

// AssignID sets the storage identifier. Only the first non-zero assignment sticks.
func (c *Customer) AssignID(id int64) {
	if c.id == 0 {
		c.id = id
	}
}
