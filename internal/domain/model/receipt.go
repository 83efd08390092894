package model

// Receipt summarises an accepted order.
type Receipt struct {
	NewCustomer bool
	CustomerID  int64
	Sum         int64
}
