package model

// OrderItem is a single ordered position.
type OrderItem struct {
	Name  string
	Price int64
}

// OrderRequest pairs a customer reference with the ordered items.
type OrderRequest struct {
	Customer CustomerRef
	Items    []OrderItem
}
