package usecase

import "github.com/polkiloo/simpleshop/internal/domain/model"

// CalculateOrderSum returns the total price of all items in the request.
func CalculateOrderSum(request model.OrderRequest) int64 {
	var sum int64
	for _, item := range request.Items {
		sum += item.Price
	}
	return sum
}
