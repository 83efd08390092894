package usecase

import (
	"fmt"
	"math"
	"strings"

	domainErrors "github.com/polkiloo/simpleshop/internal/domain/errors"
	"github.com/polkiloo/simpleshop/internal/domain/model"
)

// ValidateOrderRequest checks an incoming request before it reaches the processor.
// maxItems <= 0 disables the item count limit.
func ValidateOrderRequest(request model.OrderRequest, maxItems int) error {
	switch ref := dereference(request.Customer).(type) {
	case nil:
		return invalid("customer is required")
	case model.RegisteredCustomerRef:
		if ref.ID <= 0 {
			return invalid("customer id must be positive")
		}
	case model.NewCustomerRef:
		if strings.TrimSpace(ref.FirstName) == "" || strings.TrimSpace(ref.LastName) == "" {
			return invalid("customer name is required")
		}
		if ref.DateOfBirth.IsZero() {
			return invalid("customer date of birth is required")
		}
	}

	if maxItems > 0 && len(request.Items) > maxItems {
		return invalid(fmt.Sprintf("too many items: %d > %d", len(request.Items), maxItems))
	}
	var total int64
	for i, item := range request.Items {
		if item.Price < 0 {
			return invalid(fmt.Sprintf("item %d has negative price", i))
		}
		if item.Price > math.MaxInt64-total {
			return invalid("order total overflows")
		}
		total += item.Price
	}
	return nil
}

func invalid(reason string) error {
	return fmt.Errorf("%w: %s", domainErrors.ErrInvalidRequest, reason)
}
