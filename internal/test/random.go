package test

import (
	"math/rand"
	"sync"
	"time"

	"github.com/polkiloo/simpleshop/internal/domain/model"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns a pseudo-random ASCII string within the provided bounds.
// When maxLen equals minLen the resulting string always has that exact length.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += randomIntn(maxLen - minLen + 1)
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = asciiLetters[randomIntn(len(asciiLetters))]
	}
	return string(buf)
}

// RandomPrice returns a non-negative price below limit.
func RandomPrice(limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return int64(randomIntn(limit))
}

// RandomItems builds n items with random names and prices.
func RandomItems(n int) []model.OrderItem {
	items := make([]model.OrderItem, n)
	for i := range items {
		items[i] = model.OrderItem{Name: RandomASCIIString(3, 12), Price: RandomPrice(10000)}
	}
	return items
}

// RandomNewCustomerRef builds a fully populated new-customer reference.
func RandomNewCustomerRef() model.NewCustomerRef {
	return model.NewCustomerRef{
		FirstName:    RandomASCIIString(3, 10),
		LastName:     RandomASCIIString(3, 12),
		AddressLine1: RandomASCIIString(5, 20),
		AddressLine2: RandomASCIIString(5, 20),
		AddressLine3: RandomASCIIString(5, 20),
		Country:      RandomASCIIString(2, 2),
		DateOfBirth:  time.Date(1950+randomIntn(60), time.Month(1+randomIntn(12)), 1+randomIntn(28), 0, 0, 0, 0, time.UTC),
	}
}

// PolishCustomerOrder returns the Dawid Kowalski request with n items priced 10 each.
func PolishCustomerOrder(n int) model.OrderRequest {
	items := make([]model.OrderItem, n)
	for i := range items {
		items[i] = model.OrderItem{Name: "item", Price: 10}
	}
	return model.OrderRequest{
		Customer: model.NewCustomerRef{
			FirstName:    "Dawid",
			LastName:     "Kowalski",
			AddressLine1: "ul. Marszałkowska 1",
			AddressLine2: "m. 12",
			AddressLine3: "00-001 Warszawa",
			Country:      "Poland",
			DateOfBirth:  time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		Items: items,
	}
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
