package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/polkiloo/simpleshop/internal/domain/model"
)

type seedCustomer struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	OrderPlaced bool   `json:"orderPlaced"`
}

// LoadSeedFile reads customers from a JSON array file.
func LoadSeedFile(path string) ([]*model.Customer, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return parseSeed(content)
}

func parseSeed(content []byte) ([]*model.Customer, error) {
	var raw []seedCustomer
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	customers := make([]*model.Customer, 0, len(raw))
	for i, r := range raw {
		dob, err := time.Parse(time.DateOnly, r.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("seed customer %d: invalid date of birth: %w", i, err)
		}
		customers = append(customers, model.RestoreCustomer(r.ID, r.FirstName, r.LastName, dob, r.OrderPlaced))
	}
	return customers, nil
}
