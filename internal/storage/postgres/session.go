package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/polkiloo/simpleshop/internal/domain/errors"
	"github.com/polkiloo/simpleshop/internal/domain/model"
	"github.com/polkiloo/simpleshop/internal/domain/repository"
)

// trackedCustomer remembers the order flag as last written to the database.
type trackedCustomer struct {
	customer  *model.Customer
	persisted bool
}

// session tracks customers loaded or added in its transaction and writes
// their order flag back on Commit.
type session struct {
	tx      pgx.Tx
	logger  *slog.Logger
	tracked []trackedCustomer
	byID    map[int64]*model.Customer
}

func (s *session) Customers() repository.CustomerRepository {
	return s
}

// GetByID locks the customer row for the rest of the transaction.
func (s *session) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	if c, ok := s.byID[id]; ok {
		return c, nil
	}

	const query = `SELECT id, first_name, last_name, date_of_birth, order_placed FROM customers WHERE id=$1 FOR UPDATE`
	customer, err := scanCustomer(s.tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	s.track(customer)
	return customer, nil
}

func (s *session) AddCustomer(ctx context.Context, customer *model.Customer) error {
	const query = `INSERT INTO customers (first_name, last_name, date_of_birth, order_placed)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id`
	var id int64
	err := s.tx.QueryRow(ctx, query, customer.FirstName(), customer.LastName(), customer.DateOfBirth(), customer.OrderPlaced()).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domainErrors.ErrAlreadyExists
		}
		return domainErrors.NewStorageError("add customer", err)
	}
	customer.AssignID(id)
	s.track(customer)
	return nil
}

// Commit writes changed order flags and commits the transaction.
func (s *session) Commit(ctx context.Context) error {
	const update = `UPDATE customers SET order_placed=$1, updated_at=NOW() WHERE id=$2`
	for _, t := range s.tracked {
		if t.customer.OrderPlaced() == t.persisted {
			continue
		}
		if _, err := s.tx.Exec(ctx, update, t.customer.OrderPlaced(), t.customer.ID()); err != nil {
			s.rollbackQuietly(ctx)
			return domainErrors.NewStorageError("flush customer", err)
		}
	}
	if err := s.tx.Commit(ctx); err != nil {
		return domainErrors.NewStorageError("commit session", err)
	}
	return nil
}

func (s *session) Rollback(ctx context.Context) error {
	if err := s.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return domainErrors.NewStorageError("rollback session", err)
	}
	return nil
}

func (s *session) track(customer *model.Customer) {
	if s.byID == nil {
		s.byID = make(map[int64]*model.Customer)
	}
	s.byID[customer.ID()] = customer
	s.tracked = append(s.tracked, trackedCustomer{customer: customer, persisted: customer.OrderPlaced()})
}

func (s *session) rollbackQuietly(ctx context.Context) {
	if err := s.Rollback(ctx); err != nil {
		s.logger.Warn("rollback after failed flush", slog.String("error", err.Error()))
	}
}
