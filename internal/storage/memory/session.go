package memory

import (
	"context"
	"errors"

	domainErrors "github.com/polkiloo/simpleshop/internal/domain/errors"
	"github.com/polkiloo/simpleshop/internal/domain/model"
	"github.com/polkiloo/simpleshop/internal/domain/repository"
)

var errSessionClosed = errors.New("session already closed")

type session struct {
	store  *Store
	held   map[int64]chan struct{}
	added  []int64
	closed bool
}

func (s *session) Customers() repository.CustomerRepository {
	return s
}

// GetByID returns the live customer handle and keeps it locked for the session.
func (s *session) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	if s.closed {
		return nil, errSessionClosed
	}
	if _, ok := s.held[id]; !ok {
		lock, ok := s.store.lockFor(id)
		if !ok {
			return nil, domainErrors.ErrNotFound
		}
		if err := acquire(ctx, lock); err != nil {
			return nil, err
		}
		s.held[id] = lock
	}

	s.store.mu.RLock()
	c, ok := s.store.customers[id]
	s.store.mu.RUnlock()
	if !ok {
		// removed by a rolled back session between lock lookup and acquisition
		release(s.held[id])
		delete(s.held, id)
		return nil, domainErrors.ErrNotFound
	}
	return c, nil
}

// AddCustomer stores customer and assigns its identifier. A customer with the
// same name and date of birth is rejected with ErrAlreadyExists.
func (s *session) AddCustomer(ctx context.Context, customer *model.Customer) error {
	if s.closed {
		return errSessionClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, exists := s.store.byProfile[keyOf(customer)]; exists {
		return domainErrors.ErrAlreadyExists
	}
	if customer.ID() != 0 {
		if _, exists := s.store.customers[customer.ID()]; exists {
			return domainErrors.ErrAlreadyExists
		}
	}
	s.store.insertLocked(customer)

	lock := s.store.locks[customer.ID()]
	lock <- struct{}{}
	s.held[customer.ID()] = lock
	s.added = append(s.added, customer.ID())
	return nil
}

// Commit releases the session locks. Changes are already visible.
func (s *session) Commit(context.Context) error {
	if s.closed {
		return errSessionClosed
	}
	s.close()
	return nil
}

// Rollback removes customers added in the session. Changes made to fetched
// customers are not reverted.
func (s *session) Rollback(context.Context) error {
	if s.closed {
		return nil
	}

	s.store.mu.Lock()
	for _, id := range s.added {
		if c, ok := s.store.customers[id]; ok {
			delete(s.store.byProfile, keyOf(c))
			delete(s.store.customers, id)
			delete(s.store.locks, id)
		}
	}
	s.store.mu.Unlock()

	s.close()
	return nil
}

func (s *session) close() {
	for id, lock := range s.held {
		release(lock)
		delete(s.held, id)
	}
	s.closed = true
}
