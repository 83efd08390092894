package memory

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/simpleshop/internal/domain/errors"
	"github.com/polkiloo/simpleshop/internal/domain/model"
	"github.com/polkiloo/simpleshop/internal/domain/repository"
)

// Store keeps customers in process memory. Sessions hand out live customer
// handles, so changes are visible as soon as they are made; a per-customer
// lock is held by a session from first access until Commit or Rollback.
type Store struct {
	mu        sync.RWMutex
	customers map[int64]*model.Customer
	byProfile map[profileKey]int64
	locks     map[int64]chan struct{}
	nextID    int64
}

type profileKey struct {
	firstName   string
	lastName    string
	dateOfBirth string
}

func keyOf(c *model.Customer) profileKey {
	return profileKey{
		firstName:   c.FirstName(),
		lastName:    c.LastName(),
		dateOfBirth: c.DateOfBirth().Format(time.DateOnly),
	}
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		customers: make(map[int64]*model.Customer),
		byProfile: make(map[profileKey]int64),
		locks:     make(map[int64]chan struct{}),
		nextID:    1,
	}
}

// Begin opens a new order session.
func (s *Store) Begin(ctx context.Context) (repository.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &session{store: s, held: make(map[int64]chan struct{})}, nil
}

// FindByID returns a snapshot of the stored customer.
func (s *Store) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	lock, ok := s.lockFor(id)
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if err := acquire(ctx, lock); err != nil {
		return nil, err
	}
	defer release(lock)

	s.mu.RLock()
	c, ok := s.customers[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return model.RestoreCustomer(c.ID(), c.FirstName(), c.LastName(), c.DateOfBirth(), c.OrderPlaced()), nil
}

// Seed inserts customers as-is. Customers without identifier get the next free one.
func (s *Store) Seed(customers ...*model.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range customers {
		if _, exists := s.byProfile[keyOf(c)]; exists {
			return domainErrors.ErrAlreadyExists
		}
		if c.ID() != 0 {
			if _, exists := s.customers[c.ID()]; exists {
				return domainErrors.ErrAlreadyExists
			}
		}
		s.insertLocked(c)
	}
	return nil
}

// Len returns the number of stored customers.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.customers)
}

// HealthCheck always succeeds for the in-memory store.
func (s *Store) HealthCheck(context.Context) error {
	return nil
}

// Close is a no-op kept for parity with persistent stores.
func (s *Store) Close() {}

func (s *Store) insertLocked(c *model.Customer) {
	c.AssignID(s.nextID)
	if c.ID() >= s.nextID {
		s.nextID = c.ID() + 1
	}
	s.customers[c.ID()] = c
	s.byProfile[keyOf(c)] = c.ID()
	s.locks[c.ID()] = make(chan struct{}, 1)
}

func (s *Store) lockFor(id int64) (chan struct{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lock, ok := s.locks[id]
	return lock, ok
}

func acquire(ctx context.Context, lock chan struct{}) error {
	select {
	case lock <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func release(lock chan struct{}) {
	<-lock
}

var _ repository.Store = (*Store)(nil)
