package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/simpleshop/internal/domain/errors"
	"github.com/polkiloo/simpleshop/internal/domain/model"
	"github.com/polkiloo/simpleshop/internal/domain/repository"
)

// CustomerRepositoryStub keeps customers in a map and records every call.
type CustomerRepositoryStub struct {
	GetByIDFn     func(context.Context, int64) (*model.Customer, error)
	AddCustomerFn func(context.Context, *model.Customer) error

	Customers map[int64]*model.Customer
	Next      int64

	mu       sync.Mutex
	GetCalls []int64
	Added    []*model.Customer
}

// NewCustomerRepositoryStub constructs stub holding the supplied customers.
func NewCustomerRepositoryStub(customers ...*model.Customer) *CustomerRepositoryStub {
	s := &CustomerRepositoryStub{Customers: make(map[int64]*model.Customer), Next: 1}
	for _, c := range customers {
		s.Customers[c.ID()] = c
		if c.ID() >= s.Next {
			s.Next = c.ID() + 1
		}
	}
	return s
}

// GetByID returns the stored handle or not found.
func (s *CustomerRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	s.mu.Lock()
	s.GetCalls = append(s.GetCalls, id)
	s.mu.Unlock()

	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.Customers[id]; ok {
		return c, nil
	}
	return nil, domainErrors.ErrNotFound
}

// AddCustomer stores customer and assigns the next identifier.
func (s *CustomerRepositoryStub) AddCustomer(ctx context.Context, customer *model.Customer) error {
	s.mu.Lock()
	s.Added = append(s.Added, customer)
	s.mu.Unlock()

	if s.AddCustomerFn != nil {
		return s.AddCustomerFn(ctx, customer)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Customers == nil {
		s.Customers = make(map[int64]*model.Customer)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	customer.AssignID(s.Next)
	s.Next++
	s.Customers[customer.ID()] = customer
	return nil
}

// GetCallCount reports how many times GetByID was invoked.
func (s *CustomerRepositoryStub) GetCallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.GetCalls)
}

// AddCallCount reports how many times AddCustomer was invoked.
func (s *CustomerRepositoryStub) AddCallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Added)
}

// SessionStub wraps a customer repository and records how the session ended.
type SessionStub struct {
	Repo        repository.CustomerRepository
	CommitErr   error
	RollbackErr error

	Committed  bool
	RolledBack bool
}

// Customers returns wrapped repository.
func (s *SessionStub) Customers() repository.CustomerRepository {
	return s.Repo
}

// Commit marks session committed unless CommitErr is set.
func (s *SessionStub) Commit(context.Context) error {
	if s.CommitErr != nil {
		return s.CommitErr
	}
	s.Committed = true
	return nil
}

// Rollback marks session rolled back.
func (s *SessionStub) Rollback(context.Context) error {
	s.RolledBack = true
	return s.RollbackErr
}

// StoreStub hands out sessions over a shared repository stub.
type StoreStub struct {
	Repo      *CustomerRepositoryStub
	BeginErr  error
	CommitErr error
	HealthErr error

	Sessions []*SessionStub
	Closed   bool
}

// NewStoreStub constructs store around a fresh repository stub.
func NewStoreStub(customers ...*model.Customer) *StoreStub {
	return &StoreStub{Repo: NewCustomerRepositoryStub(customers...)}
}

// Begin opens a new session stub.
func (s *StoreStub) Begin(context.Context) (repository.Session, error) {
	if s.BeginErr != nil {
		return nil, s.BeginErr
	}
	session := &SessionStub{Repo: s.Repo, CommitErr: s.CommitErr}
	s.Sessions = append(s.Sessions, session)
	return session, nil
}

// FindByID reads customer directly from repository stub.
func (s *StoreStub) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	return s.Repo.GetByID(ctx, id)
}

// HealthCheck returns configured health error.
func (s *StoreStub) HealthCheck(context.Context) error {
	return s.HealthErr
}

// Close records store shutdown.
func (s *StoreStub) Close() {
	s.Closed = true
}

var (
	_ repository.CustomerRepository = (*CustomerRepositoryStub)(nil)
	_ repository.Session            = (*SessionStub)(nil)
	_ repository.Store              = (*StoreStub)(nil)
)
