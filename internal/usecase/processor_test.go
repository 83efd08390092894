package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/simpleshop/internal/domain/errors"
	"github.com/polkiloo/simpleshop/internal/domain/model"
	"github.com/polkiloo/simpleshop/internal/test"
)

var birthday = time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestProcessOrderRegisteredCustomer(t *testing.T) {
	existing := model.RestoreCustomer(1, "Anna", "Nowak", birthday, false)
	repo := test.NewCustomerRepositoryStub(existing)

	created, err := NewOrderProcessor(repo).ProcessOrder(context.Background(), model.OrderRequest{
		Customer: model.RegisteredCustomerRef{ID: 1},
		Items:    []model.OrderItem{{Name: "book", Price: 30}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatal("registered customer must not be reported as created")
	}
	if !existing.OrderPlaced() {
		t.Fatal("expected order flag on fetched customer")
	}
	if repo.GetCallCount() != 1 || repo.AddCallCount() != 0 {
		t.Fatalf("unexpected repository calls: get=%d add=%d", repo.GetCallCount(), repo.AddCallCount())
	}
	if repo.GetCalls[0] != 1 {
		t.Fatalf("expected lookup of id 1, got %d", repo.GetCalls[0])
	}
}

func TestProcessOrderRegisteredCustomerTwice(t *testing.T) {
	existing := model.RestoreCustomer(1, "Anna", "Nowak", birthday, true)
	repo := test.NewCustomerRepositoryStub(existing)
	processor := NewOrderProcessor(repo)

	for i := 0; i < 2; i++ {
		created, err := processor.ProcessOrder(context.Background(), model.OrderRequest{Customer: model.RegisteredCustomerRef{ID: 1}})
		if err != nil || created {
			t.Fatalf("unexpected result: created=%v err=%v", created, err)
		}
	}
	if !existing.OrderPlaced() {
		t.Fatal("expected order flag to stay set")
	}
}

func TestProcessOrderNewCustomer(t *testing.T) {
	repo := test.NewCustomerRepositoryStub()
	request := test.PolishCustomerOrder(1)
	if ref := request.Customer.(model.NewCustomerRef); ref.Country != "Poland" {
		t.Fatalf("expected customer from Poland, got %q", ref.Country)
	}

	created, err := NewOrderProcessor(repo).ProcessOrder(context.Background(), request)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("expected customer to be created")
	}
	if repo.GetCallCount() != 0 || repo.AddCallCount() != 1 {
		t.Fatalf("unexpected repository calls: get=%d add=%d", repo.GetCallCount(), repo.AddCallCount())
	}

	added := repo.Added[0]
	if added.FirstName() != "Dawid" || added.LastName() != "Kowalski" {
		t.Fatalf("unexpected name: %s %s", added.FirstName(), added.LastName())
	}
	if !added.DateOfBirth().Equal(birthday) {
		t.Fatalf("unexpected date of birth: %v", added.DateOfBirth())
	}
	if !added.OrderPlaced() {
		t.Fatal("expected order flag on added customer")
	}
	if added.ID() == 0 {
		t.Fatal("expected repository to assign identifier")
	}
}

func TestProcessOrderMarksOrderAfterAdd(t *testing.T) {
	repo := test.NewCustomerRepositoryStub()
	repo.AddCustomerFn = func(_ context.Context, c *model.Customer) error {
		if c.OrderPlaced() {
			t.Fatal("customer must be added before the order is marked")
		}
		return nil
	}

	if _, err := NewOrderProcessor(repo).ProcessOrder(context.Background(), test.PolishCustomerOrder(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.Added[0].OrderPlaced() {
		t.Fatal("expected order flag after add")
	}
}

func TestProcessOrderRandomNewCustomer(t *testing.T) {
	repo := test.NewCustomerRepositoryStub()
	ref := test.RandomNewCustomerRef()

	created, err := NewOrderProcessor(repo).ProcessOrder(context.Background(), model.OrderRequest{Customer: ref, Items: test.RandomItems(5)})
	if err != nil || !created {
		t.Fatalf("unexpected result: created=%v err=%v", created, err)
	}
	added := repo.Added[0]
	if added.FirstName() != ref.FirstName || added.LastName() != ref.LastName || !added.DateOfBirth().Equal(ref.DateOfBirth) {
		t.Fatalf("stored profile does not match request: %+v", ref)
	}
}

func TestProcessOrderPointerReferences(t *testing.T) {
	existing := model.RestoreCustomer(5, "Anna", "Nowak", birthday, false)
	repo := test.NewCustomerRepositoryStub(existing)
	processor := NewOrderProcessor(repo)

	created, err := processor.ProcessOrder(context.Background(), model.OrderRequest{Customer: &model.RegisteredCustomerRef{ID: 5}})
	if err != nil || created || !existing.OrderPlaced() {
		t.Fatalf("unexpected result: created=%v err=%v", created, err)
	}

	ref := test.RandomNewCustomerRef()
	created, err = processor.ProcessOrder(context.Background(), model.OrderRequest{Customer: &ref})
	if err != nil || !created {
		t.Fatalf("unexpected result: created=%v err=%v", created, err)
	}
}

func TestProcessOrderPropagatesRepositoryErrors(t *testing.T) {
	storageErr := domainErrors.NewStorageError("get customer", errors.New("connection reset"))

	t.Run("not found", func(t *testing.T) {
		repo := test.NewCustomerRepositoryStub()
		created, err := NewOrderProcessor(repo).ProcessOrder(context.Background(), model.OrderRequest{Customer: model.RegisteredCustomerRef{ID: 42}})
		if err != domainErrors.ErrNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
		if created {
			t.Fatal("unexpected created flag")
		}
		if repo.AddCallCount() != 0 {
			t.Fatal("AddCustomer must not be called")
		}
	})

	t.Run("lookup failure", func(t *testing.T) {
		repo := test.NewCustomerRepositoryStub()
		repo.GetByIDFn = func(context.Context, int64) (*model.Customer, error) { return nil, storageErr }
		if _, err := NewOrderProcessor(repo).ProcessOrder(context.Background(), model.OrderRequest{Customer: model.RegisteredCustomerRef{ID: 1}}); err != storageErr {
			t.Fatalf("expected storage error unchanged, got %v", err)
		}
	})

	t.Run("add failure", func(t *testing.T) {
		repo := test.NewCustomerRepositoryStub()
		repo.AddCustomerFn = func(context.Context, *model.Customer) error { return domainErrors.ErrAlreadyExists }

		created, err := NewOrderProcessor(repo).ProcessOrder(context.Background(), test.PolishCustomerOrder(2))
		if err != domainErrors.ErrAlreadyExists {
			t.Fatalf("expected already exists, got %v", err)
		}
		if created {
			t.Fatal("unexpected created flag")
		}
		if repo.Added[0].OrderPlaced() {
			t.Fatal("order must not be marked when add fails")
		}
	})
}

func TestProcessOrderUnsupportedCustomerKind(t *testing.T) {
	var nilRegistered *model.RegisteredCustomerRef
	cases := map[string]model.CustomerRef{
		"nil":         nil,
		"nil pointer": nilRegistered,
	}

	for name, ref := range cases {
		t.Run(name, func(t *testing.T) {
			repo := test.NewCustomerRepositoryStub()
			created, err := NewOrderProcessor(repo).ProcessOrder(context.Background(), model.OrderRequest{Customer: ref})
			if !errors.Is(err, domainErrors.ErrUnsupportedCustomerKind) {
				t.Fatalf("expected unsupported kind, got %v", err)
			}
			if created {
				t.Fatal("unexpected created flag")
			}
			if repo.GetCallCount() != 0 || repo.AddCallCount() != 0 {
				t.Fatal("repository must not be touched")
			}
		})
	}
}
