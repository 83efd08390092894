package usecase

import (
	"context"
	"errors"
	"log/slog"

	domainErrors "github.com/polkiloo/simpleshop/internal/domain/errors"
	"github.com/polkiloo/simpleshop/internal/domain/model"
	"github.com/polkiloo/simpleshop/internal/domain/repository"
)

// IntakeRecorder receives order intake outcomes.
type IntakeRecorder interface {
	OrderProcessed(kind string, newCustomer bool, sum int64)
	OrderFailed(reason string)
}

// OrderIntake runs order requests through validation, a storage session and the processor.
type OrderIntake struct {
	sessions repository.SessionFactory
	reader   repository.CustomerReader
	recorder IntakeRecorder
	logger   *slog.Logger
	maxItems int
}

// NewOrderIntake constructs OrderIntake.
func NewOrderIntake(sessions repository.SessionFactory, reader repository.CustomerReader, recorder IntakeRecorder, logger *slog.Logger, maxItems int) *OrderIntake {
	return &OrderIntake{
		sessions: sessions,
		reader:   reader,
		recorder: recorder,
		logger:   logger,
		maxItems: maxItems,
	}
}

// Place processes request inside a single session and commits it.
func (u *OrderIntake) Place(ctx context.Context, request model.OrderRequest) (model.Receipt, error) {
	if err := ValidateOrderRequest(request, u.maxItems); err != nil {
		u.recorder.OrderFailed(failureReason(err))
		return model.Receipt{}, err
	}

	session, err := u.sessions.Begin(ctx)
	if err != nil {
		u.recorder.OrderFailed(failureReason(err))
		return model.Receipt{}, err
	}

	customers := &trackingRepository{CustomerRepository: session.Customers()}
	created, err := NewOrderProcessor(customers).ProcessOrder(ctx, request)
	if err != nil {
		if rbErr := session.Rollback(ctx); rbErr != nil {
			u.logger.Warn("rollback order session failed", slog.String("error", rbErr.Error()))
		}
		u.recorder.OrderFailed(failureReason(err))
		return model.Receipt{}, err
	}

	if err := session.Commit(ctx); err != nil {
		u.recorder.OrderFailed(failureReason(err))
		return model.Receipt{}, err
	}

	receipt := model.Receipt{NewCustomer: created, Sum: CalculateOrderSum(request)}
	if customers.last != nil {
		receipt.CustomerID = customers.last.ID()
	}

	kind := request.Customer.Kind()
	u.recorder.OrderProcessed(kind, created, receipt.Sum)
	u.logger.Info("order processed",
		slog.String("customer_kind", kind),
		slog.Int64("customer_id", receipt.CustomerID),
		slog.Bool("new_customer", created),
		slog.Int64("sum", receipt.Sum),
	)
	return receipt, nil
}

// Quote validates request and returns its total without touching storage.
func (u *OrderIntake) Quote(request model.OrderRequest) (int64, error) {
	if err := ValidateOrderRequest(request, u.maxItems); err != nil {
		return 0, err
	}
	return CalculateOrderSum(request), nil
}

// Customer returns stored customer by identifier.
func (u *OrderIntake) Customer(ctx context.Context, id int64) (*model.Customer, error) {
	return u.reader.FindByID(ctx, id)
}

// trackingRepository remembers the last customer handed to or returned from the processor.
type trackingRepository struct {
	repository.CustomerRepository
	last *model.Customer
}

func (r *trackingRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	customer, err := r.CustomerRepository.GetByID(ctx, id)
	if err == nil {
		r.last = customer
	}
	return customer, err
}

func (r *trackingRepository) AddCustomer(ctx context.Context, customer *model.Customer) error {
	if err := r.CustomerRepository.AddCustomer(ctx, customer); err != nil {
		return err
	}
	r.last = customer
	return nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidRequest):
		return "invalid"
	case errors.Is(err, domainErrors.ErrNotFound):
		return "not_found"
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		return "duplicate"
	case errors.Is(err, domainErrors.ErrUnsupportedCustomerKind):
		return "unsupported"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "storage"
	}
}
