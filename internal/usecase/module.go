package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/simpleshop/internal/config"
	"github.com/polkiloo/simpleshop/internal/domain/repository"
)

// Module provides order intake use cases to the fx container.
var Module = fx.Provide(newOrderIntake)

type intakeParams struct {
	fx.In

	Store    repository.Store
	Recorder IntakeRecorder
	Logger   *slog.Logger
	Config   *config.Config
}

func newOrderIntake(p intakeParams) *OrderIntake {
	return NewOrderIntake(p.Store, p.Store, p.Recorder, p.Logger, p.Config.MaxOrderItems)
}
