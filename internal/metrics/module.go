package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/polkiloo/simpleshop/internal/usecase"
)

// Module provides order metrics backed by the default prometheus registry.
var Module = fx.Provide(
	func() prometheus.Registerer { return prometheus.DefaultRegisterer },
	func() prometheus.Gatherer { return prometheus.DefaultGatherer },
	NewOrderMetrics,
	func(m *OrderMetrics) usecase.IntakeRecorder { return m },
)
