package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/simpleshop/internal/app"
	"github.com/polkiloo/simpleshop/internal/config"
	"github.com/polkiloo/simpleshop/internal/logger"
	"github.com/polkiloo/simpleshop/internal/metrics"
	"github.com/polkiloo/simpleshop/internal/server/http/router"
	"github.com/polkiloo/simpleshop/internal/storage"
	"github.com/polkiloo/simpleshop/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		storage.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
