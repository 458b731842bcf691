package cli

import (
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/ahbiggie/Bigeen-web/domain/contact"
	"github.com/ahbiggie/Bigeen-web/domain/content"
	"github.com/ahbiggie/Bigeen-web/domain/health"
	"github.com/ahbiggie/Bigeen-web/domain/scheduler"
	"github.com/ahbiggie/Bigeen-web/domain/session"
	"github.com/ahbiggie/Bigeen-web/internal/config"
	"github.com/ahbiggie/Bigeen-web/internal/handlers"
	"github.com/ahbiggie/Bigeen-web/internal/server"
	"github.com/ahbiggie/Bigeen-web/pkg/logger"
	"github.com/ahbiggie/Bigeen-web/pkg/tracing"
)

// appOptions assembles the website. extra is appended last.
func appOptions(extra ...fx.Option) []fx.Option {
	opts := []fx.Option{
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		tracing.Module,
		server.Module,

		// Domain modules
		content.Module,
		contact.Module,
		session.Module,
		scheduler.Module,
		health.Module,
		handlers.Module,
	}
	return append(opts, extra...)
}
