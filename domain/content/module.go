package content

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/ahbiggie/Bigeen-web/internal/config"
)

var Module = fx.Module("content",
	fx.Provide(NewProvider),
	fx.Invoke(RegisterWatchLifecycle),
)

// NewProvider serves CONTENT_FILE when set, otherwise the embedded copy.
func NewProvider(cfg *config.Config, log *slog.Logger) (*Provider, error) {
	if cfg.Content.File == "" {
		return NewStaticProvider(Default()), nil
	}
	log.Info("loading content file", slog.String("path", cfg.Content.File))
	return NewFileProvider(cfg.Content.File, log)
}

// RegisterWatchLifecycle starts the file watcher when CONTENT_WATCH is set.
func RegisterWatchLifecycle(lc fx.Lifecycle, p *Provider, cfg *config.Config) {
	if !cfg.Content.Watch || cfg.Content.File == "" {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return p.Watch()
		},
		OnStop: p.Close,
	})
}
