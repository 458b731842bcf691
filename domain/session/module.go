package session

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/ahbiggie/Bigeen-web/domain/contact"
	"github.com/ahbiggie/Bigeen-web/internal/config"
)

var Module = fx.Module("session",
	fx.Provide(NewManagerFromConfig),
)

func NewManagerFromConfig(cfg *config.Config, factory *contact.Factory, log *slog.Logger) (*Manager, error) {
	return NewManager(cfg.Session, factory, log)
}
