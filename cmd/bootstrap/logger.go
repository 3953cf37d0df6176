package bootstrap

import (
	"log/slog"

	"karoca-backend/internal/handler/middleware"
	"karoca-backend/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewSlogLogger,
	),
)

func NewSlogLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
