package bootstrap

import (
	"log/slog"

	"karoca-backend/internal/infra/mailer"
	"karoca-backend/internal/pkg/config"
	"karoca-backend/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewMailer,
	),
)

func NewMailer(cfg config.Config, logger *slog.Logger) commands.Mailer {
	return mailer.New(cfg.Mail, cfg.Booking, logger)
}
