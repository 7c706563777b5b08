package mailer

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/innovshop/marketplace/internal/config"
	"github.com/innovshop/marketplace/internal/usecase"
)

// Module exposes the mail client as the notifier implementation.
var Module = fx.Options(
	fx.Provide(newClient),
	fx.Provide(func(c *Client) usecase.Notifier { return c }),
)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (*Client, error) {
	return NewClient(p.Config.MailAPIAddress, p.Config.MailAPIKey, p.Config.MailSender, p.Logger)
}
