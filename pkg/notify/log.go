package notify

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/vaultshare/pkg/slogx"
)

// LogNotifier writes each message as a structured log line instead of
// delivering it. The rendered template is validated but not logged.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n *LogNotifier) Send(ctx context.Context, msg Message) error {
	if _, err := Render(msg); err != nil {
		return err
	}

	log := n.Logger
	if log == nil {
		log = slogx.FromContext(ctx)
	}
	log.InfoContext(ctx, "notification",
		"to", msg.To,
		"subject", msg.Subject,
		"template", msg.Template,
		"context", msg.Context,
	)
	return nil
}
