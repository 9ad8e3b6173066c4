package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded events. It is used
// when Discord (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards events with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// NotifyLayout logs and discards a layout event.
func (n *NoOpNotifier) NotifyLayout(_ context.Context, ev *LayoutEvent) error {
	n.log.Debug("notification discarded (no backend configured)",
		"term", ev.Term,
		"recovered", ev.Recovered,
		"products", ev.Products,
	)
	return nil
}
