package notifier

import (
	"context"
	"log"
)

// Interface is the notification collaborator: it receives (title, body)
// pairs when something fires. The engine does not depend on delivery
// succeeding.
type Interface interface {
	Notify(ctx context.Context, title, body string) error
}

// ConsoleNotifier logs notifications to stdout. Used when Telegram is not
// configured.
type ConsoleNotifier struct{}

func NewConsoleNotifier() *ConsoleNotifier { return &ConsoleNotifier{} }

func (c *ConsoleNotifier) Notify(_ context.Context, title, body string) error {
	log.Printf("[INFO] notification: %s\n%s", title, body)
	return nil
}
