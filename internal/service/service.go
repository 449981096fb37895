package service

import (
	"context"
	"time"

	"github.com/Maaz9703/maazweb-api/internal/events"
	"github.com/Maaz9703/maazweb-api/internal/logging"
)

// publish sends a domain event best-effort: failures are logged and never
// surfaced to the caller.
func publish(ctx context.Context, p *events.Producer, topic, key string, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := p.Publish(pubCtx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "topic", topic, "error", err)
	}
}
