package note

import (
	"context"
	"encoding/json"

	"github.com/ribgsilva/user-notes/sys"
	"gocloud.dev/pubsub"
)

// Publish sends e to the events topic when one is configured. Failures are logged only.
func Publish(ctx context.Context, e Event) {
	topic := sys.R.Events
	if topic == nil {
		return
	}
	logger := sys.R.Log

	body, err := json.Marshal(e)
	if err != nil {
		logger.Errorf("failed to parse %s event: %s", e.Type, err)
		return
	}

	pubCtx := ctx
	if timeout := sys.Configs.Events.PublishTimeout; timeout > 0 {
		var pubCancel context.CancelFunc
		pubCtx, pubCancel = context.WithTimeout(ctx, timeout)
		defer pubCancel()
	}
	if err := topic.Send(pubCtx, &pubsub.Message{
		Body:     body,
		Metadata: map[string]string{"type": e.Type},
	}); err != nil {
		logger.Errorf("failed to publish %s event for user %s: %s", e.Type, e.UserId, err)
	}
}
