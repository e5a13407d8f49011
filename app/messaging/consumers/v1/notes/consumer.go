package notes

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/ribgsilva/user-notes/business/v1/note"
	"github.com/ribgsilva/user-notes/sys"
	"gocloud.dev/pubsub"
)

// Command is a note operation requested through the queue
type Command struct {
	Type   string          `json:"type"`
	UserId string          `json:"userId"`
	Data   json.RawMessage `json:"data"`
}

type deleteData struct {
	Id string `json:"id"`
}

// Consume handles commands from sub with at most maxWorkers running at once,
// until ctx is cancelled or the subscription fails.
func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	return consume(ctx, sub, maxWorkers, Handle)
}

func consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int, handle func(context.Context, Command) error) error {
	logger := sys.R.Log
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	workers := make(chan int, maxWorkers)

	var err error
	for {
		var message *pubsub.Message
		message, err = sub.Receive(ctx)
		if err != nil {
			break
		}

		workers <- 1
		go func(m *pubsub.Message) {
			defer func() { <-workers }()
			defer m.Ack()

			logger.Infof("message received: %s", string(m.Body))
			var c Command
			if err := json.Unmarshal(m.Body, &c); err != nil {
				logger.Error("failed to parse body: ", err)
				return
			}

			// the message is acked either way, so a shutdown must not abort a command midway
			hCtx, hCancel := handleContext()
			defer hCancel()
			if err := handle(hCtx, c); err != nil {
				logger.Errorf("failed to handle %s command for user %s: %s", c.Type, c.UserId, err)
			}
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// handleContext is not tied to the receive context, it is only bounded by MESSAGING_SHUTDOWN_TIMEOUT
func handleContext() (context.Context, context.CancelFunc) {
	if timeout := sys.Configs.Messaging.ShutdownTimeout; timeout > 0 {
		return context.WithTimeout(context.Background(), timeout)
	}
	return context.WithCancel(context.Background())
}

// Handle applies a single command
func Handle(ctx context.Context, c Command) error {
	if c.UserId == "" {
		return errors.New("command without user")
	}

	switch c.Type {
	case "create":
		var n note.NewNote
		if err := json.Unmarshal(c.Data, &n); err != nil {
			return err
		}
		_, err := note.Create(ctx, c.UserId, n)
		return err
	case "delete":
		var d deleteData
		if err := json.Unmarshal(c.Data, &d); err != nil {
			return err
		}
		return note.Delete(ctx, c.UserId, d.Id)
	default:
		return errors.New("unknown command type: " + c.Type)
	}
}
