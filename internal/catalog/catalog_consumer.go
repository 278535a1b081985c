package catalog

import (
	"context"
	"errors"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// messageReader is the slice of kafka.Reader the consumer loop needs;
// tests substitute a fake.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// ConsumeEvents runs the realtime-channel loop: fetch a message, decode it
// by its event_type header, fold it into the store, commit. Events are
// applied strictly in delivery order with no reordering or batching.
// Undecodable and unknown events are committed and skipped so one bad
// message cannot wedge the stream.
func ConsumeEvents(ctx context.Context, reader messageReader, store *Store, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("catalog consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("catalog consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		kind := getHeader(msg.Headers, "event_type")

		ev, err := DecodeEvent(kind, msg.Value)
		if err != nil {
			if !errors.Is(err, ErrUnknownEvent) {
				log.Warn("skipping undecodable event",
					zap.String("kind", kind),
					zap.Error(err))
			}
			if err := reader.CommitMessages(ctx, msg); err != nil {
				log.Error("commit failed", zap.Error(err))
			}
			continue
		}

		store.Apply(ev)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit failed", zap.Error(err))
		}
	}
}

func getHeader(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
