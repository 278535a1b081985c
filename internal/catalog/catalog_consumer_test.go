package catalog

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

// fakeReader feeds a fixed message sequence, then blocks until the context
// is cancelled like a real reader with an empty topic would.
type fakeReader struct {
	mu        sync.Mutex
	msgs      []kafka.Message
	committed int
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	f.mu.Lock()
	if len(f.msgs) == 0 {
		f.mu.Unlock()
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	msg := f.msgs[0]
	f.msgs = f.msgs[1:]
	f.mu.Unlock()
	return msg, nil
}

func (f *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.committed += len(msgs)
	return nil
}

func (f *fakeReader) commitCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.committed
}

func eventMessage(kind, payload string) kafka.Message {
	return kafka.Message{
		Headers: []kafka.Header{{Key: "event_type", Value: []byte(kind)}},
		Value:   []byte(payload),
	}
}

func TestConsumeEvents_AppliesInDeliveryOrder(t *testing.T) {
	store := NewStore(nil)
	store.Replace([]Product{{ID: 1, Name: "Serum", Variants: []Variant{{VariantID: 10, Price: 100}}}})

	reader := &fakeReader{msgs: []kafka.Message{
		eventMessage(EventVariantCreated, `{"variantId":20,"productid":1,"variant":"50ml","price":80,"stock":2}`),
		eventMessage(EventVariantUpdated, `{"variantId":"20","productid":"1","price":75}`),
		eventMessage("order:created", `{}`),     // unknown kind, skipped
		eventMessage(EventVariantDeleted, `{"variantId":10,"productid":1}`),
	}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ConsumeEvents(ctx, reader, store, nil)
		close(done)
	}()

	// Wait until everything is committed, then stop the loop.
	assert.Eventually(t, func() bool { return reader.commitCount() == 4 }, waitFor, tick)
	cancel()
	<-done

	p, ok := store.Get(1)
	require.True(t, ok)
	require.Len(t, p.Variants, 1)
	assert.Equal(t, ID(20), p.Variants[0].VariantID)
	assert.Equal(t, 75.0, p.Price)
}

func TestConsumeEvents_BadPayloadCommittedAndSkipped(t *testing.T) {
	store := NewStore(nil)
	store.Replace([]Product{{ID: 1, Price: 10}})

	reader := &fakeReader{msgs: []kafka.Message{
		eventMessage(EventVariantCreated, `{broken`),
		eventMessage(EventProductDeleted, `1`),
	}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ConsumeEvents(ctx, reader, store, nil)
		close(done)
	}()

	assert.Eventually(t, func() bool { return reader.commitCount() == 2 }, waitFor, tick)
	cancel()
	<-done

	assert.Empty(t, store.List(), "the valid event after the bad one still lands")
}
