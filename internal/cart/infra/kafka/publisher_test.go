package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/naija-assistant/internal/cart/domain"
)

type recordingWriter struct {
	msgs   []kafka.Message
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublisher_KeysByUserAndEncodesJSON(t *testing.T) {
	w := &recordingWriter{}
	p := NewPublisherWithWriter(w)

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	err := p.Publish(context.Background(), domain.Event{
		Type: domain.EventItemAdded, UserID: "default_user", ProductID: 13, Quantity: 1, At: at,
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "default_user", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "added", string(msg.Headers[0].Value))

	var got domain.Event
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, int64(13), got.ProductID)
	assert.True(t, at.Equal(got.At))

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}
