package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNilProducerIsNoOp(t *testing.T) {
	t.Parallel()

	var p *Producer
	assert.NoError(t, p.Publish(context.Background(), TopicUserEvents, "key", map[string]any{"type": "user_registered"}))
	assert.NoError(t, p.Close())
}

func TestNewProducer_NoBrokers(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NewProducer(nil))
	assert.Nil(t, NewProducer([]string{}))
}
