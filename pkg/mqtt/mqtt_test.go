package mqtt

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doneToken struct{ err error }

func (t doneToken) Wait() bool                     { return true }
func (t doneToken) WaitTimeout(time.Duration) bool { return true }
func (t doneToken) Error() error                   { return t.err }
func (t doneToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

type message struct {
	topic   string
	payload []byte
}

func (m message) Duplicate() bool   { return false }
func (m message) Qos() byte         { return 0 }
func (m message) Retained() bool    { return false }
func (m message) Topic() string     { return m.topic }
func (m message) MessageID() uint16 { return 0 }
func (m message) Payload() []byte   { return m.payload }
func (m message) Ack()              {}

// memoryBroker is an in-process paho.Client delivering publishes
// synchronously to matching subscriptions.
type memoryBroker struct {
	paho.Client

	mu        sync.Mutex
	subs      map[string]paho.MessageHandler
	published []message
	connected bool
}

func newMemoryBroker() *memoryBroker {
	return &memoryBroker{subs: make(map[string]paho.MessageHandler), connected: true}
}

func (b *memoryBroker) IsConnected() bool { return b.connected }

func (b *memoryBroker) Disconnect(uint) { b.connected = false }

func (b *memoryBroker) Subscribe(topic string, _ byte, cb paho.MessageHandler) paho.Token {
	b.mu.Lock()
	b.subs[topic] = cb
	b.mu.Unlock()
	return doneToken{}
}

func (b *memoryBroker) Unsubscribe(topics ...string) paho.Token {
	b.mu.Lock()
	for _, t := range topics {
		delete(b.subs, t)
	}
	b.mu.Unlock()
	return doneToken{}
}

func (b *memoryBroker) Publish(topic string, _ byte, _ bool, payload interface{}) paho.Token {
	msg := message{topic: topic, payload: payload.([]byte)}

	b.mu.Lock()
	b.published = append(b.published, msg)
	var handlers []paho.MessageHandler
	for filter, cb := range b.subs {
		if topicMatch(filter, topic) {
			handlers = append(handlers, cb)
		}
	}
	b.mu.Unlock()

	for _, cb := range handlers {
		cb(b, msg)
	}
	return doneToken{}
}

func topicMatch(filter, topic string) bool {
	fp := strings.Split(filter, "/")
	tp := strings.Split(topic, "/")
	for i, part := range fp {
		if part == "#" {
			return true
		}
		if i >= len(tp) || (part != "+" && part != tp[i]) {
			return false
		}
	}
	return len(fp) == len(tp)
}

func TestTopic(t *testing.T) {
	b := New(newMemoryBroker(), "")
	assert.Equal(t, "ige/events/load", b.Topic("events", "load"))

	b = New(newMemoryBroker(), "bots/dev")
	assert.Equal(t, "bots/dev/request/reload", b.Topic("request", "reload"))
}

func TestNotifyPublishesJSON(t *testing.T) {
	broker := newMemoryBroker()
	b := New(broker, "")

	require.NoError(t, b.Notify("load", map[string]int{"loaded": 3}))

	require.Len(t, broker.published, 1)
	assert.Equal(t, "ige/events/load", broker.published[0].topic)
	assert.JSONEq(t, `{"loaded":3}`, string(broker.published[0].payload))
}

func TestRequestResponse(t *testing.T) {
	broker := newMemoryBroker()
	b := New(broker, "")

	require.NoError(t, b.On("echo", func(payload json.RawMessage) (interface{}, error) {
		var in map[string]string
		if err := json.Unmarshal(payload, &in); err != nil {
			return nil, err
		}
		return "hello " + in["name"], nil
	}))

	data, err := b.Request("echo", map[string]string{"name": "ige"}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "hello ige", data)
}

func TestRequestHandlerError(t *testing.T) {
	b := New(newMemoryBroker(), "")

	require.NoError(t, b.On("fail", func(json.RawMessage) (interface{}, error) {
		return nil, errors.New("nope")
	}))

	_, err := b.Request("fail", nil, time.Second)
	assert.EqualError(t, err, "nope")
}

func TestRequestHandlerPanic(t *testing.T) {
	b := New(newMemoryBroker(), "")

	require.NoError(t, b.On("explode", func(json.RawMessage) (interface{}, error) {
		panic("boom")
	}))

	_, err := b.Request("explode", nil, time.Second)
	assert.EqualError(t, err, "panic in mqtt request explode: boom")
}

// brokenBroker panics on every publish.
type brokenBroker struct {
	*memoryBroker
}

func (b brokenBroker) Publish(string, byte, bool, interface{}) paho.Token {
	panic("broker gone")
}

func TestOnRecoversCallbackPanic(t *testing.T) {
	broker := brokenBroker{newMemoryBroker()}
	b := New(broker, "")

	var calls int
	require.NoError(t, b.On("reload", func(json.RawMessage) (interface{}, error) {
		calls++
		return "ok", nil
	}))

	cb := broker.subs["ige/request/reload"]
	require.NotNil(t, cb)
	assert.NotPanics(t, func() {
		cb(broker, message{topic: "ige/request/reload", payload: []byte(`{"correlationId":"1"}`)})
	})
	assert.Equal(t, 1, calls)
}

func TestRequestTimeout(t *testing.T) {
	b := New(newMemoryBroker(), "")

	_, err := b.Request("nobody", nil, 20*time.Millisecond)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestDestroy(t *testing.T) {
	broker := newMemoryBroker()
	b := New(broker, "")

	assert.True(t, b.IsConnected())
	b.Destroy()
	assert.False(t, b.IsConnected())
	b.Destroy()
}
