package discord

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
	apperrors "github.com/igecorp/igego/pkg/errors"
	"github.com/igecorp/igego/pkg/logger"
)

// EventListener receives the client first, then the gateway event value
// (for example *discordgo.MessageCreate).
type EventListener func(c *Client, evt interface{})

type listener struct {
	event string
	fn    EventListener
}

// EventHandler fans gateway events out to listeners bound by event name.
// Names are matched ignoring case and underscores, so "messageCreate",
// "MessageCreate" and "MESSAGE_CREATE" all select *discordgo.MessageCreate.
type EventHandler struct {
	client    *Client
	listeners map[string]listener
	seq       int
	mu        sync.RWMutex
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(client *Client) *EventHandler {
	return &EventHandler{
		client:    client,
		listeners: make(map[string]listener),
	}
}

func normalizeEvent(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", ""))
}

// EventName returns the normalized name of a gateway event value.
func EventName(evt interface{}) string {
	t := reflect.TypeOf(evt)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return normalizeEvent(t.Name())
}

// On adds an anonymous listener and returns a function removing it.
func (eh *EventHandler) On(event string, fn EventListener) func() {
	eh.mu.Lock()
	eh.seq++
	key := fmt.Sprintf("#%d", eh.seq)
	eh.listeners[key] = listener{event: normalizeEvent(event), fn: fn}
	eh.mu.Unlock()

	return func() { eh.Remove(key) }
}

// Bind registers fn under key, replacing whatever was bound to key before.
// The loader keys listeners by file path so a reload never stacks handlers.
func (eh *EventHandler) Bind(key, event string, fn EventListener) {
	eh.mu.Lock()
	defer eh.mu.Unlock()
	eh.listeners[key] = listener{event: normalizeEvent(event), fn: fn}
}

// Remove drops the listener bound to key.
func (eh *EventHandler) Remove(key string) bool {
	eh.mu.Lock()
	defer eh.mu.Unlock()
	_, ok := eh.listeners[key]
	delete(eh.listeners, key)
	return ok
}

func (eh *EventHandler) removePrefix(prefix string) {
	eh.mu.Lock()
	defer eh.mu.Unlock()
	for key := range eh.listeners {
		if strings.HasPrefix(key, prefix) {
			delete(eh.listeners, key)
		}
	}
}

// Size returns the number of bound listeners
func (eh *EventHandler) Size() int {
	eh.mu.RLock()
	defer eh.mu.RUnlock()
	return len(eh.listeners)
}

// Names returns the sorted, de-duplicated event names with listeners.
func (eh *EventHandler) Names() []string {
	eh.mu.RLock()
	seen := make(map[string]struct{}, len(eh.listeners))
	for _, l := range eh.listeners {
		seen[l.event] = struct{}{}
	}
	eh.mu.RUnlock()

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch delivers evt to every matching listener in key order. A panicking
// listener is logged and does not stop the others.
func (eh *EventHandler) Dispatch(evt interface{}) int {
	name := EventName(evt)

	eh.mu.RLock()
	keys := make([]string, 0)
	for key, l := range eh.listeners {
		if l.event == name {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	matched := make([]listener, len(keys))
	for i, key := range keys {
		matched[i] = eh.listeners[key]
	}
	eh.mu.RUnlock()

	for _, l := range matched {
		fn := l.fn
		err := apperrors.Recover("event "+name, func() error {
			fn(eh.client, evt)
			return nil
		})
		if err != nil {
			logger.Error(err.Error(), "EventHandler")
		}
	}
	return len(matched)
}

func (eh *EventHandler) handle(_ *discordgo.Session, evt interface{}) {
	eh.Dispatch(evt)
}
