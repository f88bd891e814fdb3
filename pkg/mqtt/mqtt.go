// Package mqtt connects the bot to an MQTT broker. It publishes bot
// notifications and answers request/response calls from other services.
package mqtt

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	apperrors "github.com/igecorp/igego/pkg/errors"
	"github.com/igecorp/igego/pkg/logger"
)

// DefaultNamespace prefixes every topic used by the bridge.
const DefaultNamespace = "ige"

const connectTimeout = 10 * time.Second

// ErrTimeout is returned by Request when no response arrives in time.
var ErrTimeout = errors.New("mqtt request timed out")

// Request is the envelope of a request message
type Request struct {
	CorrelationID string          `json:"correlationId"`
	Payload       json.RawMessage `json:"payload,omitempty"`
}

// Response is the envelope of a response message
type Response struct {
	CorrelationID string      `json:"correlationId"`
	Data          interface{} `json:"data"`
	Error         string      `json:"error,omitempty"`
}

// RequestHandler answers a request. The returned value is sent back as the
// response data.
type RequestHandler func(payload json.RawMessage) (interface{}, error)

// Options configures Connect.
type Options struct {
	Host      string
	Port      string
	Username  string
	Password  string
	ClientID  string
	Namespace string
}

// Bridge wraps a paho client with namespaced topics and JSON envelopes.
type Bridge struct {
	client    paho.Client
	namespace string
	pending   map[string]chan Response
	mu        sync.Mutex
}

// Connect dials the broker and waits for the first connection.
func Connect(opts Options) (*Bridge, error) {
	if opts.ClientID == "" {
		opts.ClientID = "igego"
	}
	uniqueID := fmt.Sprintf("%s_%s", opts.ClientID, uuid.NewString())

	clientOpts := paho.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%s", opts.Host, opts.Port)).
		SetClientID(uniqueID).
		SetUsername(opts.Username).
		SetPassword(opts.Password).
		SetAutoReconnect(true).
		SetOnConnectHandler(func(paho.Client) {
			logger.Success("Connected to MQTT broker as "+opts.ClientID, "MQTT")
		}).
		SetConnectionLostHandler(func(_ paho.Client, err error) {
			logger.Error(fmt.Sprintf("MQTT connection lost: %v", err), "MQTT")
		})

	client := paho.NewClient(clientOpts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("connect to mqtt broker: %w", ErrTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to mqtt broker: %w", err)
	}

	return New(client, opts.Namespace), nil
}

// New wraps an existing client. An empty namespace selects DefaultNamespace.
func New(client paho.Client, namespace string) *Bridge {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Bridge{
		client:    client,
		namespace: namespace,
		pending:   make(map[string]chan Response),
	}
}

// Topic joins parts under the bridge namespace
func (b *Bridge) Topic(parts ...string) string {
	return b.namespace + "/" + strings.Join(parts, "/")
}

// IsConnected returns true if connected to the broker
func (b *Bridge) IsConnected() bool {
	return b.client != nil && b.client.IsConnected()
}

// Destroy closes the connection
func (b *Bridge) Destroy() {
	if !b.IsConnected() {
		logger.Warn("MQTT client was not connected", "MQTT")
		return
	}
	b.client.Disconnect(250)
	logger.System("MQTT connection closed.", "MQTT")
}

// Publish sends payload as JSON to topic.
func (b *Bridge) Publish(topic string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	token := b.client.Publish(topic, 0, false, data)
	token.Wait()
	return token.Error()
}

// Notify publishes payload on <namespace>/events/<event>.
func (b *Bridge) Notify(event string, payload interface{}) error {
	return b.Publish(b.Topic("events", event), payload)
}

// On answers requests sent to <namespace>/request/<name>. Responses go to
// <namespace>/response/<name>/<correlationId>. A panicking handler is
// answered with the panic as the response error.
func (b *Bridge) On(name string, handler RequestHandler) error {
	topic := b.Topic("request", name)

	token := b.client.Subscribe(topic, 0, func(_ paho.Client, msg paho.Message) {
		defer apperrors.RecoverMiddleware()()

		var req Request
		if err := json.Unmarshal(msg.Payload(), &req); err != nil {
			logger.Error(fmt.Sprintf("Error parsing MQTT request on %s: %v", msg.Topic(), err), "MQTT")
			return
		}

		resp := Response{CorrelationID: req.CorrelationID}
		var data interface{}
		err := apperrors.Recover("mqtt request "+name, func() error {
			var err error
			data, err = handler(req.Payload)
			return err
		})
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.Data = data
		}

		if err := b.Publish(b.Topic("response", name, req.CorrelationID), resp); err != nil {
			logger.Error(fmt.Sprintf("Error answering MQTT request %s: %v", name, err), "MQTT")
		}
	})
	token.Wait()
	return token.Error()
}

// Request sends payload to the handler registered under name and waits for
// its response.
func (b *Bridge) Request(name string, payload interface{}, timeout time.Duration) (interface{}, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	correlationID := uuid.NewString()
	responseTopic := b.Topic("response", name, correlationID)
	ch := make(chan Response, 1)

	b.mu.Lock()
	b.pending[correlationID] = ch
	b.mu.Unlock()
	defer func() {
		b.mu.Lock()
		delete(b.pending, correlationID)
		b.mu.Unlock()
		b.client.Unsubscribe(responseTopic)
	}()

	token := b.client.Subscribe(responseTopic, 0, func(_ paho.Client, msg paho.Message) {
		var resp Response
		if err := json.Unmarshal(msg.Payload(), &resp); err != nil {
			logger.Error(fmt.Sprintf("Error parsing MQTT response: %v", err), "MQTT")
			return
		}
		b.mu.Lock()
		pending, ok := b.pending[resp.CorrelationID]
		b.mu.Unlock()
		if ok {
			select {
			case pending <- resp:
			default:
			}
		}
	})
	if token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}

	req := Request{CorrelationID: correlationID, Payload: raw}
	if err := b.Publish(b.Topic("request", name), req); err != nil {
		return nil, err
	}

	select {
	case resp := <-ch:
		if resp.Error != "" {
			return nil, errors.New(resp.Error)
		}
		return resp.Data, nil
	case <-time.After(timeout):
		return nil, fmt.Errorf("%s: %w", name, ErrTimeout)
	}
}
