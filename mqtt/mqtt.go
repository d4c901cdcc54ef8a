// mqtt.go - Optional bridge mirroring asset mutation events to an MQTT broker

package mqtt

import (
	"encoding/json"
	"fmt"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Bridge publishes asset mutation events to a broker topic so MQTT
// consumers (fleet dashboards, field devices) see the same stream as the
// websocket clients. Publishing is fire-and-forget, matching the websocket
// channel's delivery guarantees.
type Bridge struct {
	client pahomqtt.Client
	topic  string
	logger *zap.Logger
}

// Connect dials the broker and returns a ready bridge.
func Connect(broker, topic string, logger *zap.Logger) (*Bridge, error) {
	opts := pahomqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("go-asset-backend-" + uuid.NewString()[:8]).
		SetAutoReconnect(true)

	client := pahomqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}

	return &Bridge{client: client, topic: topic, logger: logger}, nil
}

// Publish sends an event to the bridge topic. Errors are logged, never
// propagated to the request path.
func (b *Bridge) Publish(event string, data interface{}) {
	payload, err := json.Marshal(map[string]interface{}{"event": event, "data": data})
	if err != nil {
		b.logger.Error("failed to marshal mqtt event", zap.String("event", event), zap.Error(err))
		return
	}
	if token := b.client.Publish(b.topic, 0, false, payload); token.Wait() && token.Error() != nil {
		b.logger.Error("mqtt publish failed", zap.String("event", event), zap.Error(token.Error()))
	}
}

// Disconnect closes the broker connection.
func (b *Bridge) Disconnect() {
	b.client.Disconnect(250)
}
