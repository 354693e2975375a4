package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/wheelibin/huelib/internal/config"
	"github.com/wheelibin/huelib/internal/light"
	"github.com/wheelibin/huelib/internal/models"
)

const publishTimeout = 5 * time.Second

// Client is the part of the paho client the publisher uses.
type Client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) pahomqtt.Token
	Disconnect(quiesce uint)
}

// Publisher publishes light states as retained messages on
// <prefix>/lights/<id>/state.
type Publisher struct {
	client Client
	prefix string
	logger *log.Logger
}

func NewPublisher(client Client, prefix string, logger *log.Logger) *Publisher {
	return &Publisher{client: client, prefix: prefix, logger: logger}
}

// Connect connects to the broker of cfg.
func Connect(cfg config.MQTT, logger *log.Logger) (*Publisher, error) {
	opts := pahomqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID("huewatchd-" + time.Now().Format("150405.000")).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetWill(cfg.TopicPrefix+"/bridge/state", "offline", 1, true).
		SetOnConnectHandler(func(_ pahomqtt.Client) {
			logger.Info("MQTT connected", "broker", cfg.Broker)
		}).
		SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
			logger.Warn("MQTT connection lost", "err", err)
		})

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	client := pahomqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("mqtt connect timeout")
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}

	p := NewPublisher(client, cfg.TopicPrefix, logger)
	if err := p.publish(cfg.TopicPrefix+"/bridge/state", []byte("online")); err != nil {
		return nil, err
	}
	return p, nil
}

type lightPayload struct {
	ID                    string            `json:"id"`
	Name                  string            `json:"name"`
	Reachable             bool              `json:"reachable"`
	On                    *bool             `json:"on,omitempty"`
	Brightness            *uint8            `json:"bri,omitempty"`
	Hue                   *uint16           `json:"hue,omitempty"`
	Saturation            *uint8            `json:"sat,omitempty"`
	ColorSpaceCoordinates *[2]float32       `json:"xy,omitempty"`
	ColorTemperature      *uint16           `json:"ct,omitempty"`
	ColorMode             *models.ColorMode `json:"colormode,omitempty"`
}

func LightTopic(prefix string, id string) string {
	return fmt.Sprintf("%s/lights/%s/state", prefix, id)
}

func (p *Publisher) PublishLight(l light.Light) error {
	s := l.State
	payload, err := json.Marshal(lightPayload{
		ID:                    l.ID,
		Name:                  l.Name,
		Reachable:             s.Reachable,
		On:                    s.On,
		Brightness:            s.Brightness,
		Hue:                   s.Hue,
		Saturation:            s.Saturation,
		ColorSpaceCoordinates: s.ColorSpaceCoordinates,
		ColorTemperature:      s.ColorTemperature,
		ColorMode:             s.ColorMode,
	})
	if err != nil {
		return err
	}
	return p.publish(LightTopic(p.prefix, l.ID), payload)
}

func (p *Publisher) publish(topic string, payload []byte) error {
	t := p.client.Publish(topic, 1, true, payload)
	if !t.WaitTimeout(publishTimeout) {
		return fmt.Errorf("mqtt publish to %s timed out", topic)
	}
	if err := t.Error(); err != nil {
		return fmt.Errorf("mqtt publish to %s: %w", topic, err)
	}
	p.logger.Debug("published", "topic", topic)
	return nil
}

func (p *Publisher) Close() {
	_ = p.publish(p.prefix+"/bridge/state", []byte("offline"))
	p.client.Disconnect(250)
}
