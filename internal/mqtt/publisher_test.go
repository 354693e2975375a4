package mqtt_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/huelib/internal/light"
	"github.com/wheelibin/huelib/internal/mqtt"
)

type token struct {
	err error
}

func (t token) Wait() bool                     { return true }
func (t token) WaitTimeout(time.Duration) bool { return true }
func (t token) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
func (t token) Error() error { return t.err }

type message struct {
	topic    string
	retained bool
	payload  []byte
}

type fakeClient struct {
	err          error
	messages     []message
	disconnected bool
}

func (c *fakeClient) Publish(topic string, _ byte, retained bool, payload interface{}) pahomqtt.Token {
	c.messages = append(c.messages, message{topic: topic, retained: retained, payload: payload.([]byte)})
	return token{err: c.err}
}

func (c *fakeClient) Disconnect(uint) {
	c.disconnected = true
}

func Test_Publisher(t *testing.T) {

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
	on := true
	bri := uint8(200)

	t.Run("should publish the retained light state", func(t *testing.T) {
		t.Parallel()

		// arrange
		client := &fakeClient{}
		p := mqtt.NewPublisher(client, "home", logger)

		// act
		err := p.PublishLight(light.Light{ID: "4", Name: "Hall", State: light.State{On: &on, Brightness: &bri, Reachable: true}})

		// assert
		require.NoError(t, err)
		require.Len(t, client.messages, 1)
		assert.Equal(t, "home/lights/4/state", client.messages[0].topic)
		assert.True(t, client.messages[0].retained)
		assert.JSONEq(t, `{"id":"4","name":"Hall","reachable":true,"on":true,"bri":200}`, string(client.messages[0].payload))
	})

	t.Run("should return publish errors", func(t *testing.T) {
		t.Parallel()

		client := &fakeClient{err: errors.New("not connected")}
		p := mqtt.NewPublisher(client, "home", logger)

		err := p.PublishLight(light.Light{ID: "4"})

		assert.ErrorContains(t, err, "not connected")
	})

	t.Run("should announce going offline on close", func(t *testing.T) {
		t.Parallel()

		client := &fakeClient{}
		mqtt.NewPublisher(client, "home", logger).Close()

		require.Len(t, client.messages, 1)
		assert.Equal(t, "home/bridge/state", client.messages[0].topic)
		assert.Equal(t, "offline", string(client.messages[0].payload))
		assert.True(t, client.disconnected)
	})
}
