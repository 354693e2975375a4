package capabilities_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/huelib/internal/capabilities"
	"github.com/wheelibin/huelib/internal/wire"
)

const bridgeCapabilities = `{
  "lights": {"available": 22, "total": 63},
  "sensors": {
    "available": 60, "total": 250,
    "clip": {"available": 60, "total": 250},
    "zll": {"available": 60, "total": 64},
    "zgp": {"available": 60, "total": 64}
  },
  "groups": {"available": 60, "total": 64},
  "scenes": {"available": 172, "total": 200, "lightstates": {"available": 1904, "total": 2048}},
  "schedules": {"available": 95, "total": 100},
  "rules": {"available": 233, "total": 250, "conditions": {"available": 1451, "total": 1500}, "actions": {"available": 985, "total": 1000}},
  "resourcelinks": {"available": 59, "total": 64},
  "streaming": {"available": 1, "total": 1, "channels": 10},
  "timezones": {"values": ["Africa/Abidjan", "Europe/London", "Pacific/Auckland"]}
}`

func Test_Decode(t *testing.T) {

	t.Run("should decode every count", func(t *testing.T) {
		t.Parallel()

		// act
		c, err := capabilities.Decode([]byte(bridgeCapabilities))

		// assert
		require.NoError(t, err)
		assert.Equal(t, capabilities.Count{Available: 22, Total: 63}, c.Lights)
		assert.Equal(t, capabilities.Count{Available: 60, Total: 250}, c.Sensors.Count)
		assert.Equal(t, capabilities.Count{Available: 60, Total: 64}, c.Sensors.ZLL)
		assert.Equal(t, capabilities.Count{Available: 60, Total: 64}, c.Groups)
		assert.Equal(t, uint(172), c.Scenes.Available)
		assert.Equal(t, capabilities.Count{Available: 1904, Total: 2048}, c.Scenes.LightStates)
		assert.Equal(t, capabilities.Count{Available: 95, Total: 100}, c.Schedules)
		assert.Equal(t, capabilities.Count{Available: 1451, Total: 1500}, c.Rules.Conditions)
		assert.Equal(t, capabilities.Count{Available: 985, Total: 1000}, c.Rules.Actions)
		assert.Equal(t, capabilities.Count{Available: 59, Total: 64}, c.Resourcelinks)
		assert.Equal(t, uint(10), c.Streaming.Channels)
		assert.Equal(t, []string{"Africa/Abidjan", "Europe/London", "Pacific/Auckland"}, c.Timezones)
	})

	t.Run("should report the path of a missing nested count", func(t *testing.T) {
		t.Parallel()

		// arrange
		payload := `{"lights": {"available": 1, "total": 2}, "sensors": {"available": 1, "total": 2,
		  "clip": {"available": 1, "total": 2}, "zll": {"available": 1}, "zgp": {"available": 1, "total": 2}}}`

		// act
		_, err := capabilities.Decode([]byte(payload))

		// assert
		var fe *wire.FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "sensors.zll.total", fe.Path)
		assert.ErrorIs(t, err, wire.ErrMissingField)
	})

	t.Run("should reject a negative count", func(t *testing.T) {
		t.Parallel()

		_, err := capabilities.Decode([]byte(`{"lights": {"available": -1, "total": 63}}`))

		var fe *wire.FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "lights.available", fe.Path)
	})
}
