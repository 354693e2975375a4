package light_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/huelib/internal/light"
	"github.com/wheelibin/huelib/internal/models"
	"github.com/wheelibin/huelib/internal/wire"
)

const extendedColorLight = `{
  "state": {
    "on": true,
    "bri": 144,
    "hue": 13088,
    "sat": 212,
    "effect": "none",
    "xy": [0.5128, 0.4147],
    "ct": 467,
    "alert": "select",
    "colormode": "xy",
    "mode": "homeautomation",
    "reachable": true
  },
  "swupdate": {"state": "noupdates", "lastinstall": "2018-12-13T20:17:37"},
  "type": "Extended color light",
  "name": "Hue color lamp 7",
  "modelid": "LCT007",
  "manufacturername": "Philips",
  "productname": "Hue color lamp",
  "capabilities": {
    "certified": true,
    "control": {
      "mindimlevel": 5000,
      "maxlumen": 600,
      "colorgamuttype": "B",
      "colorgamut": [[0.675, 0.322], [0.409, 0.518], [0.167, 0.04]],
      "ct": {"min": 153, "max": 500}
    },
    "streaming": {"renderer": true, "proxy": false}
  },
  "config": {
    "archetype": "sultanbulb",
    "function": "mixed",
    "direction": "omnidirectional",
    "startup": {"mode": "safety", "configured": true}
  },
  "uniqueid": "00:17:88:01:00:bd:c7:b9-0b",
  "swversion": "5.105.0.21169"
}`

const dimmableLight = `{
  "state": {"on": false, "bri": 1, "alert": "none", "reachable": false},
  "swupdate": {"state": "notupdatable", "lastinstall": null},
  "type": "Dimmable light",
  "name": "Porch",
  "modelid": "LWB010",
  "uniqueid": "00:17:88:01:02:aa:bb:cc-0b",
  "swversion": "1.46.13",
  "config": {"archetype": "classicbulb", "function": "functional", "direction": "omnidirectional"},
  "capabilities": {"certified": true, "control": {}, "streaming": {"renderer": false, "proxy": false}}
}`

func Test_Decode(t *testing.T) {

	t.Run("should decode every attribute of a light", func(t *testing.T) {
		t.Parallel()

		// act
		l, err := light.Decode([]byte(extendedColorLight))

		// assert
		require.NoError(t, err)
		assert.Equal(t, "", l.ID)
		assert.Equal(t, "Hue color lamp 7", l.Name)
		assert.Equal(t, "Extended color light", l.Kind)
		assert.Equal(t, "LCT007", l.ModelID)
		assert.Equal(t, "00:17:88:01:00:bd:c7:b9-0b", l.UniqueID)
		assert.Nil(t, l.ProductID)
		assert.Equal(t, "Hue color lamp", *l.ProductName)
		assert.Equal(t, "Philips", *l.ManufacturerName)
		assert.Equal(t, "5.105.0.21169", l.SoftwareVersion)

		assert.True(t, *l.State.On)
		assert.Equal(t, uint8(144), *l.State.Brightness)
		assert.Equal(t, uint16(13088), *l.State.Hue)
		assert.Equal(t, uint8(212), *l.State.Saturation)
		assert.Equal(t, [2]float32{0.5128, 0.4147}, *l.State.ColorSpaceCoordinates)
		assert.Equal(t, uint16(467), *l.State.ColorTemperature)
		assert.Equal(t, models.AlertSelect, *l.State.Alert)
		assert.Equal(t, models.EffectNone, *l.State.Effect)
		assert.Equal(t, models.ColorModeColorSpaceCoordinates, *l.State.ColorMode)
		assert.True(t, l.State.Reachable)

		assert.Equal(t, light.SoftwareUpdateNoUpdates, l.SoftwareUpdate.State)
		assert.Equal(t, time.Date(2018, 12, 13, 20, 17, 37, 0, time.UTC), *l.SoftwareUpdate.LastInstall)

		assert.Equal(t, "sultanbulb", l.Config.ArcheType)
		assert.Equal(t, "mixed", l.Config.Function)
		assert.Equal(t, "omnidirectional", l.Config.Direction)
		assert.Equal(t, &light.StartupConfig{Mode: "safety", Configured: true}, l.Config.Startup)

		assert.True(t, l.Capabilities.Certified)
		assert.Equal(t, 5000, *l.Capabilities.Control.MinDimLevel)
		assert.Equal(t, 600, *l.Capabilities.Control.MaxLumen)
		assert.Equal(t, "B", *l.Capabilities.Control.ColorGamutType)
		assert.Len(t, l.Capabilities.Control.ColorGamut, 3)
		assert.Equal(t, &light.ColorTemperatureCapabilities{Min: 153, Max: 500}, l.Capabilities.Control.ColorTemperature)
		assert.Equal(t, light.StreamingCapabilities{Renderer: true, Proxy: false}, l.Capabilities.Streaming)
	})

	t.Run("should leave attributes the light does not support absent", func(t *testing.T) {
		t.Parallel()

		// act
		l, err := light.Decode([]byte(dimmableLight))

		// assert
		require.NoError(t, err)
		assert.False(t, *l.State.On)
		assert.Equal(t, uint8(1), *l.State.Brightness)
		assert.Nil(t, l.State.Hue)
		assert.Nil(t, l.State.Saturation)
		assert.Nil(t, l.State.ColorSpaceCoordinates)
		assert.Nil(t, l.State.ColorTemperature)
		assert.Nil(t, l.State.Effect)
		assert.Nil(t, l.State.ColorMode)
		assert.False(t, l.State.Reachable)
		assert.Nil(t, l.SoftwareUpdate.LastInstall)
		assert.Nil(t, l.Config.Startup)
		assert.Nil(t, l.Capabilities.Control.ColorTemperature)
		assert.Nil(t, l.Capabilities.Control.ColorGamut)
	})

	t.Run("should treat the sentinel last install as absent", func(t *testing.T) {
		t.Parallel()

		// arrange
		payload := []byte(`{"state":"noupdates","lastinstall":"none"}`)

		// act
		var u light.SoftwareUpdate
		err := u.UnmarshalJSON(payload)

		// assert
		require.NoError(t, err)
		assert.Nil(t, u.LastInstall)
	})

	tests := []struct {
		name    string
		payload string
		path    string
		target  error
	}{
		{
			name:    "missing reachable flag",
			payload: `{"name":"x","type":"t","modelid":"m","uniqueid":"u","swversion":"1","state":{"on":true}}`,
			path:    "state.reachable",
			target:  wire.ErrMissingField,
		},
		{
			name:    "unknown alert token",
			payload: `{"name":"x","type":"t","modelid":"m","uniqueid":"u","swversion":"1","state":{"alert":"blink","reachable":true}}`,
			path:    "state.alert",
			target:  wire.ErrUnknownVariant,
		},
		{
			name:    "upper case color mode",
			payload: `{"name":"x","type":"t","modelid":"m","uniqueid":"u","swversion":"1","state":{"colormode":"XY","reachable":true}}`,
			path:    "state.colormode",
			target:  wire.ErrUnknownVariant,
		},
		{
			name: "malformed last install",
			payload: `{"name":"x","type":"t","modelid":"m","uniqueid":"u","swversion":"1","state":{"reachable":true},
			           "swupdate":{"state":"noupdates","lastinstall":"13/12/2018 20:17"}}`,
			path:   "swupdate.lastinstall",
			target: wire.ErrInvalidFormat,
		},
		{
			name:    "missing name",
			payload: `{"type":"t"}`,
			path:    "name",
			target:  wire.ErrMissingField,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(fmt.Sprintf("should fail on %s", test.name), func(t *testing.T) {
			t.Parallel()

			// act
			l, err := light.Decode([]byte(test.payload))

			// assert
			require.Error(t, err)
			assert.Equal(t, light.Light{}, l)
			var fe *wire.FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, test.path, fe.Path)
			assert.ErrorIs(t, err, test.target)
		})
	}
}

func Test_DecodeAll(t *testing.T) {

	t.Run("should attach the collection key to each light", func(t *testing.T) {
		t.Parallel()

		// arrange
		payload := fmt.Sprintf(`{"1": %s, "2": %s}`, extendedColorLight, dimmableLight)

		// act
		lights, err := light.DecodeAll([]byte(payload))

		// assert
		require.NoError(t, err)
		require.Len(t, lights, 2)
		assert.Equal(t, "1", lights[0].ID)
		assert.Equal(t, "Hue color lamp 7", lights[0].Name)
		assert.Equal(t, "2", lights[1].ID)
		assert.Equal(t, "Porch", lights[1].Name)
	})

	t.Run("should return an empty list for an empty collection", func(t *testing.T) {
		t.Parallel()

		lights, err := light.DecodeAll([]byte(`{}`))

		require.NoError(t, err)
		assert.Empty(t, lights)
	})

	t.Run("should fail the whole collection when one light is malformed", func(t *testing.T) {
		t.Parallel()

		// arrange
		payload := fmt.Sprintf(`{"1": %s, "7": {"name": "broken"}}`, extendedColorLight)

		// act
		lights, err := light.DecodeAll([]byte(payload))

		// assert
		assert.Nil(t, lights)
		var fe *wire.FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "7.type", fe.Path)
	})
}
