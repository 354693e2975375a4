package light_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/huelib/internal/light"
	"github.com/wheelibin/huelib/internal/models"
)

func Test_StateModifier(t *testing.T) {

	tests := []struct {
		name     string
		modifier light.StateModifier
		expected string
	}{
		{"empty", light.StateModifier{}, `{}`},
		{"on", light.StateModifier{}.On(false), `{"on":false}`},
		{"brightness override", light.StateModifier{}.Brightness(models.Override, 200), `{"bri":200}`},
		{"brightness increment", light.StateModifier{}.Brightness(models.Increment, 10), `{"bri_inc":10}`},
		{"brightness decrement", light.StateModifier{}.Brightness(models.Decrement, 10), `{"bri_inc":-10}`},
		{"brightness decrement does not wrap", light.StateModifier{}.Brightness(models.Decrement, 254), `{"bri_inc":-254}`},
		{"hue override", light.StateModifier{}.Hue(models.Override, 65535), `{"hue":65535}`},
		{"hue decrement", light.StateModifier{}.Hue(models.Decrement, 65535), `{"hue_inc":-65535}`},
		{"saturation increment", light.StateModifier{}.Saturation(models.Increment, 20), `{"sat_inc":20}`},
		{"color temperature decrement", light.StateModifier{}.ColorTemperature(models.Decrement, 100), `{"ct_inc":-100}`},
		{"color temperature override", light.StateModifier{}.ColorTemperature(models.Override, 366), `{"ct":366}`},
		{"xy override", light.StateModifier{}.ColorSpaceCoordinates(models.CoordinateOverride, [2]float32{0.3, 0.4}), `{"xy":[0.3,0.4]}`},
		{"xy increment", light.StateModifier{}.ColorSpaceCoordinates(models.CoordinateIncrement, [2]float32{0.1, 0.2}), `{"xy_inc":[0.1,0.2]}`},
		{"xy decrement", light.StateModifier{}.ColorSpaceCoordinates(models.CoordinateDecrement, [2]float32{0.1, 0.2}), `{"xy_inc":[-0.1,-0.2]}`},
		{"xy increment decrement", light.StateModifier{}.ColorSpaceCoordinates(models.CoordinateIncrementDecrement, [2]float32{0.1, 0.2}), `{"xy_inc":[0.1,-0.2]}`},
		{"xy decrement increment", light.StateModifier{}.ColorSpaceCoordinates(models.CoordinateDecrementIncrement, [2]float32{0.1, 0.2}), `{"xy_inc":[-0.1,0.2]}`},
		{"alert", light.StateModifier{}.Alert(models.AlertLSelect), `{"alert":"lselect"}`},
		{"effect", light.StateModifier{}.Effect(models.EffectColorloop), `{"effect":"colorloop"}`},
		{"transition time", light.StateModifier{}.TransitionTime(0), `{"transitiontime":0}`},
		{
			"override and increment slots are independent",
			light.StateModifier{}.Brightness(models.Override, 100).Brightness(models.Increment, 5),
			`{"bri":100,"bri_inc":5}`,
		},
		{
			"later call to the same slot wins",
			light.StateModifier{}.Brightness(models.Increment, 5).Brightness(models.Decrement, 7),
			`{"bri_inc":-7}`,
		},
		{
			"several attributes",
			light.StateModifier{}.On(true).Saturation(models.Override, 254).TransitionTime(4),
			`{"on":true,"sat":254,"transitiontime":4}`,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			body, err := json.Marshal(test.modifier)

			require.NoError(t, err)
			assert.JSONEq(t, test.expected, string(body))
		})
	}

	t.Run("should only be empty before a setter is called", func(t *testing.T) {
		t.Parallel()

		assert.True(t, light.StateModifier{}.IsEmpty())
		assert.False(t, light.StateModifier{}.On(false).IsEmpty())
		assert.False(t, light.StateModifier{}.Brightness(models.Decrement, 0).IsEmpty())
	})

	t.Run("should not change the modifier a setter was called on", func(t *testing.T) {
		t.Parallel()

		base := light.StateModifier{}.On(true)
		_ = base.Brightness(models.Override, 10)

		body, err := json.Marshal(base)

		require.NoError(t, err)
		assert.JSONEq(t, `{"on":true}`, string(body))
	})
}

func Test_AttributeModifier(t *testing.T) {

	t.Run("should serialize the new name", func(t *testing.T) {
		t.Parallel()

		m := light.AttributeModifier{}.Name("Desk")
		body, err := json.Marshal(m)

		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Desk"}`, string(body))
		assert.False(t, m.IsEmpty())
		assert.True(t, light.AttributeModifier{}.IsEmpty())
	})
}
