package daylight_test

import (
	"testing"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/huelib/internal/daylight"
	"github.com/wheelibin/huelib/internal/sensor"
)

const (
	londonLat = 51.5072
	londonLng = -0.1276
)

func Test_Window(t *testing.T) {

	date := time.Date(2023, time.June, 21, 12, 0, 0, 0, time.UTC)
	rise, set := sunrise.SunriseSunset(londonLat, londonLng, 2023, time.June, 21)

	t.Run("should shift sunrise and sunset by the offsets", func(t *testing.T) {
		t.Parallel()

		// act
		p, err := daylight.Window(londonLat, londonLng, date, 30, -15)

		// assert
		require.NoError(t, err)
		assert.Equal(t, rise.Add(30*time.Minute), p.Sunrise)
		assert.Equal(t, set.Add(-15*time.Minute), p.Sunset)
	})

	t.Run("should use the offsets of a daylight sensor", func(t *testing.T) {
		t.Parallel()

		offset := int8(-20)
		s := sensor.Sensor{Config: sensor.Config{On: true, SunriseOffset: &offset}}

		p, err := daylight.ForSensor(s, londonLat, londonLng, date)

		require.NoError(t, err)
		assert.Equal(t, rise.Add(-20*time.Minute), p.Sunrise)
		assert.Equal(t, set, p.Sunset)
	})

	t.Run("should fail during polar day", func(t *testing.T) {
		t.Parallel()

		_, err := daylight.Window(78.2232, 15.6267, date, 0, 0)

		assert.ErrorIs(t, err, daylight.ErrNoSunriseSunset)
	})
}

func Test_IsDaylight(t *testing.T) {

	p := daylight.Period{
		Sunrise: time.Date(2023, 6, 21, 4, 43, 0, 0, time.UTC),
		Sunset:  time.Date(2023, 6, 21, 20, 21, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		at       time.Time
		expected bool
	}{
		{"before sunrise", p.Sunrise.Add(-time.Second), false},
		{"at sunrise", p.Sunrise, true},
		{"midday", time.Date(2023, 6, 21, 12, 0, 0, 0, time.UTC), true},
		{"at sunset", p.Sunset, false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expected, daylight.IsDaylight(test.at, p))
		})
	}
}
