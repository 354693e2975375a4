package schedule_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/huelib/internal/models"
	"github.com/wheelibin/huelib/internal/schedule"
	"github.com/wheelibin/huelib/internal/wire"
)

const schedules = `{
  "1": {
    "name": "Wake up",
    "description": "Sunrise in the bedroom",
    "command": {"address": "/api/abc/groups/1/action", "body": {"scene": "AB34EF5"}, "method": "PUT"},
    "localtime": "W124/T06:00:00",
    "time": "W124/T05:00:00",
    "created": "2019-03-21T08:12:33",
    "status": "enabled",
    "autodelete": false,
    "recycle": true
  },
  "2": {
    "name": "Timer",
    "description": "",
    "command": {"address": "/api/abc/lights/1/state", "body": {"on": false}, "method": "PUT"},
    "localtime": "PT00:10:00",
    "created": "2019-03-22T20:00:00",
    "status": "disabled",
    "starttime": "2019-03-22T20:00:05"
  }
}`

func Test_DecodeAll(t *testing.T) {

	t.Run("should decode schedules keyed by id", func(t *testing.T) {
		t.Parallel()

		// act
		ss, err := schedule.DecodeAll([]byte(schedules))

		// assert
		require.NoError(t, err)
		require.Len(t, ss, 2)

		assert.Equal(t, "1", ss[0].ID)
		assert.Equal(t, "Wake up", ss[0].Name)
		assert.Equal(t, "Sunrise in the bedroom", ss[0].Description)
		assert.Equal(t, models.Action{
			Address: "/api/abc/groups/1/action",
			Method:  models.ActionRequestPut,
			Body:    map[string]any{"scene": "AB34EF5"},
		}, ss[0].Command)
		assert.Equal(t, "W124/T06:00:00", ss[0].LocalTime)
		assert.Equal(t, time.Date(2019, 3, 21, 8, 12, 33, 0, time.UTC), ss[0].Created)
		assert.Equal(t, schedule.StatusEnabled, ss[0].Status)
		assert.False(t, *ss[0].AutoDelete)
		assert.Nil(t, ss[0].StartTime)
		assert.True(t, *ss[0].Recycle)

		assert.Equal(t, "2", ss[1].ID)
		assert.Equal(t, schedule.StatusDisabled, ss[1].Status)
		assert.Equal(t, time.Date(2019, 3, 22, 20, 0, 5, 0, time.UTC), *ss[1].StartTime)
		assert.Nil(t, ss[1].AutoDelete)
	})

	t.Run("should name the failing member of the collection", func(t *testing.T) {
		t.Parallel()

		_, err := schedule.DecodeAll([]byte(`{"4": {"name":"x","description":"","command":{"address":"/a","method":"GET","body":{}}}}`))

		var fe *wire.FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "4.command.method", fe.Path)
		assert.ErrorIs(t, err, wire.ErrUnknownVariant)
	})
}

func Test_Modifier(t *testing.T) {

	off := models.Action{Address: "/api/abc/lights/1/state", Method: models.ActionRequestPut, Body: map[string]any{"on": false}}

	tests := []struct {
		name     string
		modifier any
		expected string
	}{
		{"empty", schedule.Modifier{}, `{}`},
		{"status", schedule.Modifier{}.Status(schedule.StatusDisabled), `{"status":"disabled"}`},
		{"name and time", schedule.Modifier{}.Name("Sleep").LocalTime("W127/T23:00:00"), `{"name":"Sleep","localtime":"W127/T23:00:00"}`},
		{"command", schedule.Modifier{}.Command(off).AutoDelete(true),
			`{"command":{"address":"/api/abc/lights/1/state","method":"PUT","body":{"on":false}},"autodelete":true}`},
		{"creator", schedule.NewCreator(off, "PT00:01:00").WithName("Off").WithRecycle(false),
			`{"name":"Off","command":{"address":"/api/abc/lights/1/state","method":"PUT","body":{"on":false}},"localtime":"PT00:01:00","recycle":false}`},
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

	t.Run("should report emptiness", func(t *testing.T) {
		t.Parallel()

		assert.True(t, schedule.Modifier{}.IsEmpty())
		assert.False(t, schedule.Modifier{}.Description("").IsEmpty())
	})
}
