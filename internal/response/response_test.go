package response_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/huelib/internal/response"
	"github.com/wheelibin/huelib/internal/wire"
)

func Test_Parse(t *testing.T) {

	t.Run("should keep the order and kind of every outcome", func(t *testing.T) {
		t.Parallel()

		// arrange
		payload := `[{"success": {"/lights/1/state/bri": 200}}, {"error": {"type": 3, "address": "/lights/5", "description": "not available"}}]`

		// act
		responses, err := response.Parse([]byte(payload))

		// assert
		require.NoError(t, err)
		assert.Equal(t, []response.Response{
			{Success: map[string]any{"/lights/1/state/bri": float64(200)}},
			{Error: &response.Error{Type: 3, Address: "/lights/5", Description: "not available"}},
		}, responses)
	})

	t.Run("should keep loosely typed success values", func(t *testing.T) {
		t.Parallel()

		responses, err := response.Parse([]byte(`[{"success":{"/lights/1/state/on":true}},{"success":{"/lights/1/name":"Hall"}}]`))

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"/lights/1/state/on": true, "/lights/1/name": "Hall"}, response.Successes(responses))
		assert.Empty(t, response.Errors(responses))
	})

	t.Run("should fail on entries that are neither success nor error", func(t *testing.T) {
		t.Parallel()

		_, err := response.Parse([]byte(`[{"success":{}},{"warning":{}}]`))

		var fe *wire.FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "1", fe.Path)
		assert.ErrorIs(t, err, wire.ErrUnknownVariant)
	})

	t.Run("should require every error member", func(t *testing.T) {
		t.Parallel()

		_, err := response.Parse([]byte(`[{"error":{"type":1,"address":"/"}}]`))

		var fe *wire.FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "0.error.description", fe.Path)
		assert.ErrorIs(t, err, wire.ErrMissingField)
	})
}

func Test_Helpers(t *testing.T) {

	t.Run("should extract the created id", func(t *testing.T) {
		t.Parallel()

		responses, err := response.Parse([]byte(`[{"success":{"id":"12"}}]`))
		require.NoError(t, err)

		id, ok := response.CreatedID(responses)

		assert.True(t, ok)
		assert.Equal(t, "12", id)
	})

	t.Run("should strip paths from created ids", func(t *testing.T) {
		t.Parallel()

		id, ok := response.CreatedID([]response.Response{{Success: map[string]any{"id": "/schedules/2"}}})

		assert.True(t, ok)
		assert.Equal(t, "2", id)
	})

	t.Run("should extract username and client key", func(t *testing.T) {
		t.Parallel()

		responses, err := response.Parse([]byte(`[{"success":{"username":"83b7780291a6ceffbe0bd049104df","clientkey":"33DDAFFE0E43"}}]`))
		require.NoError(t, err)

		username, ok := response.Username(responses)
		assert.True(t, ok)
		assert.Equal(t, "83b7780291a6ceffbe0bd049104df", username)

		key, ok := response.ClientKey(responses)
		assert.True(t, ok)
		assert.Equal(t, "33DDAFFE0E43", key)
	})

	t.Run("should report bridge errors", func(t *testing.T) {
		t.Parallel()

		responses := []response.Response{
			{Success: map[string]any{"/lights/1/state/on": true}},
			{Error: &response.Error{Type: response.ErrorDeviceIsOff, Address: "/lights/1/state/bri", Description: "device is set to off"}},
		}

		errs := response.Errors(responses)

		require.Len(t, errs, 1)
		assert.EqualError(t, errs[0], "bridge error 201 at /lights/1/state/bri: device is set to off")
	})
}
