package resourcelink_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/huelib/internal/resourcelink"
	"github.com/wheelibin/huelib/internal/wire"
)

func Test_DecodeAll(t *testing.T) {

	t.Run("should decode resourcelinks with their ids", func(t *testing.T) {
		t.Parallel()

		// arrange
		payload := `{"8627": {
		  "name": "Dimmer switch", "description": "Dimmer switch setup", "type": "Link",
		  "classid": 10020, "owner": "ffffffffe0341b1b376a2389376a2389", "recycle": false,
		  "links": ["/sensors/2", "/rules/1", "/scenes/abc"]
		}}`

		// act
		links, err := resourcelink.DecodeAll([]byte(payload))

		// assert
		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, resourcelink.Resourcelink{
			ID:          "8627",
			Name:        "Dimmer switch",
			Description: "Dimmer switch setup",
			Kind:        resourcelink.KindLink,
			ClassID:     10020,
			Owner:       "ffffffffe0341b1b376a2389376a2389",
			Links:       []string{"/sensors/2", "/rules/1", "/scenes/abc"},
		}, links[0])
	})

	t.Run("should fail when the class id does not fit", func(t *testing.T) {
		t.Parallel()

		_, err := resourcelink.Decode([]byte(`{"name":"n","description":"d","type":"Link","classid":-1}`))

		var fe *wire.FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "classid", fe.Path)
	})

	t.Run("should reject other types", func(t *testing.T) {
		t.Parallel()

		_, err := resourcelink.Decode([]byte(`{"name":"n","description":"d","type":"link"}`))

		assert.ErrorIs(t, err, wire.ErrUnknownVariant)
	})
}

func Test_Modifier(t *testing.T) {

	tests := []struct {
		name     string
		modifier any
		expected string
	}{
		{"empty", resourcelink.Modifier{}, `{}`},
		{"links", resourcelink.Modifier{}.Links([]string{"/groups/1"}), `{"links":["/groups/1"]}`},
		{"creator", resourcelink.NewCreator("Switch", 1, []string{"/sensors/5"}).WithRecycle(true),
			`{"name":"Switch","classid":1,"links":["/sensors/5"],"recycle":true}`},
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
}
