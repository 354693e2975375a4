package rule_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/huelib/internal/models"
	"github.com/wheelibin/huelib/internal/rule"
	"github.com/wheelibin/huelib/internal/wire"
)

const dimmerRule = `{
  "name": "Dimmer Switch 2 on",
  "owner": "ffffffffe0341b1b376a2389376a2389",
  "created": "2018-11-24T18:35:14",
  "lasttriggered": "none",
  "timestriggered": 0,
  "status": "enabled",
  "recycle": true,
  "conditions": [
    {"address": "/sensors/2/state/buttonevent", "operator": "eq", "value": "1002"},
    {"address": "/sensors/2/state/lastupdated", "operator": "dx"}
  ],
  "actions": [
    {"address": "/groups/0/action", "method": "PUT", "body": {"on": true}}
  ]
}`

func Test_Decode(t *testing.T) {

	t.Run("should decode a rule", func(t *testing.T) {
		t.Parallel()

		// act
		r, err := rule.Decode([]byte(dimmerRule))

		// assert
		require.NoError(t, err)
		assert.Equal(t, "Dimmer Switch 2 on", r.Name)
		assert.Equal(t, "ffffffffe0341b1b376a2389376a2389", r.Owner)
		assert.Equal(t, time.Date(2018, 11, 24, 18, 35, 14, 0, time.UTC), r.Created)
		assert.Nil(t, r.LastTriggered)
		assert.Equal(t, uint(0), r.TimesTriggered)
		assert.Equal(t, rule.StatusEnabled, r.Status)
		require.Len(t, r.Conditions, 2)
		assert.Equal(t, rule.OperatorEqual, r.Conditions[0].Operator)
		assert.Equal(t, "1002", *r.Conditions[0].Value)
		assert.Equal(t, rule.OperatorChanged, r.Conditions[1].Operator)
		assert.Nil(t, r.Conditions[1].Value)
		require.Len(t, r.Actions, 1)
		assert.Equal(t, map[string]any{"on": true}, r.Actions[0].Body)
	})

	t.Run("should decode operators containing spaces", func(t *testing.T) {
		t.Parallel()

		var c rule.Condition
		err := json.Unmarshal([]byte(`{"address":"/sensors/5/state/presence","operator":"not stable","value":"PT00:05:00"}`), &c)

		require.NoError(t, err)
		assert.Equal(t, rule.OperatorNotStable, c.Operator)
	})

	t.Run("should fail on a malformed last triggered timestamp", func(t *testing.T) {
		t.Parallel()

		var r rule.Rule
		err := json.Unmarshal([]byte(`{"name":"n","owner":"o","created":"2018-11-24T18:35:14","lasttriggered":"never"}`), &r)

		assert.ErrorIs(t, err, wire.ErrInvalidFormat)
	})
}

func Test_Modifier(t *testing.T) {

	conditions := []rule.Condition{{Address: "/sensors/2/state/buttonevent", Operator: rule.OperatorEqual, Value: func() *string { v := "4002"; return &v }()}}
	actions := []models.Action{{Address: "/groups/0/action", Method: models.ActionRequestPut, Body: map[string]any{"on": false}}}

	tests := []struct {
		name     string
		modifier any
		expected string
	}{
		{"empty", rule.Modifier{}, `{}`},
		{"status", rule.Modifier{}.Status(rule.StatusDisabled), `{"status":"disabled"}`},
		{"conditions", rule.Modifier{}.Conditions(conditions),
			`{"conditions":[{"address":"/sensors/2/state/buttonevent","operator":"eq","value":"4002"}]}`},
		{"creator", rule.NewCreator(conditions, actions).WithName("Off"),
			`{"name":"Off","conditions":[{"address":"/sensors/2/state/buttonevent","operator":"eq","value":"4002"}],
			  "actions":[{"address":"/groups/0/action","method":"PUT","body":{"on":false}}]}`},
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

		assert.True(t, rule.Modifier{}.IsEmpty())
		assert.False(t, rule.Modifier{}.Actions(nil).IsEmpty())
	})
}
