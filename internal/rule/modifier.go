package rule

import (
	"encoding/json"

	"github.com/wheelibin/huelib/internal/models"
	"github.com/wheelibin/huelib/internal/wire"
)

type fields struct {
	Name       *string          `json:"name,omitempty"`
	Status     *Status          `json:"status,omitempty"`
	Conditions *[]Condition     `json:"conditions,omitempty"`
	Actions    *[]models.Action `json:"actions,omitempty"`
}

// Modifier changes a rule (PUT /rules/<id>). Conditions and actions are
// replaced as a whole.
type Modifier struct {
	fields fields
}

func (m Modifier) Name(value string) Modifier {
	m.fields.Name = &value
	return m
}

func (m Modifier) Status(value Status) Modifier {
	m.fields.Status = &value
	return m
}

func (m Modifier) Conditions(value []Condition) Modifier {
	conditions := append([]Condition{}, value...)
	m.fields.Conditions = &conditions
	return m
}

func (m Modifier) Actions(value []models.Action) Modifier {
	actions := append([]models.Action{}, value...)
	m.fields.Actions = &actions
	return m
}

func (m Modifier) IsEmpty() bool {
	return wire.IsEmpty(m)
}

func (m Modifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.fields)
}

// Creator is the body of POST /rules.
type Creator struct {
	fields
	Recycle *bool `json:"recycle,omitempty"`
}

func NewCreator(conditions []Condition, actions []models.Action) Creator {
	c := Creator{}
	c.fields.Conditions = &conditions
	c.fields.Actions = &actions
	return c
}

func (c Creator) WithName(value string) Creator {
	c.fields.Name = &value
	return c
}

func (c Creator) WithStatus(value Status) Creator {
	c.fields.Status = &value
	return c
}

func (c Creator) WithRecycle(value bool) Creator {
	c.Recycle = &value
	return c
}
