package schedule

import (
	"encoding/json"

	"github.com/wheelibin/huelib/internal/models"
	"github.com/wheelibin/huelib/internal/wire"
)

type fields struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Command     *models.Action `json:"command,omitempty"`
	LocalTime   *string        `json:"localtime,omitempty"`
	Status      *Status        `json:"status,omitempty"`
	AutoDelete  *bool          `json:"autodelete,omitempty"`
}

// Modifier changes a schedule (PUT /schedules/<id>).
type Modifier struct {
	fields fields
}

func (m Modifier) Name(value string) Modifier {
	m.fields.Name = &value
	return m
}

func (m Modifier) Description(value string) Modifier {
	m.fields.Description = &value
	return m
}

func (m Modifier) Command(value models.Action) Modifier {
	m.fields.Command = &value
	return m
}

func (m Modifier) LocalTime(value string) Modifier {
	m.fields.LocalTime = &value
	return m
}

func (m Modifier) Status(value Status) Modifier {
	m.fields.Status = &value
	return m
}

func (m Modifier) AutoDelete(value bool) Modifier {
	m.fields.AutoDelete = &value
	return m
}

func (m Modifier) IsEmpty() bool {
	return wire.IsEmpty(m)
}

func (m Modifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.fields)
}

// Creator is the body of POST /schedules.
type Creator struct {
	fields
	Recycle *bool `json:"recycle,omitempty"`
}

func NewCreator(command models.Action, localTime string) Creator {
	c := Creator{}
	c.fields.Command = &command
	c.fields.LocalTime = &localTime
	return c
}

func (c Creator) WithName(value string) Creator {
	c.fields.Name = &value
	return c
}

func (c Creator) WithDescription(value string) Creator {
	c.fields.Description = &value
	return c
}

func (c Creator) WithStatus(value Status) Creator {
	c.fields.Status = &value
	return c
}

func (c Creator) WithAutoDelete(value bool) Creator {
	c.fields.AutoDelete = &value
	return c
}

func (c Creator) WithRecycle(value bool) Creator {
	c.Recycle = &value
	return c
}
