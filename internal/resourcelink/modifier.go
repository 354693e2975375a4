package resourcelink

import (
	"encoding/json"

	"github.com/wheelibin/huelib/internal/wire"
)

type fields struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	ClassID     *uint16   `json:"classid,omitempty"`
	Links       *[]string `json:"links,omitempty"`
}

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

func (m Modifier) ClassID(value uint16) Modifier {
	m.fields.ClassID = &value
	return m
}

// Links replaces the linked resources.
func (m Modifier) Links(paths []string) Modifier {
	links := append([]string{}, paths...)
	m.fields.Links = &links
	return m
}

func (m Modifier) IsEmpty() bool {
	return wire.IsEmpty(m)
}

func (m Modifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.fields)
}

type Creator struct {
	fields
	Recycle *bool `json:"recycle,omitempty"`
}

func NewCreator(name string, classID uint16, links []string) Creator {
	c := Creator{}
	c.fields.Name = &name
	c.fields.ClassID = &classID
	c.fields.Links = &links
	return c
}

func (c Creator) WithDescription(value string) Creator {
	c.fields.Description = &value
	return c
}

func (c Creator) WithRecycle(value bool) Creator {
	c.Recycle = &value
	return c
}
