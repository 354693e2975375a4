package group

import (
	"encoding/json"

	"github.com/wheelibin/huelib/internal/light"
	"github.com/wheelibin/huelib/internal/models"
	"github.com/wheelibin/huelib/internal/wire"
)

// AttributeModifier changes a group (PUT /groups/<id>).
type AttributeModifier struct {
	fields struct {
		Name    *string   `json:"name,omitempty"`
		Lights  *[]string `json:"lights,omitempty"`
		Sensors *[]string `json:"sensors,omitempty"`
		Class   *string   `json:"class,omitempty"`
	}
}

func (m AttributeModifier) Name(value string) AttributeModifier {
	m.fields.Name = &value
	return m
}

// Lights replaces the member lights. Luminaires and light sources cannot be
// changed.
func (m AttributeModifier) Lights(ids []string) AttributeModifier {
	lights := append([]string{}, ids...)
	m.fields.Lights = &lights
	return m
}

func (m AttributeModifier) Sensors(ids []string) AttributeModifier {
	sensors := append([]string{}, ids...)
	m.fields.Sensors = &sensors
	return m
}

// Class changes the room class, rooms only.
func (m AttributeModifier) Class(value string) AttributeModifier {
	m.fields.Class = &value
	return m
}

func (m AttributeModifier) IsEmpty() bool {
	return wire.IsEmpty(m)
}

func (m AttributeModifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.fields)
}

// StateModifier changes the state of every light in a group
// (PUT /groups/<id>/action). It takes the same attributes as a light state
// modifier plus a scene to recall.
type StateModifier struct {
	state light.StateModifier
	scene *string
}

func (m StateModifier) On(value bool) StateModifier {
	m.state = m.state.On(value)
	return m
}

func (m StateModifier) Brightness(t models.ModifierType, value uint8) StateModifier {
	m.state = m.state.Brightness(t, value)
	return m
}

func (m StateModifier) Hue(t models.ModifierType, value uint16) StateModifier {
	m.state = m.state.Hue(t, value)
	return m
}

func (m StateModifier) Saturation(t models.ModifierType, value uint8) StateModifier {
	m.state = m.state.Saturation(t, value)
	return m
}

func (m StateModifier) ColorSpaceCoordinates(t models.CoordinateModifierType, value [2]float32) StateModifier {
	m.state = m.state.ColorSpaceCoordinates(t, value)
	return m
}

func (m StateModifier) ColorTemperature(t models.ModifierType, value uint16) StateModifier {
	m.state = m.state.ColorTemperature(t, value)
	return m
}

func (m StateModifier) Alert(value models.Alert) StateModifier {
	m.state = m.state.Alert(value)
	return m
}

func (m StateModifier) Effect(value models.Effect) StateModifier {
	m.state = m.state.Effect(value)
	return m
}

func (m StateModifier) TransitionTime(value uint16) StateModifier {
	m.state = m.state.TransitionTime(value)
	return m
}

// Scene recalls the scene with the given id on the group.
func (m StateModifier) Scene(id string) StateModifier {
	m.scene = &id
	return m
}

func (m StateModifier) IsEmpty() bool {
	return wire.IsEmpty(m)
}

func (m StateModifier) MarshalJSON() ([]byte, error) {
	body, err := json.Marshal(m.state)
	if err != nil || m.scene == nil {
		return body, err
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	scene, err := json.Marshal(*m.scene)
	if err != nil {
		return nil, err
	}
	fields["scene"] = scene
	return json.Marshal(fields)
}

// Creator is the body of POST /groups.
type Creator struct {
	Name    string   `json:"name"`
	Lights  []string `json:"lights"`
	Kind    *Kind    `json:"type,omitempty"`
	Class   *string  `json:"class,omitempty"`
	Recycle *bool    `json:"recycle,omitempty"`
}

func NewCreator(name string, lights []string) Creator {
	return Creator{Name: name, Lights: append([]string{}, lights...)}
}

func (c Creator) WithKind(kind Kind) Creator {
	c.Kind = &kind
	return c
}

func (c Creator) WithClass(class string) Creator {
	c.Class = &class
	return c
}

func (c Creator) WithRecycle(recycle bool) Creator {
	c.Recycle = &recycle
	return c
}
