package scene

import (
	"encoding/json"

	"github.com/wheelibin/huelib/internal/models"
	"github.com/wheelibin/huelib/internal/wire"
)

type fields struct {
	Name            *string   `json:"name,omitempty"`
	Lights          *[]string `json:"lights,omitempty"`
	StoreLightState *bool     `json:"storelightstate,omitempty"`
}

// Modifier changes the attributes of a scene (PUT /scenes/<id>).
type Modifier struct {
	fields fields
}

func (m Modifier) Name(value string) Modifier {
	m.fields.Name = &value
	return m
}

func (m Modifier) Lights(ids []string) Modifier {
	lights := append([]string{}, ids...)
	m.fields.Lights = &lights
	return m
}

// StoreLightState makes the bridge overwrite the stored light states with
// the current states of the lights.
func (m Modifier) StoreLightState(value bool) Modifier {
	m.fields.StoreLightState = &value
	return m
}

func (m Modifier) IsEmpty() bool {
	return wire.IsEmpty(m)
}

func (m Modifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.fields)
}

type lightStateFields struct {
	On                    *bool          `json:"on,omitempty"`
	Brightness            *uint8         `json:"bri,omitempty"`
	Hue                   *uint16        `json:"hue,omitempty"`
	Saturation            *uint8         `json:"sat,omitempty"`
	ColorSpaceCoordinates *[2]float32    `json:"xy,omitempty"`
	ColorTemperature      *uint16        `json:"ct,omitempty"`
	Effect                *models.Effect `json:"effect,omitempty"`
	TransitionTime        *uint16        `json:"transitiontime,omitempty"`
}

// LightStateModifier changes the stored state of one light in a scene
// (PUT /scenes/<id>/lightstates/<light id>). Stored states are absolute, so
// there are no increments.
type LightStateModifier struct {
	fields lightStateFields
}

func (m LightStateModifier) On(value bool) LightStateModifier {
	m.fields.On = &value
	return m
}

func (m LightStateModifier) Brightness(value uint8) LightStateModifier {
	m.fields.Brightness = &value
	return m
}

func (m LightStateModifier) Hue(value uint16) LightStateModifier {
	m.fields.Hue = &value
	return m
}

func (m LightStateModifier) Saturation(value uint8) LightStateModifier {
	m.fields.Saturation = &value
	return m
}

func (m LightStateModifier) ColorSpaceCoordinates(value [2]float32) LightStateModifier {
	m.fields.ColorSpaceCoordinates = &value
	return m
}

func (m LightStateModifier) ColorTemperature(value uint16) LightStateModifier {
	m.fields.ColorTemperature = &value
	return m
}

func (m LightStateModifier) Effect(value models.Effect) LightStateModifier {
	m.fields.Effect = &value
	return m
}

func (m LightStateModifier) TransitionTime(value uint16) LightStateModifier {
	m.fields.TransitionTime = &value
	return m
}

func (m LightStateModifier) IsEmpty() bool {
	return wire.IsEmpty(m)
}

func (m LightStateModifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.fields)
}

// Creator is the body of POST /scenes. Light scenes need lights, group
// scenes need a group and take their lights from it.
type Creator struct {
	Name    string    `json:"name"`
	Kind    *Kind     `json:"type,omitempty"`
	Group   *string   `json:"group,omitempty"`
	Lights  *[]string `json:"lights,omitempty"`
	Recycle *bool     `json:"recycle,omitempty"`
	AppData *AppData  `json:"appdata,omitempty"`
	Picture *string   `json:"picture,omitempty"`
}

func NewLightSceneCreator(name string, lights []string) Creator {
	kind := KindLight
	return Creator{Name: name, Kind: &kind, Lights: &lights}
}

func NewGroupSceneCreator(name string, group string) Creator {
	kind := KindGroup
	return Creator{Name: name, Kind: &kind, Group: &group}
}

func (c Creator) WithRecycle(value bool) Creator {
	c.Recycle = &value
	return c
}

func (c Creator) WithAppData(value AppData) Creator {
	c.AppData = &value
	return c
}

func (c Creator) WithPicture(value string) Creator {
	c.Picture = &value
	return c
}
