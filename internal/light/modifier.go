package light

import (
	"encoding/json"

	"github.com/wheelibin/huelib/internal/models"
	"github.com/wheelibin/huelib/internal/wire"
)

// AttributeModifier changes the attributes of a light (PUT /lights/<id>).
type AttributeModifier struct {
	fields struct {
		Name *string `json:"name,omitempty"`
	}
}

func (m AttributeModifier) Name(value string) AttributeModifier {
	m.fields.Name = &value
	return m
}

func (m AttributeModifier) IsEmpty() bool {
	return wire.IsEmpty(m)
}

func (m AttributeModifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.fields)
}

type stateFields struct {
	On                             *bool          `json:"on,omitempty"`
	Brightness                     *uint8         `json:"bri,omitempty"`
	Hue                            *uint16        `json:"hue,omitempty"`
	Saturation                     *uint8         `json:"sat,omitempty"`
	ColorSpaceCoordinates          *[2]float32    `json:"xy,omitempty"`
	ColorTemperature               *uint16        `json:"ct,omitempty"`
	Alert                          *models.Alert  `json:"alert,omitempty"`
	Effect                         *models.Effect `json:"effect,omitempty"`
	TransitionTime                 *uint16        `json:"transitiontime,omitempty"`
	BrightnessIncrement            *int16         `json:"bri_inc,omitempty"`
	HueIncrement                   *int32         `json:"hue_inc,omitempty"`
	SaturationIncrement            *int16         `json:"sat_inc,omitempty"`
	ColorSpaceCoordinatesIncrement *[2]float32    `json:"xy_inc,omitempty"`
	ColorTemperatureIncrement      *int32         `json:"ct_inc,omitempty"`
}

// StateModifier changes the state of a light (PUT /lights/<id>/state).
// Setters return an updated copy; only attributes that were set are sent.
type StateModifier struct {
	fields stateFields
}

// On turns the light on or off.
func (m StateModifier) On(value bool) StateModifier {
	m.fields.On = &value
	return m
}

func (m StateModifier) Brightness(t models.ModifierType, value uint8) StateModifier {
	models.ApplyModifier(t, value, &m.fields.Brightness, &m.fields.BrightnessIncrement)
	return m
}

func (m StateModifier) Hue(t models.ModifierType, value uint16) StateModifier {
	models.ApplyModifier(t, value, &m.fields.Hue, &m.fields.HueIncrement)
	return m
}

func (m StateModifier) Saturation(t models.ModifierType, value uint8) StateModifier {
	models.ApplyModifier(t, value, &m.fields.Saturation, &m.fields.SaturationIncrement)
	return m
}

// ColorSpaceCoordinates sets the CIE x and y of the light. Override values
// must be between 0 and 1, the other modifier types take values up to 0.5.
func (m StateModifier) ColorSpaceCoordinates(t models.CoordinateModifierType, value [2]float32) StateModifier {
	models.ApplyCoordinateModifier(t, value, &m.fields.ColorSpaceCoordinates, &m.fields.ColorSpaceCoordinatesIncrement)
	return m
}

func (m StateModifier) ColorTemperature(t models.ModifierType, value uint16) StateModifier {
	models.ApplyModifier(t, value, &m.fields.ColorTemperature, &m.fields.ColorTemperatureIncrement)
	return m
}

func (m StateModifier) Alert(value models.Alert) StateModifier {
	m.fields.Alert = &value
	return m
}

func (m StateModifier) Effect(value models.Effect) StateModifier {
	m.fields.Effect = &value
	return m
}

// TransitionTime sets the duration of the change in multiples of 100ms.
func (m StateModifier) TransitionTime(value uint16) StateModifier {
	m.fields.TransitionTime = &value
	return m
}

func (m StateModifier) IsEmpty() bool {
	return wire.IsEmpty(m)
}

func (m StateModifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.fields)
}
