package models

import "github.com/wheelibin/huelib/internal/wire"

// Alert effect of a light.
type Alert string

const (
	// one breathe cycle
	AlertSelect Alert = "select"
	// breathe cycles for 15 seconds or until the alert is set to none
	AlertLSelect Alert = "lselect"
	AlertNone    Alert = "none"
)

var Alerts = []Alert{AlertSelect, AlertLSelect, AlertNone}

func (a *Alert) UnmarshalJSON(data []byte) error {
	return wire.DecodeToken(data, a, Alerts...)
}

// Dynamic effect of a light.
type Effect string

const (
	// cycles through all hues with the current brightness and saturation
	EffectColorloop Effect = "colorloop"
	EffectNone      Effect = "none"
)

var Effects = []Effect{EffectColorloop, EffectNone}

func (e *Effect) UnmarshalJSON(data []byte) error {
	return wire.DecodeToken(data, e, Effects...)
}

// ColorMode reports which of the color attributes of a light is authoritative.
type ColorMode string

const (
	ColorModeColorTemperature      ColorMode = "ct"
	ColorModeHueAndSaturation      ColorMode = "hs"
	ColorModeColorSpaceCoordinates ColorMode = "xy"
)

var ColorModes = []ColorMode{ColorModeColorTemperature, ColorModeHueAndSaturation, ColorModeColorSpaceCoordinates}

func (c *ColorMode) UnmarshalJSON(data []byte) error {
	return wire.DecodeToken(data, c, ColorModes...)
}

// ActionRequestType is the HTTP method an action sends its body with.
type ActionRequestType string

const (
	ActionRequestPut    ActionRequestType = "PUT"
	ActionRequestPost   ActionRequestType = "POST"
	ActionRequestDelete ActionRequestType = "DELETE"
)

var ActionRequestTypes = []ActionRequestType{ActionRequestPut, ActionRequestPost, ActionRequestDelete}

func (r *ActionRequestType) UnmarshalJSON(data []byte) error {
	return wire.DecodeToken(data, r, ActionRequestTypes...)
}

// Action of a schedule or rule.
type Action struct {
	// address the action is executed against, e.g. /api/<user>/groups/0/action
	Address string            `json:"address"`
	Method  ActionRequestType `json:"method"`
	Body    map[string]any    `json:"body"`
}

func (a *Action) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("address", &a.Address)
	o.Required("method", &a.Method)
	o.Required("body", &a.Body)
	return o.Err()
}
