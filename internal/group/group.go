package group

import (
	"encoding/json"

	"github.com/wheelibin/huelib/internal/models"
	"github.com/wheelibin/huelib/internal/wire"
)

type Group struct {
	ID      string
	Name    string
	Lights  []string
	Sensors []string
	Kind    Kind
	// room class such as "Living room", only set for rooms
	Class   *string
	State   State
	Recycle *bool
	// last state sent to every light of the group
	Action   Action
	ModelID  *string
	UniqueID *string
}

func (g *Group) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("name", &g.Name)
	o.Required("lights", &g.Lights)
	o.Optional("sensors", &g.Sensors)
	o.Required("type", &g.Kind)
	o.Optional("class", &g.Class)
	o.Required("state", &g.State)
	o.Optional("recycle", &g.Recycle)
	o.Required("action", &g.Action)
	o.Optional("modelid", &g.ModelID)
	o.Optional("uniqueid", &g.UniqueID)
	return o.Err()
}

type Kind string

const (
	KindLightGroup    Kind = "LightGroup"
	KindLuminaire     Kind = "Luminaire"
	KindLightSource   Kind = "Lightsource"
	KindRoom          Kind = "Room"
	KindEntertainment Kind = "Entertainment"
	KindZone          Kind = "Zone"
)

var Kinds = []Kind{KindLightGroup, KindLuminaire, KindLightSource, KindRoom, KindEntertainment, KindZone}

func (k *Kind) UnmarshalJSON(data []byte) error {
	return wire.DecodeToken(data, k, Kinds...)
}

type State struct {
	AllOn bool
	AnyOn bool
}

func (s *State) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("all_on", &s.AllOn)
	o.Required("any_on", &s.AnyOn)
	return o.Err()
}

type Action struct {
	On                    *bool
	Brightness            *uint8
	Hue                   *uint16
	Saturation            *uint8
	ColorSpaceCoordinates *[2]float32
	ColorTemperature      *uint16
	Alert                 *models.Alert
	Effect                *models.Effect
	ColorMode             *models.ColorMode
}

func (a *Action) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Optional("on", &a.On)
	o.Optional("bri", &a.Brightness)
	o.Optional("hue", &a.Hue)
	o.Optional("sat", &a.Saturation)
	o.Optional("xy", &a.ColorSpaceCoordinates)
	o.Optional("ct", &a.ColorTemperature)
	o.Optional("alert", &a.Alert)
	o.Optional("effect", &a.Effect)
	o.Optional("colormode", &a.ColorMode)
	return o.Err()
}

func Decode(data []byte) (Group, error) {
	var g Group
	if err := json.Unmarshal(data, &g); err != nil {
		return Group{}, err
	}
	return g, nil
}

func DecodeAll(data []byte) ([]Group, error) {
	return wire.DecodeCollection(data, func(g *Group, id string) {
		g.ID = id
	})
}
