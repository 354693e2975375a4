package scene

import (
	"encoding/json"
	"time"

	"github.com/wheelibin/huelib/internal/models"
	"github.com/wheelibin/huelib/internal/wire"
)

type Scene struct {
	ID   string
	Name string
	Kind Kind
	// only set for group scenes
	Group       *string
	Lights      []string
	Owner       string
	Recycle     bool
	Locked      bool
	AppData     AppData
	Picture     *string
	LastUpdated *time.Time
	Version     Version
	// only returned when a single scene is requested
	LightStates []LightState
}

func (s *Scene) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("name", &s.Name)
	o.Required("type", &s.Kind)
	o.Optional("group", &s.Group)
	o.Required("lights", &s.Lights)
	o.Required("owner", &s.Owner)
	o.Required("recycle", &s.Recycle)
	o.Required("locked", &s.Locked)
	o.Optional("appdata", &s.AppData)
	o.OptionalString("picture", &s.Picture)
	o.OptionalDateTime("lastupdated", &s.LastUpdated)
	o.Required("version", &s.Version)
	if o.Has("lightstates") {
		var raw json.RawMessage
		o.Required("lightstates", &raw)
		if o.Err() == nil {
			states, err := wire.DecodeCollection(raw, func(l *LightState, id string) {
				l.LightID = id
			})
			if err != nil {
				return wire.At("lightstates", err)
			}
			s.LightStates = states
		}
	}
	return o.Err()
}

type Kind string

const (
	KindLight Kind = "LightScene"
	// bound to a group; the lights follow the group membership
	KindGroup Kind = "GroupScene"
)

func (k *Kind) UnmarshalJSON(data []byte) error {
	return wire.DecodeToken(data, k, KindLight, KindGroup)
}

// Version of the scene format. Version 1 scenes cannot be recalled from the
// group action.
type Version int

const (
	VersionOne Version = 1
	VersionTwo Version = 2
)

func (v *Version) UnmarshalJSON(data []byte) error {
	return wire.DecodeCode(data, v, VersionOne, VersionTwo)
}

// AppData is free-form data owned by the app that created the scene.
type AppData struct {
	Version *int    `json:"version,omitempty"`
	Data    *string `json:"data,omitempty"`
}

func (a *AppData) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Optional("version", &a.Version)
	o.Optional("data", &a.Data)
	return o.Err()
}

// LightState is the stored state of one light of the scene.
type LightState struct {
	LightID               string
	On                    *bool
	Brightness            *uint8
	Hue                   *uint16
	Saturation            *uint8
	ColorSpaceCoordinates *[2]float32
	ColorTemperature      *uint16
	Effect                *models.Effect
	TransitionTime        *uint16
}

func (l *LightState) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Optional("on", &l.On)
	o.Optional("bri", &l.Brightness)
	o.Optional("hue", &l.Hue)
	o.Optional("sat", &l.Saturation)
	o.Optional("xy", &l.ColorSpaceCoordinates)
	o.Optional("ct", &l.ColorTemperature)
	o.Optional("effect", &l.Effect)
	o.Optional("transitiontime", &l.TransitionTime)
	return o.Err()
}

func Decode(data []byte) (Scene, error) {
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return Scene{}, err
	}
	return s, nil
}

func DecodeAll(data []byte) ([]Scene, error) {
	return wire.DecodeCollection(data, func(s *Scene, id string) {
		s.ID = id
	})
}
