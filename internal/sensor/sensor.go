package sensor

import (
	"encoding/json"
	"time"

	"github.com/wheelibin/huelib/internal/wire"
)

// A sensor registered on the bridge. Physical ZigBee sensors and CLIP
// (software) sensors share this shape; attributes a sensor type does not
// report are nil.
type Sensor struct {
	ID               string
	Name             string
	TypeName         string
	ModelID          string
	UniqueID         *string
	ManufacturerName *string
	SoftwareVersion  string
	State            State
	Config           Config
	// whether the sensor is deleted automatically when no longer referenced
	Recycle *bool
}

func (s *Sensor) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("name", &s.Name)
	o.Required("type", &s.TypeName)
	o.Required("modelid", &s.ModelID)
	o.Optional("uniqueid", &s.UniqueID)
	o.Optional("manufacturername", &s.ManufacturerName)
	o.Required("swversion", &s.SoftwareVersion)
	o.Required("state", &s.State)
	o.Required("config", &s.Config)
	o.Optional("recycle", &s.Recycle)
	return o.Err()
}

type State struct {
	Presence *bool
	Flag     *bool
	// Daylight sensor
	Daylight    *bool
	ButtonEvent *int
	// hundredths of a degree celsius
	Temperature *int
	LightLevel  *int
	Dark        *bool
	// CLIPGenericStatus
	Status      *int
	LastUpdated *time.Time
}

func (s *State) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Optional("presence", &s.Presence)
	o.Optional("flag", &s.Flag)
	o.Optional("daylight", &s.Daylight)
	o.Optional("buttonevent", &s.ButtonEvent)
	o.Optional("temperature", &s.Temperature)
	o.Optional("lightlevel", &s.LightLevel)
	o.Optional("dark", &s.Dark)
	o.Optional("status", &s.Status)
	o.OptionalDateTime("lastupdated", &s.LastUpdated)
	return o.Err()
}

type Config struct {
	On        bool
	Reachable *bool
	// percent, only for battery powered devices
	Battery    *uint8
	Configured *bool
	// minutes, Daylight sensor only
	SunriseOffset *int8
	SunsetOffset  *int8
}

func (c *Config) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("on", &c.On)
	o.Optional("reachable", &c.Reachable)
	o.Optional("battery", &c.Battery)
	o.Optional("configured", &c.Configured)
	o.Optional("sunriseoffset", &c.SunriseOffset)
	o.Optional("sunsetoffset", &c.SunsetOffset)
	return o.Err()
}

func Decode(data []byte) (Sensor, error) {
	var s Sensor
	if err := json.Unmarshal(data, &s); err != nil {
		return Sensor{}, err
	}
	return s, nil
}

func DecodeAll(data []byte) ([]Sensor, error) {
	return wire.DecodeCollection(data, func(s *Sensor, id string) {
		s.ID = id
	})
}
