package capabilities

import (
	"encoding/json"

	"github.com/wheelibin/huelib/internal/wire"
)

// Capabilities lists how many more resources of each kind the bridge can
// hold, and the timezones it accepts.
type Capabilities struct {
	Lights        Count
	Sensors       Sensors
	Groups        Count
	Scenes        Scenes
	Schedules     Count
	Rules         Rules
	Resourcelinks Count
	Streaming     Streaming
	Timezones     []string
}

func (c *Capabilities) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("lights", &c.Lights)
	o.Required("sensors", &c.Sensors)
	o.Required("groups", &c.Groups)
	o.Required("scenes", &c.Scenes)
	o.Required("schedules", &c.Schedules)
	o.Required("rules", &c.Rules)
	o.Required("resourcelinks", &c.Resourcelinks)
	o.Optional("streaming", &c.Streaming)

	var tz timezones
	o.Required("timezones", &tz)
	c.Timezones = tz.Values
	return o.Err()
}

// Count of free and total slots.
type Count struct {
	Available uint
	Total     uint
}

func (c *Count) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	readCount(o, c)
	return o.Err()
}

func readCount(o *wire.Object, c *Count) {
	o.Required("available", &c.Available)
	o.Required("total", &c.Total)
}

// Sensors splits the sensor count by protocol.
type Sensors struct {
	Count
	CLIP Count
	ZLL  Count
	ZGP  Count
}

func (s *Sensors) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	readCount(o, &s.Count)
	o.Required("clip", &s.CLIP)
	o.Required("zll", &s.ZLL)
	o.Required("zgp", &s.ZGP)
	return o.Err()
}

type Scenes struct {
	Count
	LightStates Count
}

func (s *Scenes) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	readCount(o, &s.Count)
	o.Required("lightstates", &s.LightStates)
	return o.Err()
}

type Rules struct {
	Count
	Conditions Count
	Actions    Count
}

func (r *Rules) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	readCount(o, &r.Count)
	o.Required("conditions", &r.Conditions)
	o.Required("actions", &r.Actions)
	return o.Err()
}

// Streaming is the entertainment capacity. Absent on bridges without
// entertainment support.
type Streaming struct {
	Count
	Channels uint
}

func (s *Streaming) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	readCount(o, &s.Count)
	o.Required("channels", &s.Channels)
	return o.Err()
}

type timezones struct {
	Values []string
}

func (t *timezones) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("values", &t.Values)
	return o.Err()
}

func Decode(data []byte) (Capabilities, error) {
	var c Capabilities
	if err := json.Unmarshal(data, &c); err != nil {
		return Capabilities{}, err
	}
	return c, nil
}
