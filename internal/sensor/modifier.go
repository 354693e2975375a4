package sensor

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/wheelibin/huelib/internal/wire"
)

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

// StateModifier changes the state of a CLIP sensor. The bridge rejects state
// changes for ZigBee sensors.
type StateModifier struct {
	fields struct {
		Presence *bool `json:"presence,omitempty"`
		Flag     *bool `json:"flag,omitempty"`
		Status   *int  `json:"status,omitempty"`
	}
}

func (m StateModifier) Presence(value bool) StateModifier {
	m.fields.Presence = &value
	return m
}

func (m StateModifier) Flag(value bool) StateModifier {
	m.fields.Flag = &value
	return m
}

func (m StateModifier) Status(value int) StateModifier {
	m.fields.Status = &value
	return m
}

func (m StateModifier) IsEmpty() bool {
	return wire.IsEmpty(m)
}

func (m StateModifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.fields)
}

type ConfigModifier struct {
	fields struct {
		On            *bool   `json:"on,omitempty"`
		SunriseOffset *int8   `json:"sunriseoffset,omitempty"`
		SunsetOffset  *int8   `json:"sunsetoffset,omitempty"`
		Latitude      *string `json:"lat,omitempty"`
		Longitude     *string `json:"long,omitempty"`
	}
}

func (m ConfigModifier) On(value bool) ConfigModifier {
	m.fields.On = &value
	return m
}

// SunriseOffset shifts sunrise of a Daylight sensor by value minutes.
func (m ConfigModifier) SunriseOffset(value int8) ConfigModifier {
	m.fields.SunriseOffset = &value
	return m
}

func (m ConfigModifier) SunsetOffset(value int8) ConfigModifier {
	m.fields.SunsetOffset = &value
	return m
}

// Location configures the Daylight sensor. The bridge only reads this back as
// "configured", it never returns the coordinates.
func (m ConfigModifier) Location(lat, lng float64) ConfigModifier {
	latitude := formatCoordinate(lat, "N", "S")
	longitude := formatCoordinate(lng, "E", "W")
	m.fields.Latitude = &latitude
	m.fields.Longitude = &longitude
	return m
}

func (m ConfigModifier) IsEmpty() bool {
	return wire.IsEmpty(m)
}

func (m ConfigModifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.fields)
}

// formats 52.3 as "052.3000N"
func formatCoordinate(v float64, positive, negative string) string {
	hemisphere := positive
	if v < 0 {
		hemisphere = negative
	}
	return fmt.Sprintf("%08.4f%s", math.Abs(v), hemisphere)
}
