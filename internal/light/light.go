package light

import (
	"encoding/json"
	"time"

	"github.com/wheelibin/huelib/internal/models"
	"github.com/wheelibin/huelib/internal/wire"
)

// A light connected to the bridge.
type Light struct {
	// set from the key of the enclosing collection, empty when decoded alone
	ID               string
	Name             string
	Kind             string
	State            State
	ModelID          string
	UniqueID         string
	ProductID        *string
	ProductName      *string
	ManufacturerName *string
	SoftwareVersion  string
	SoftwareUpdate   SoftwareUpdate
	Config           Config
	Capabilities     Capabilities
}

func (l *Light) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("name", &l.Name)
	o.Required("type", &l.Kind)
	o.Required("state", &l.State)
	o.Required("modelid", &l.ModelID)
	o.Required("uniqueid", &l.UniqueID)
	o.Optional("productid", &l.ProductID)
	o.Optional("productname", &l.ProductName)
	o.Optional("manufacturername", &l.ManufacturerName)
	o.Required("swversion", &l.SoftwareVersion)
	o.Required("swupdate", &l.SoftwareUpdate)
	o.Required("config", &l.Config)
	o.Required("capabilities", &l.Capabilities)
	return o.Err()
}

// State of a light. Attributes the light does not support are nil.
type State struct {
	On *bool
	// 1 (minimum) to 254 (maximum)
	Brightness *uint8
	// 0 and 65535 are red, 25500 is green and 46920 is blue
	Hue *uint16
	// 0 (white) to 254 (most saturated)
	Saturation *uint8
	// CIE x and y, both between 0 and 1
	ColorSpaceCoordinates *[2]float32
	// mired
	ColorTemperature *uint16
	Alert            *models.Alert
	Effect           *models.Effect
	ColorMode        *models.ColorMode
	Reachable        bool
}

func (s *State) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Optional("on", &s.On)
	o.Optional("bri", &s.Brightness)
	o.Optional("hue", &s.Hue)
	o.Optional("sat", &s.Saturation)
	o.Optional("xy", &s.ColorSpaceCoordinates)
	o.Optional("ct", &s.ColorTemperature)
	o.Optional("alert", &s.Alert)
	o.Optional("effect", &s.Effect)
	o.Optional("colormode", &s.ColorMode)
	o.Required("reachable", &s.Reachable)
	return o.Err()
}

type SoftwareUpdate struct {
	State SoftwareUpdateState
	// when the last update was installed
	LastInstall *time.Time
}

func (u *SoftwareUpdate) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("state", &u.State)
	o.OptionalDateTime("lastinstall", &u.LastInstall)
	return o.Err()
}

type SoftwareUpdateState string

const (
	SoftwareUpdateNoUpdates      SoftwareUpdateState = "noupdates"
	SoftwareUpdateNotUpdatable   SoftwareUpdateState = "notupdatable"
	SoftwareUpdateReadyToInstall SoftwareUpdateState = "readytoinstall"
	SoftwareUpdateTransferring   SoftwareUpdateState = "transferring"
	SoftwareUpdateInstalling     SoftwareUpdateState = "installing"
)

var SoftwareUpdateStates = []SoftwareUpdateState{
	SoftwareUpdateNoUpdates,
	SoftwareUpdateNotUpdatable,
	SoftwareUpdateReadyToInstall,
	SoftwareUpdateTransferring,
	SoftwareUpdateInstalling,
}

func (s *SoftwareUpdateState) UnmarshalJSON(data []byte) error {
	return wire.DecodeToken(data, s, SoftwareUpdateStates...)
}

type Config struct {
	ArcheType string
	Function  string
	Direction string
	Startup   *StartupConfig
}

func (c *Config) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("archetype", &c.ArcheType)
	o.Required("function", &c.Function)
	o.Required("direction", &c.Direction)
	o.Optional("startup", &c.Startup)
	return o.Err()
}

type StartupConfig struct {
	Mode       string
	Configured bool
}

func (c *StartupConfig) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("mode", &c.Mode)
	o.Required("configured", &c.Configured)
	return o.Err()
}

type Capabilities struct {
	Certified bool
	Control   ControlCapabilities
	Streaming StreamingCapabilities
}

func (c *Capabilities) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("certified", &c.Certified)
	o.Required("control", &c.Control)
	o.Required("streaming", &c.Streaming)
	return o.Err()
}

type ControlCapabilities struct {
	MinDimLevel      *int
	MaxLumen         *int
	ColorGamut       [][2]float32
	ColorGamutType   *string
	ColorTemperature *ColorTemperatureCapabilities
}

func (c *ControlCapabilities) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Optional("mindimlevel", &c.MinDimLevel)
	o.Optional("maxlumen", &c.MaxLumen)
	o.Optional("colorgamut", &c.ColorGamut)
	o.Optional("colorgamuttype", &c.ColorGamutType)
	o.Optional("ct", &c.ColorTemperature)
	return o.Err()
}

type ColorTemperatureCapabilities struct {
	Min int
	Max int
}

func (c *ColorTemperatureCapabilities) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("min", &c.Min)
	o.Required("max", &c.Max)
	return o.Err()
}

type StreamingCapabilities struct {
	Renderer bool
	Proxy    bool
}

func (c *StreamingCapabilities) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("renderer", &c.Renderer)
	o.Required("proxy", &c.Proxy)
	return o.Err()
}

// Decode decodes a single light as returned by GET /lights/<id>. The result
// has no ID.
func Decode(data []byte) (Light, error) {
	var l Light
	if err := json.Unmarshal(data, &l); err != nil {
		return Light{}, err
	}
	return l, nil
}

// DecodeAll decodes the GET /lights collection, in payload order.
func DecodeAll(data []byte) ([]Light, error) {
	return wire.DecodeCollection(data, func(l *Light, id string) {
		l.ID = id
	})
}
