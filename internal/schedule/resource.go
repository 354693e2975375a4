package schedule

import (
	"encoding/json"
	"time"

	"github.com/wheelibin/huelib/internal/models"
	"github.com/wheelibin/huelib/internal/wire"
)

// Schedule is a timer on the bridge that runs a command.
type Schedule struct {
	ID          string
	Name        string
	Description string
	Command     models.Action
	// bridge time pattern such as "W124/T06:00:00" or "PT00:10:00"
	LocalTime string
	Created   time.Time
	Status    Status
	// whether the bridge deletes the schedule once it has expired
	AutoDelete *bool
	// when a timer was (re)started
	StartTime *time.Time
	Recycle   *bool
}

func (s *Schedule) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("name", &s.Name)
	o.Required("description", &s.Description)
	o.Required("command", &s.Command)
	o.Required("localtime", &s.LocalTime)
	o.DateTime("created", &s.Created)
	o.Required("status", &s.Status)
	o.Optional("autodelete", &s.AutoDelete)
	o.OptionalDateTime("starttime", &s.StartTime)
	o.Optional("recycle", &s.Recycle)
	return o.Err()
}

type Status string

const (
	StatusEnabled  Status = "enabled"
	StatusDisabled Status = "disabled"
)

func (s *Status) UnmarshalJSON(data []byte) error {
	return wire.DecodeToken(data, s, StatusEnabled, StatusDisabled)
}

func Decode(data []byte) (Schedule, error) {
	var s Schedule
	if err := json.Unmarshal(data, &s); err != nil {
		return Schedule{}, err
	}
	return s, nil
}

func DecodeAll(data []byte) ([]Schedule, error) {
	return wire.DecodeCollection(data, func(s *Schedule, id string) {
		s.ID = id
	})
}
