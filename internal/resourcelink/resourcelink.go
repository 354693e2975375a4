package resourcelink

import (
	"encoding/json"

	"github.com/wheelibin/huelib/internal/wire"
)

// Resourcelink groups bridge resources that belong to one feature of an app,
// e.g. the sensors, rules and scenes of a configured switch.
type Resourcelink struct {
	ID          string
	Name        string
	Description string
	Kind        Kind
	ClassID     uint16
	Owner       string
	Recycle     bool
	// resource paths, e.g. /sensors/2
	Links []string
}

func (r *Resourcelink) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("name", &r.Name)
	o.Required("description", &r.Description)
	o.Required("type", &r.Kind)
	o.Required("classid", &r.ClassID)
	o.Required("owner", &r.Owner)
	o.Required("recycle", &r.Recycle)
	o.Required("links", &r.Links)
	return o.Err()
}

type Kind string

const KindLink Kind = "Link"

func (k *Kind) UnmarshalJSON(data []byte) error {
	return wire.DecodeToken(data, k, KindLink)
}

func Decode(data []byte) (Resourcelink, error) {
	var r Resourcelink
	if err := json.Unmarshal(data, &r); err != nil {
		return Resourcelink{}, err
	}
	return r, nil
}

func DecodeAll(data []byte) ([]Resourcelink, error) {
	return wire.DecodeCollection(data, func(r *Resourcelink, id string) {
		r.ID = id
	})
}
