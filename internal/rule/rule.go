package rule

import (
	"encoding/json"
	"time"

	"github.com/wheelibin/huelib/internal/models"
	"github.com/wheelibin/huelib/internal/wire"
)

// Rule runs its actions when all of its conditions hold.
type Rule struct {
	ID      string
	Name    string
	Owner   string
	Created time.Time
	// nil when the rule never fired
	LastTriggered  *time.Time
	TimesTriggered uint
	Status         Status
	Conditions     []Condition
	Actions        []models.Action
	Recycle        *bool
}

func (r *Rule) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("name", &r.Name)
	o.Required("owner", &r.Owner)
	o.DateTime("created", &r.Created)
	o.OptionalDateTime("lasttriggered", &r.LastTriggered)
	o.Required("timestriggered", &r.TimesTriggered)
	o.Required("status", &r.Status)
	o.Required("conditions", &r.Conditions)
	o.Required("actions", &r.Actions)
	o.Optional("recycle", &r.Recycle)
	return o.Err()
}

type Status string

const (
	StatusEnabled  Status = "enabled"
	StatusDisabled Status = "disabled"
	// a resource the rule refers to was deleted
	StatusResourceDeleted Status = "resourcedeleted"
)

func (s *Status) UnmarshalJSON(data []byte) error {
	return wire.DecodeToken(data, s, StatusEnabled, StatusDisabled, StatusResourceDeleted)
}

type Condition struct {
	// sensor attribute, e.g. /sensors/2/state/buttonevent
	Address  string   `json:"address"`
	Operator Operator `json:"operator"`
	Value    *string  `json:"value,omitempty"`
}

func (c *Condition) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("address", &c.Address)
	o.Required("operator", &c.Operator)
	o.Optional("value", &c.Value)
	return o.Err()
}

type Operator string

const (
	OperatorEqual     Operator = "eq"
	OperatorGreater   Operator = "gt"
	OperatorLess      Operator = "lt"
	OperatorChanged   Operator = "dx"
	OperatorDelayed   Operator = "ddx"
	OperatorStable    Operator = "stable"
	OperatorNotStable Operator = "not stable"
	OperatorIn        Operator = "in"
	OperatorNotIn     Operator = "not in"
)

var Operators = []Operator{
	OperatorEqual,
	OperatorGreater,
	OperatorLess,
	OperatorChanged,
	OperatorDelayed,
	OperatorStable,
	OperatorNotStable,
	OperatorIn,
	OperatorNotIn,
}

func (op *Operator) UnmarshalJSON(data []byte) error {
	return wire.DecodeToken(data, op, Operators...)
}

func Decode(data []byte) (Rule, error) {
	var r Rule
	if err := json.Unmarshal(data, &r); err != nil {
		return Rule{}, err
	}
	return r, nil
}

func DecodeAll(data []byte) ([]Rule, error) {
	return wire.DecodeCollection(data, func(r *Rule, id string) {
		r.ID = id
	})
}
