package response

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/wheelibin/huelib/internal/wire"
)

// Response is one outcome of a bridge request. Exactly one of Success and
// Error is set.
type Response struct {
	// bridge path (e.g. /lights/1/state/bri) to the value it now holds
	Success map[string]any
	Error   *Error
}

func (r *Response) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	switch {
	case o.Has("success"):
		o.Required("success", &r.Success)
	case o.Has("error"):
		o.Required("error", &r.Error)
	default:
		return fmt.Errorf("%w: expected success or error", wire.ErrUnknownVariant)
	}
	return o.Err()
}

// Error is an error reported by the bridge. It is data, not a failed call:
// one request can succeed for some attributes and fail for others.
type Error struct {
	Type        int
	Address     string
	Description string
}

func (e *Error) UnmarshalJSON(data []byte) error {
	o, err := wire.ReadObject(data)
	if err != nil {
		return err
	}
	o.Required("type", &e.Type)
	o.Required("address", &e.Address)
	o.Required("description", &e.Description)
	return o.Err()
}

func (e *Error) Error() string {
	return fmt.Sprintf("bridge error %d at %s: %s", e.Type, e.Address, e.Description)
}

// Error types documented by the bridge.
const (
	ErrorUnauthorizedUser    = 1
	ErrorInvalidJSON         = 2
	ErrorResourceUnavailable = 3
	ErrorMethodUnavailable   = 4
	ErrorMissingParameters   = 5
	ErrorParameterNotAvail   = 6
	ErrorInvalidValue        = 7
	ErrorParameterReadOnly   = 8
	ErrorTooManyItems        = 11
	ErrorPortalRequired      = 12
	ErrorLinkButtonNotPushed = 101
	ErrorDeviceIsOff         = 201
	ErrorInternal            = 901
)

// Parse decodes a response list, keeping the order of the bridge.
func Parse(data []byte) ([]Response, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	responses := make([]Response, 0, len(raw))
	for i, item := range raw {
		var r Response
		if err := json.Unmarshal(item, &r); err != nil {
			return nil, wire.At(fmt.Sprint(i), err)
		}
		responses = append(responses, r)
	}
	return responses, nil
}

func Errors(responses []Response) []*Error {
	return lo.FilterMap(responses, func(r Response, _ int) (*Error, bool) {
		return r.Error, r.Error != nil
	})
}

// Successes merges the success entries of responses into one map.
func Successes(responses []Response) map[string]any {
	return lo.Assign(lo.FilterMap(responses, func(r Response, _ int) (map[string]any, bool) {
		return r.Success, r.Success != nil
	})...)
}

// CreatedID returns the id of a resource created with POST. The bridge
// answers with {"success": {"id": "<id>"}}; some resources return the full
// path instead (e.g. /lights/new).
func CreatedID(responses []Response) (string, bool) {
	for _, r := range responses {
		if id, ok := r.Success["id"].(string); ok {
			return id[strings.LastIndex(id, "/")+1:], true
		}
	}
	return "", false
}

// Username returns the application key created by POST /api.
func Username(responses []Response) (string, bool) {
	for _, r := range responses {
		if name, ok := r.Success["username"].(string); ok {
			return name, true
		}
	}
	return "", false
}

// ClientKey returns the entertainment client key, if one was generated.
func ClientKey(responses []Response) (string, bool) {
	for _, r := range responses {
		if key, ok := r.Success["clientkey"].(string); ok {
			return key, true
		}
	}
	return "", false
}
