package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Object reads the members of a single JSON object field by field. The first
// failure is kept and reported by Err; later calls become no-ops.
type Object struct {
	fields map[string]json.RawMessage
	err    error
}

func ReadObject(data []byte) (*Object, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: expected object, got null", ErrInvalidFormat)
	}
	return &Object{fields: fields}, nil
}

func (o *Object) Err() error {
	return o.err
}

func (o *Object) Has(key string) bool {
	raw, ok := o.fields[key]
	return ok && !isNull(raw)
}

// Required decodes key into dst. An absent or null member is a missing field.
func (o *Object) Required(key string, dst any) {
	if o.err != nil {
		return
	}
	raw, ok := o.fields[key]
	if !ok || isNull(raw) {
		o.err = &FieldError{Path: key, Err: ErrMissingField}
		return
	}
	o.decode(key, raw, dst)
}

// Optional decodes key into dst when present. dst is normally a pointer to a
// pointer or slice, left nil when the member is absent or null.
func (o *Object) Optional(key string, dst any) {
	if o.err != nil || !o.Has(key) {
		return
	}
	o.decode(key, o.fields[key], dst)
}

func (o *Object) DateTime(key string, dst *time.Time) {
	var s string
	o.Required(key, &s)
	if o.err != nil {
		return
	}
	t, err := ParseDateTime(s)
	if err != nil {
		o.err = At(key, err)
		return
	}
	*dst = t
}

// OptionalDateTime leaves dst nil for an absent member, null or the sentinel.
func (o *Object) OptionalDateTime(key string, dst **time.Time) {
	var s *string
	o.Optional(key, &s)
	if o.err != nil || s == nil {
		return
	}
	t, err := ParseOptionalDateTime(*s)
	if err != nil {
		o.err = At(key, err)
		return
	}
	*dst = t
}

func (o *Object) OptionalClock(key string, dst **time.Time) {
	var s *string
	o.Optional(key, &s)
	if o.err != nil || s == nil {
		return
	}
	t, err := ParseOptionalClock(*s)
	if err != nil {
		o.err = At(key, err)
		return
	}
	*dst = t
}

// OptionalString treats the sentinel like an absent member.
func (o *Object) OptionalString(key string, dst **string) {
	var s *string
	o.Optional(key, &s)
	if o.err != nil || s == nil {
		return
	}
	*dst = ParseOptionalString(*s)
}

func (o *Object) decode(key string, raw json.RawMessage, dst any) {
	if err := json.Unmarshal(raw, dst); err != nil {
		o.err = At(key, err)
	}
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
