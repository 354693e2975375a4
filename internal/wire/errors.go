package wire

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMissingField is a required member that is absent or null.
	ErrMissingField = errors.New("missing field")
	// ErrUnknownVariant is a token or code outside a closed set.
	ErrUnknownVariant = errors.New("unknown variant")
	// ErrInvalidFormat is a value that does not match its wire format.
	ErrInvalidFormat = errors.New("invalid format")
)

// FieldError is a decode failure at a dotted JSON path (e.g. "state.bri").
type FieldError struct {
	Path string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("decoding %s: %s", e.Path, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// At prefixes the path of err with key, so that errors raised by nested
// decoders carry the full path from the outermost object.
func At(key string, err error) error {
	if err == nil {
		return nil
	}

	var fe *FieldError
	if errors.As(err, &fe) {
		return &FieldError{Path: key + "." + fe.Path, Err: fe.Err}
	}

	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		path := key
		if te.Field != "" {
			path = key + "." + te.Field
		}
		return &FieldError{Path: path, Err: fmt.Errorf("cannot decode %s into %s", te.Value, te.Type)}
	}

	return &FieldError{Path: key, Err: err}
}
