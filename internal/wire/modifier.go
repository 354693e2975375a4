package wire

import (
	"encoding/json"
	"reflect"
)

// Modifier is a sparse change set for one bridge resource.
type Modifier interface {
	json.Marshaler
	IsEmpty() bool
}

// IsEmpty reports whether m equals its zero value, i.e. no setter was called.
func IsEmpty[M any](m M) bool {
	var zero M
	return reflect.DeepEqual(m, zero)
}

// Encode produces the request body for m.
func Encode(m json.Marshaler) ([]byte, error) {
	return json.Marshal(m)
}
