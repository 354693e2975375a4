package wire

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
)

// ParseToken maps s onto one of the known tokens of a closed string enum.
// Matching is case sensitive.
func ParseToken[T ~string](s string, known ...T) (T, error) {
	if !lo.Contains(known, T(s)) {
		var zero T
		return zero, fmt.Errorf("%w %q", ErrUnknownVariant, s)
	}
	return T(s), nil
}

// DecodeToken decodes a JSON string into dst, failing for tokens outside known.
func DecodeToken[T ~string](data []byte, dst *T, known ...T) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseToken(s, known...)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// DecodeCode decodes a JSON integer into dst, failing for codes outside known.
func DecodeCode[T ~uint8 | ~int](data []byte, dst *T, known ...T) error {
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	// compare before converting, T may be narrower than the wire value
	if !lo.ContainsBy(known, func(k T) bool { return int64(k) == n }) {
		return fmt.Errorf("%w %d", ErrUnknownVariant, n)
	}
	*dst = T(n)
	return nil
}
