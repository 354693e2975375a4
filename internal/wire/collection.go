package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// EachMember walks the members of a JSON object once, in document order.
func EachMember(data []byte, fn func(key string, value json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("%w: expected object", ErrInvalidFormat)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return At(key, err)
		}
		if err := fn(key, value); err != nil {
			return err
		}
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("%w: unexpected data after object", ErrInvalidFormat)
	}
	return nil
}

// DecodeCollection decodes an object keyed by resource id. Every member is
// decoded as a T and handed to attach together with its key. The first
// member that fails aborts the whole collection.
func DecodeCollection[T any](data []byte, attach func(item *T, id string)) ([]T, error) {
	items := []T{}
	err := EachMember(data, func(id string, value json.RawMessage) error {
		var item T
		if err := json.Unmarshal(value, &item); err != nil {
			return At(id, err)
		}
		attach(&item, id)
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
