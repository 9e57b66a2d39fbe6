package smartstr

import (
	"encoding/json"
	"unicode/utf8"
)

// MarshalJSON encodes the contents as a JSON string.
func (s *String[M]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.view())
}

// UnmarshalJSON replaces the contents with the decoded JSON string. A boxed
// string reuses its buffer when the new contents fit, so decoding into a
// LazyCompact value in a loop does not reallocate.
func (s *String[M]) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	return s.SetString(str)
}

// MarshalText implements encoding.TextMarshaler.
func (s *String[M]) MarshalText() ([]byte, error) {
	return s.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, rejecting malformed
// UTF-8.
func (s *String[M]) UnmarshalText(data []byte) error {
	if !utf8.Valid(data) {
		return ErrInvalidUTF8
	}
	return s.SetString(string(data))
}
