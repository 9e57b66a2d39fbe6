package smartstr

import "github.com/fxamacker/cbor/v2"

// MarshalCBOR encodes the contents as a CBOR text string.
func (s *String[M]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(s.view())
}

// UnmarshalCBOR replaces the contents with the decoded text string.
func (s *String[M]) UnmarshalCBOR(data []byte) error {
	var str string
	if err := cbor.Unmarshal(data, &str); err != nil {
		return err
	}
	return s.SetString(str)
}
