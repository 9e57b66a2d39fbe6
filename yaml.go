package smartstr

import "gopkg.in/yaml.v3"

// MarshalYAML encodes the contents as a YAML scalar.
func (s *String[M]) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML replaces the contents with the decoded scalar.
func (s *String[M]) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return err
	}
	return s.SetString(str)
}
