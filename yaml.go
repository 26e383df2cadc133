package kind

import "gopkg.in/yaml.v3"

// MarshalYAML renders the public form, matching the JSON and text codecs.
func (id ID[T]) MarshalYAML() (any, error) {
	return id.PublicID(), nil
}

// UnmarshalYAML parses the public form through ParsePublic; the class is
// verified, so YAML documents are an untrusted boundary like JSON.
func (id *ID[T]) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParsePublic[T](s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalYAML renders the public form of whichever variant is held.
func (a AnyID) MarshalYAML() (any, error) {
	return a.PublicID(), nil
}
