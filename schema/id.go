package schema

import (
	"fmt"
	"strings"

	"github.com/zero-day-ai/kind"
)

// valuePattern matches the hyphenated hex value part of an identifier, hex
// digits case-insensitive.
const valuePattern = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`

// Pattern returns an anchored regular expression source matching the public
// form of identifiers of the given class. The prefix match is
// case-insensitive, expressed with character classes so the pattern works in
// dialects without inline flags (JSON Schema, OpenAPI).
func Pattern(c kind.Class) string {
	var b strings.Builder
	b.WriteByte('^')
	for i := 0; i < len(c.Prefix()); i++ {
		ch := c.Prefix()[i]
		switch {
		case ch >= 'a' && ch <= 'z':
			b.WriteByte('[')
			b.WriteByte(ch - ('a' - 'A'))
			b.WriteByte(ch)
			b.WriteByte(']')
		case ch >= 'A' && ch <= 'Z':
			b.WriteByte('[')
			b.WriteByte(ch)
			b.WriteByte(ch + ('a' - 'A'))
			b.WriteByte(']')
		default:
			b.WriteByte(ch)
		}
	}
	b.WriteString("_")
	b.WriteString(valuePattern)
	b.WriteByte('$')
	return b.String()
}

// ForID returns the schema describing the public form of identifiers of the
// given class: a string with a pattern, a format annotation, and an
// illustrative example.
func ForID(c kind.Class) JSON {
	return JSON{
		Type:        "string",
		Description: fmt.Sprintf("Unique identifier of a %s object: the class prefix %q, an underscore, and a UUID.", c.Prefix(), c.Prefix()),
		Pattern:     Pattern(c),
		Format:      "kind-id",
		Example:     c.Prefix() + "_c40bea18-c0c9-44b1-bd0c-43f5283e1670",
	}
}

// ForIded returns the schema of the flattened identified form of an entity:
// the entity schema's own properties with an "id" property spliced in, "id"
// always required. The entity schema should be an object schema, typically
// built with Object or FromType.
func ForIded(c kind.Class, entity JSON) JSON {
	properties := make(map[string]JSON, len(entity.Properties)+1)
	for name, prop := range entity.Properties {
		properties[name] = prop
	}
	properties["id"] = ForID(c)

	required := append([]string{"id"}, entity.Required...)

	return JSON{
		Type:        "object",
		Description: fmt.Sprintf("Identified version of a %s object", c.Prefix()),
		Properties:  properties,
		Required:    required,
	}
}
