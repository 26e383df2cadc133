// Package openapi describes typed identifiers as OpenAPI v3 schemas for API
// documentation generators built on kin-openapi.
package openapi

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/zero-day-ai/kind"
	"github.com/zero-day-ai/kind/schema"
)

// SchemaName is the component name under which the generic identifier schema
// is conventionally registered in a spec's components section.
const SchemaName = "Id"

// IDSchema returns the OpenAPI schema of the public form of identifiers of
// the given class: a string with a class-specific pattern and an illustrative
// example.
func IDSchema(c kind.Class) *openapi3.Schema {
	s := openapi3.NewStringSchema()
	s.Description = fmt.Sprintf(
		"Unique identifier of a %s object. Consists of the class prefix %q and a UUID.",
		c.Prefix(), c.Prefix(),
	)
	s.Pattern = schema.Pattern(c)
	s.Example = c.Prefix() + "_c40bea18-c0c9-44b1-bd0c-43f5283e1670"
	return s
}

// GenericIDSchema returns the component name and schema describing the public
// form of an identifier of any class, for specs that document identifiers
// with a single shared component.
func GenericIDSchema() (string, *openapi3.Schema) {
	s := openapi3.NewStringSchema()
	s.Description = "Unique identifier of an object. Consists of object class prefix and a UUID"
	s.Example = "Cust_c40bea18-c0c9-44b1-bd0c-43f5283e1670"
	return SchemaName, s
}
