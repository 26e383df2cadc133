// Package schema describes typed identifiers and identified entities as JSON
// Schema for documentation tooling.
//
// It implements a JSON Schema Draft 7 compatible type with builders and
// validation, plus generators for the two shapes this module exports across
// documented boundaries: the public form of an identifier, and the flattened
// identified form of an entity.
//
// # Describing identifiers
//
// ForID builds the schema of a class's public form:
//
//	idSchema := schema.ForID(ClassCustomer)
//	// type: string, pattern: ^[Cc][Uu][Ss][Tt]_<uuid>$, example: Cust_c40bea18-...
//
// ForIded splices that "id" property into an entity's object schema:
//
//	entity := schema.FromType(Customer{})
//	schema.ForIded(ClassCustomer, entity)
//
// # General schemas
//
// The builder functions cover ordinary shapes:
//
//	userSchema := schema.Object(map[string]schema.JSON{
//		"name":  schema.StringWithDesc("User's full name"),
//		"age":   schema.Int(),
//		"email": schema.String(),
//	}, "name", "email")
//
// and Validate checks a decoded value against a schema:
//
//	err := userSchema.Validate(map[string]any{"name": "John", "email": "j@example.com"})
package schema
