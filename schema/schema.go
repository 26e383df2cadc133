package schema

import (
	"fmt"
	"reflect"
	"regexp"
)

// JSON represents a JSON Schema definition. It provides a structured way to
// describe the shape of values crossing documented boundaries, including the
// public form of typed identifiers.
type JSON struct {
	Type        string          `json:"type,omitempty"`
	Description string          `json:"description,omitempty"`
	Properties  map[string]JSON `json:"properties,omitempty"`
	Required    []string        `json:"required,omitempty"`
	Items       *JSON           `json:"items,omitempty"`
	Enum        []any           `json:"enum,omitempty"`
	MinLength   *int            `json:"minLength,omitempty"`
	MaxLength   *int            `json:"maxLength,omitempty"`
	Pattern     string          `json:"pattern,omitempty"`
	Format      string          `json:"format,omitempty"`
	Example     any             `json:"example,omitempty"`
}

// Any creates a JSON schema that accepts any type.
func Any() JSON {
	return JSON{}
}

// String creates a JSON schema for a string type.
func String() JSON {
	return JSON{Type: "string"}
}

// StringWithDesc creates a JSON schema for a string type with a description.
func StringWithDesc(desc string) JSON {
	return JSON{
		Type:        "string",
		Description: desc,
	}
}

// Int creates a JSON schema for an integer type.
func Int() JSON {
	return JSON{Type: "integer"}
}

// Number creates a JSON schema for a number type.
func Number() JSON {
	return JSON{Type: "number"}
}

// Bool creates a JSON schema for a boolean type.
func Bool() JSON {
	return JSON{Type: "boolean"}
}

// Array creates a JSON schema for an array type with the specified item
// schema.
func Array(items JSON) JSON {
	return JSON{
		Type:  "array",
		Items: &items,
	}
}

// Object creates a JSON schema for an object type with the specified
// properties and required fields.
func Object(properties map[string]JSON, required ...string) JSON {
	return JSON{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// Enum creates a JSON schema with enumerated values.
func Enum(values ...any) JSON {
	return JSON{Enum: values}
}

// Validate validates the given value against this JSON schema.
// It returns an error if the value does not conform to the schema.
func (s JSON) Validate(value any) error {
	if value == nil {
		if s.Type != "" {
			return fmt.Errorf("expected type %s, got nil", s.Type)
		}
		return nil
	}

	if len(s.Enum) > 0 {
		for _, allowed := range s.Enum {
			if reflect.DeepEqual(value, allowed) {
				return nil
			}
		}
		return fmt.Errorf("value %v is not in enum %v", value, s.Enum)
	}

	switch s.Type {
	case "":
		return nil
	case "string":
		return s.validateString(value)
	case "integer", "number":
		return s.validateNumeric(value)
	case "boolean":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("expected boolean, got %T", value)
		}
		return nil
	case "array":
		return s.validateArray(value)
	case "object":
		return s.validateObject(value)
	default:
		return fmt.Errorf("unknown schema type %q", s.Type)
	}
}

// validateString validates string-specific constraints.
func (s JSON) validateString(value any) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}

	if s.MinLength != nil && len(str) < *s.MinLength {
		return fmt.Errorf("string length %d is less than minimum %d", len(str), *s.MinLength)
	}
	if s.MaxLength != nil && len(str) > *s.MaxLength {
		return fmt.Errorf("string length %d is greater than maximum %d", len(str), *s.MaxLength)
	}

	if s.Pattern != "" {
		matched, err := regexp.MatchString(s.Pattern, str)
		if err != nil {
			return fmt.Errorf("invalid pattern: %w", err)
		}
		if !matched {
			return fmt.Errorf("string does not match pattern %s", s.Pattern)
		}
	}

	return nil
}

// validateNumeric accepts any integer or float kind; for "integer" the value
// must have no fractional part.
func (s JSON) validateNumeric(value any) error {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return nil
	case reflect.Float32, reflect.Float64:
		if s.Type == "integer" {
			f := v.Float()
			if f != float64(int64(f)) {
				return fmt.Errorf("expected integer, got float with decimal: %v", value)
			}
		}
		return nil
	default:
		return fmt.Errorf("expected %s, got %T", s.Type, value)
	}
}

// validateArray validates each element against the item schema.
func (s JSON) validateArray(value any) error {
	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return fmt.Errorf("expected array, got %T", value)
	}
	if s.Items == nil {
		return nil
	}
	for i := 0; i < v.Len(); i++ {
		if err := s.Items.Validate(v.Index(i).Interface()); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

// validateObject checks required fields and validates known properties.
func (s JSON) validateObject(value any) error {
	obj, ok := value.(map[string]any)
	if !ok {
		return fmt.Errorf("expected object, got %T", value)
	}
	for _, req := range s.Required {
		if _, present := obj[req]; !present {
			return fmt.Errorf("missing required field %q", req)
		}
	}
	for name, prop := range s.Properties {
		fieldValue, present := obj[name]
		if !present {
			continue
		}
		if err := prop.Validate(fieldValue); err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
	}
	return nil
}
