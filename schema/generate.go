package schema

import (
	"reflect"
	"strings"
	"time"
)

// FromType generates a JSON schema from a Go type using reflection. The
// schema describes the structure the type represents, not a particular
// value. It is the usual way to build the entity schema handed to ForIded.
//
// Supported types:
//   - struct: an object schema with properties from exported fields
//   - slice/array: an array schema
//   - map: an object schema with unconstrained keys
//   - string, int*, uint*, float*, bool: primitive schemas
//   - time.Time: a string schema with date-time format
//   - interface{}/any: an empty schema (allows any)
//
// Struct tags:
//   - `json:"name"` renames the property
//   - `json:"-"` skips the field
//   - `json:"name,omitempty"` makes the field optional (not required)
//   - `description:"..."` sets the property description
func FromType(t any) JSON {
	if t == nil {
		return JSON{}
	}
	return fromReflectType(reflect.TypeOf(t))
}

func fromReflectType(t reflect.Type) JSON {
	if t.Kind() == reflect.Ptr {
		return fromReflectType(t.Elem())
	}

	if t == reflect.TypeOf(time.Time{}) {
		return JSON{
			Type:   "string",
			Format: "date-time",
		}
	}

	switch t.Kind() {
	case reflect.Struct:
		return fromStruct(t)
	case reflect.Slice, reflect.Array:
		itemSchema := fromReflectType(t.Elem())
		return JSON{
			Type:  "array",
			Items: &itemSchema,
		}
	case reflect.Map:
		return JSON{Type: "object"}
	case reflect.String:
		return JSON{Type: "string"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return JSON{Type: "integer"}
	case reflect.Float32, reflect.Float64:
		return JSON{Type: "number"}
	case reflect.Bool:
		return JSON{Type: "boolean"}
	default:
		return JSON{}
	}
}

func fromStruct(t reflect.Type) JSON {
	properties := make(map[string]JSON)
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		fieldName := field.Name
		isOmitempty := false
		if jsonTag != "" {
			parts := strings.Split(jsonTag, ",")
			if parts[0] != "" {
				fieldName = parts[0]
			}
			for _, part := range parts[1:] {
				if part == "omitempty" {
					isOmitempty = true
					break
				}
			}
		}

		fieldSchema := fromReflectType(field.Type)
		if desc := field.Tag.Get("description"); desc != "" {
			fieldSchema.Description = desc
		}
		properties[fieldName] = fieldSchema

		if !isOmitempty {
			required = append(required, fieldName)
		}
	}

	return JSON{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}
