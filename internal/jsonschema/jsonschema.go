// Package jsonschema derives JSON Schema documents from Go types via
// reflection. It covers the subset of the standard needed to advertise tool
// parameters to an LLM: objects with typed properties, arrays, primitives,
// enums, and per-field descriptions supplied through struct tags.
package jsonschema

import (
	"reflect"
	"strings"
)

// Schema is a JSON Schema node. Fields follow the standard's naming so the
// struct marshals directly into a valid schema document.
type Schema struct {
	Type        string             `json:"type,omitempty"`
	Description string             `json:"description,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Enum        []any              `json:"enum,omitempty"`
}

// FromType derives a schema for T. Struct fields map to object properties
// named by their json tag (falling back to the field name); fields tagged
// `json:"-"` are skipped. A `description` tag becomes the property
// description, a comma-separated `enum` tag becomes the allowed values, and
// every non-pointer field without an omitempty option is listed as required.
func FromType[T any]() *Schema {
	return fromReflectType(reflect.TypeFor[T]())
}

func fromReflectType(t reflect.Type) *Schema {
	switch t.Kind() {
	case reflect.Pointer:
		return fromReflectType(t.Elem())

	case reflect.Struct:
		return structSchema(t)

	case reflect.Slice, reflect.Array:
		return &Schema{Type: "array", Items: fromReflectType(t.Elem())}

	case reflect.Map:
		return &Schema{Type: "object"}

	case reflect.String:
		return &Schema{Type: "string"}

	case reflect.Bool:
		return &Schema{Type: "boolean"}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}

	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}

	default:
		// Interfaces and anything unrepresentable degrade to an untyped node.
		return &Schema{}
	}
}

func structSchema(t reflect.Type) *Schema {
	schema := &Schema{
		Type:       "object",
		Properties: make(map[string]*Schema),
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, options := parseJSONTag(field)
		if name == "-" {
			continue
		}

		fieldSchema := fromReflectType(field.Type)
		if description := field.Tag.Get("description"); description != "" {
			fieldSchema.Description = description
		}
		if enumTag := field.Tag.Get("enum"); enumTag != "" {
			for _, value := range strings.Split(enumTag, ",") {
				fieldSchema.Enum = append(fieldSchema.Enum, strings.TrimSpace(value))
			}
		}

		schema.Properties[name] = fieldSchema

		if !options["omitempty"] && field.Type.Kind() != reflect.Pointer {
			schema.Required = append(schema.Required, name)
		}
	}

	return schema
}

// parseJSONTag returns the effective property name and the set of tag
// options (omitempty and friends) for a struct field.
func parseJSONTag(field reflect.StructField) (string, map[string]bool) {
	options := make(map[string]bool)

	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name, options
	}

	segments := strings.Split(tag, ",")
	name := segments[0]
	if name == "" {
		name = field.Name
	}
	for _, option := range segments[1:] {
		options[option] = true
	}

	return name, options
}
