package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields under the names clients send them by
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return fieldName(f)
	})
	return v
}

// Violation is one failed rule on one field
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// Validate checks s against its validate tags and returns every violation
func Validate(s interface{}) []Violation {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Violation{{Rule: "invalid", Message: err.Error()}}
	}

	violations := make([]Violation, 0, len(validationErrors))
	for _, e := range validationErrors {
		violations = append(violations, Violation{
			Field:   e.Field(),
			Rule:    e.Tag(),
			Param:   e.Param(),
			Message: formatFieldError(e),
		})
	}
	return violations
}

// UnknownFields lists the keys of values that s does not declare
func UnknownFields(s interface{}, keys []string) []Violation {
	known := make(map[string]bool)
	t := indirectType(reflect.TypeOf(s))
	for i := 0; i < t.NumField(); i++ {
		known[fieldName(t.Field(i))] = true
	}

	var violations []Violation
	for _, key := range keys {
		if !known[key] {
			violations = append(violations, Violation{
				Field:   key,
				Rule:    "additionalProperties",
				Message: fmt.Sprintf("%s is not an allowed parameter", key),
			})
		}
	}
	return violations
}

// FieldSchema describes one declared field
type FieldSchema struct {
	Type  string   `json:"type"`
	Rules []string `json:"rules,omitempty"`
}

// Schema is the expected shape of a request, derived from struct tags
type Schema struct {
	Type                 string                 `json:"type"`
	Properties           map[string]FieldSchema `json:"properties"`
	Required             []string               `json:"required,omitempty"`
	AdditionalProperties bool                   `json:"additionalProperties"`
}

// SchemaOf derives the expected shape of s from its field names and validate tags
func SchemaOf(s interface{}) Schema {
	t := indirectType(reflect.TypeOf(s))
	schema := Schema{
		Type:       "object",
		Properties: make(map[string]FieldSchema, t.NumField()),
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := fieldName(f)
		if name == "" {
			continue
		}

		var rules []string
		if tag := f.Tag.Get("validate"); tag != "" {
			for _, rule := range strings.Split(tag, ",") {
				if rule == "required" {
					schema.Required = append(schema.Required, name)
					continue
				}
				if rule != "omitempty" {
					rules = append(rules, rule)
				}
			}
		}

		schema.Properties[name] = FieldSchema{Type: jsonType(f.Type), Rules: rules}
	}

	return schema
}

func fieldName(f reflect.StructField) string {
	for _, key := range []string{"query", "json"} {
		if tag := f.Tag.Get(key); tag != "" {
			name := strings.SplitN(tag, ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		}
	}
	return f.Name
}

func indirectType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

func jsonType(t reflect.Type) string {
	switch indirectType(t).Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

// formatFieldError formats a single field validation error
func formatFieldError(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "bcp47_language_tag":
		return fmt.Sprintf("%s must be a language code such as fr or pt-PT", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
