// AngelaMos | 2026
// schema.go

// Package schema publishes JSON Schemas of the create inputs so clients can
// build forms and validate payloads before sending them.
package schema

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/aurex-pk/aurex-api/internal/core"
)

var (
	amountType = reflect.TypeOf(core.Amount{})
	dateType   = reflect.TypeOf(core.Date{})
)

// Generate reflects v into a schema. Required fields and enums come from the
// validate tags the request binder enforces, not from omitempty.
func Generate(v any) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
		Mapper:                     mapType,
	}

	s := reflector.Reflect(v)

	rules := collectRules(reflect.TypeOf(v))
	s.Required = nil
	for _, rule := range rules {
		if rule.required {
			s.Required = append(s.Required, rule.name)
		}
		if s.Properties == nil {
			continue
		}
		prop, ok := s.Properties.Get(rule.name)
		if !ok {
			continue
		}
		for _, value := range rule.enum {
			prop.Enum = append(prop.Enum, value)
		}
		if rule.email {
			prop.Format = "email"
		}
		if rule.minLength > 0 {
			n := uint64(rule.minLength)
			prop.MinLength = &n
		}
	}

	return s
}

func mapType(t reflect.Type) *jsonschema.Schema {
	switch t {
	case amountType:
		return &jsonschema.Schema{
			OneOf: []*jsonschema.Schema{
				{Type: "number"},
				{Type: "string", Pattern: `^-?[0-9]+(\.[0-9]+)?$`},
			},
		}
	case dateType:
		return &jsonschema.Schema{Type: "string", Format: "date"}
	}
	return nil
}

type fieldRule struct {
	name      string
	required  bool
	email     bool
	minLength int
	enum      []string
}

func collectRules(t reflect.Type) []fieldRule {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var rules []fieldRule
	for i := range t.NumField() {
		f := t.Field(i)
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]

		if f.Anonymous && name == "" {
			rules = append(rules, collectRules(f.Type)...)
			continue
		}
		if !f.IsExported() || name == "" || name == "-" {
			continue
		}

		rules = append(rules, parseRule(name, f.Tag.Get("validate")))
	}
	return rules
}

func parseRule(name, tag string) fieldRule {
	rule := fieldRule{name: name}
	if tag == "" {
		return rule
	}

	parts := strings.Split(tag, ",")
	rule.required = parts[0] == "required"
	for _, p := range parts {
		switch {
		case p == "emailaddr":
			rule.email = true
		case strings.HasPrefix(p, "oneof="):
			rule.enum = strings.Fields(strings.TrimPrefix(p, "oneof="))
		case strings.HasPrefix(p, "min="):
			if n, err := strconv.Atoi(strings.TrimPrefix(p, "min=")); err == nil {
				rule.minLength = n
			}
		}
	}
	return rule
}
