package spec

import (
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

const definitionsPrefix = "#/definitions/"

// SynthesizeExample derives a representative example value for a body
// schema. An explicit example on the schema (or on a referenced
// definition) is returned verbatim. Otherwise an object is built from the
// schema's properties. The second return is false when nothing could be
// synthesized; a $ref pointing at a missing definition degrades to that
// best-effort fallback instead of failing.
func SynthesizeExample(ref *openapi3.SchemaRef, definitions map[string]*openapi3.SchemaRef) (any, bool) {
	if ref == nil {
		return nil, false
	}
	if strings.HasPrefix(ref.Ref, definitionsPrefix) {
		target := definitions[definitionName(ref.Ref)]
		if target == nil || target.Value == nil {
			return nil, false
		}
		if target.Value.Example != nil {
			return target.Value.Example, true
		}
		if len(target.Value.Properties) > 0 {
			return synthesizeObject(target.Value, definitions), true
		}
		return nil, false
	}
	if ref.Value == nil {
		return nil, false
	}
	if ref.Value.Example != nil {
		return ref.Value.Example, true
	}
	if ref.Value.Type == "object" && len(ref.Value.Properties) > 0 {
		return synthesizeObject(ref.Value, definitions), true
	}
	return nil, false
}

// synthesizeObject builds one example object from a schema's properties.
// Every property that yields a value is included, required or not.
func synthesizeObject(schema *openapi3.Schema, definitions map[string]*openapi3.SchemaRef) map[string]any {
	out := make(map[string]any, len(schema.Properties))
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if value, ok := propertyExample(name, schema.Properties[name], definitions); ok {
			out[name] = value
		}
	}
	return out
}

// propertyExample derives a value for a single property. Explicit
// examples win; otherwise the value follows the property type, with the
// type defaulting to string and strings falling back to a "<name>"
// placeholder. Properties of an unrecognized type yield nothing.
func propertyExample(name string, ref *openapi3.SchemaRef, definitions map[string]*openapi3.SchemaRef) (any, bool) {
	// A bare $ref property carries no inline type, so it takes the
	// default-string branch like any untyped property.
	if ref == nil || ref.Value == nil {
		return placeholder(name), true
	}
	s := ref.Value
	if s.Example != nil {
		return s.Example, true
	}
	typ := s.Type
	if typ == "" {
		typ = "string"
	}
	switch typ {
	case "string":
		switch s.Format {
		case "email":
			return "user@example.com", true
		case "date-time":
			return "2024-12-31T23:59:59Z", true
		}
		return placeholder(name), true
	case "integer":
		if s.Default != nil {
			return s.Default, true
		}
		return 0, true
	case "boolean":
		if s.Default != nil {
			return s.Default, true
		}
		return false, true
	case "array":
		return arrayItemExamples(s.Items, definitions), true
	case "object":
		return map[string]any{}, true
	}
	return nil, false
}

// arrayItemExamples returns a single-element slice holding a shallow
// example of the referenced item definition, or an empty slice when the
// items carry no resolvable $ref. The item object deliberately uses bare
// placeholders instead of the full type-aware rules.
func arrayItemExamples(items *openapi3.SchemaRef, definitions map[string]*openapi3.SchemaRef) []any {
	if items == nil || !strings.HasPrefix(items.Ref, definitionsPrefix) {
		return []any{}
	}
	target := definitions[definitionName(items.Ref)]
	if target == nil || target.Value == nil || len(target.Value.Properties) == 0 {
		return []any{}
	}
	item := make(map[string]any, len(target.Value.Properties))
	names := make([]string, 0, len(target.Value.Properties))
	for name := range target.Value.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		prop := target.Value.Properties[name]
		if prop != nil && prop.Value != nil && prop.Value.Example != nil {
			item[name] = prop.Value.Example
			continue
		}
		item[name] = placeholder(name)
	}
	return []any{item}
}

func definitionName(ref string) string {
	return ref[strings.LastIndex(ref, "/")+1:]
}

func placeholder(name string) string { return "<" + name + ">" }
