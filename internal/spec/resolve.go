package spec

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// ResolveURL builds the absolute request URL for one operation: path
// parameters substituted by example value or "<name>" placeholder, query
// parameters appended in declaration order.
//
// Swagger 2.0 paths always start with "/", so they concatenate directly
// onto the right-trimmed base. The relative-join branch stays for inputs
// that break that convention.
func ResolveURL(baseURL, pathTemplate string, params []*Parameter) string {
	base := strings.TrimRight(baseURL, "/")
	resolved := base + pathTemplate
	if !strings.HasPrefix(pathTemplate, "/") {
		resolved = joinRelative(base, pathTemplate)
	}

	for _, p := range params {
		if p == nil || p.In != "path" {
			continue
		}
		value := placeholder(p.Name)
		if p.Example != nil {
			value = stringify(p.Example)
		}
		resolved = strings.ReplaceAll(resolved, "{"+p.Name+"}", value)
	}

	var query []string
	for _, p := range params {
		if p == nil || p.In != "query" {
			continue
		}
		value := placeholder(p.Name)
		switch {
		case p.Example != nil:
			value = stringify(p.Example)
		case p.Default != nil:
			value = stringify(p.Default)
		}
		query = append(query, p.Name+"="+value)
	}
	if len(query) > 0 {
		resolved += "?" + strings.Join(query, "&")
	}
	return resolved
}

func joinRelative(base, pathTemplate string) string {
	u, err := url.Parse(base + "/")
	if err != nil {
		return base + "/" + pathTemplate
	}
	ref, err := url.Parse(pathTemplate)
	if err != nil {
		return base + "/" + pathTemplate
	}
	return u.ResolveReference(ref).String()
}

// ResolveSecurityHeaders maps an operation's security requirements to
// concrete header lines. Operation-level requirements win; otherwise the
// document's top-level security applies (fallback, not merge). Only
// apiKey-in-header schemes produce a header; basic, oauth2, and
// apiKey-in-query schemes are skipped.
func ResolveSecurityHeaders(op *Operation, doc *Document) []Header {
	requirements := op.Security
	if len(requirements) == 0 {
		requirements = doc.Security
	}

	var headers []Header
	for _, requirement := range requirements {
		names := make([]string, 0, len(requirement))
		for name := range requirement {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			def := doc.SecurityDefinitions[name]
			if def == nil || def.Type != "apiKey" || def.In != "header" {
				continue
			}
			value := "<your-token>"
			if strings.Contains(def.Description, "Bearer") {
				value = "Bearer <your-token>"
			}
			headers = SetHeader(headers, def.Name, value)
		}
	}
	return headers
}

// ResolveRequestBody locates the first in:body parameter, synthesizes an
// example from its schema, and renders it as 2-space-indented JSON. The
// second return is false when the operation has no body parameter or
// nothing could be synthesized. The first body parameter is
// authoritative; later ones are ignored.
func ResolveRequestBody(params []*Parameter, definitions map[string]*openapi3.SchemaRef) (string, bool) {
	for _, p := range params {
		if p == nil || p.In != "body" {
			continue
		}
		value, ok := SynthesizeExample(p.Schema, definitions)
		if !ok {
			return "", false
		}
		text, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return "", false
		}
		return string(text), true
	}
	return "", false
}

// stringify renders an example or default value for URL use. YAML numbers
// decode as float64; integral values must not pick up a decimal point.
func stringify(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		if value == float64(int64(value)) {
			return fmt.Sprintf("%d", int64(value))
		}
		return fmt.Sprintf("%v", value)
	default:
		return fmt.Sprintf("%v", v)
	}
}
