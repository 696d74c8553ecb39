package spec

import (
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
)

// Document is a parsed Swagger 2.0 description. It is immutable after
// Load/Parse return it; the extractor only reads from it.
//
// Schema nodes reuse kin-openapi's openapi3.SchemaRef, which models the
// Swagger 2.0 schema object (type, format, example, default, properties,
// required, items, $ref) without change.
type Document struct {
	// Swagger is "2.0" in well-formed documents, but YAML files often
	// leave the version unquoted and deliver a number instead.
	Swagger             any                            `json:"swagger"`
	Info                Info                           `json:"info"`
	Schemes             []string                       `json:"schemes,omitempty"`
	Host                string                         `json:"host,omitempty"`
	BasePath            string                         `json:"basePath,omitempty"`
	Paths               map[string]*PathItem           `json:"paths,omitempty"`
	Definitions         map[string]*openapi3.SchemaRef `json:"definitions,omitempty"`
	SecurityDefinitions map[string]*SecurityScheme     `json:"securityDefinitions,omitempty"`
	Security            []SecurityRequirement          `json:"security,omitempty"`

	// Document-encounter order of paths and of methods per path, filled
	// by the loader. Paths and methods absent from these fall back to
	// sorted / canonical order so hand-built documents stay usable.
	pathOrder   []string
	methodOrder map[string][]string
}

// orderedPathKeys returns the document's path keys in encounter order,
// appending any key missing from the recorded order in sorted order.
func (d *Document) orderedPathKeys() []string {
	keys := make([]string, 0, len(d.Paths))
	seen := make(map[string]struct{}, len(d.Paths))
	for _, p := range d.pathOrder {
		if _, ok := d.Paths[p]; !ok {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		keys = append(keys, p)
	}
	rest := make([]string, 0, len(d.Paths)-len(keys))
	for p := range d.Paths {
		if _, ok := seen[p]; !ok {
			rest = append(rest, p)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

type Info struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

// BaseURL assembles scheme://host/basePath from the document's top-level
// fields. The scheme defaults to https when the document declares none;
// empty host and basePath are tolerated.
func (d *Document) BaseURL() string {
	scheme := "https"
	if len(d.Schemes) > 0 {
		scheme = d.Schemes[0]
	}
	return fmt.Sprintf("%s://%s%s", scheme, d.Host, d.BasePath)
}

// PathItem holds the operations declared under one path, plus parameters
// shared by all of them.
type PathItem struct {
	Get        *Operation   `json:"get,omitempty"`
	Post       *Operation   `json:"post,omitempty"`
	Put        *Operation   `json:"put,omitempty"`
	Patch      *Operation   `json:"patch,omitempty"`
	Delete     *Operation   `json:"delete,omitempty"`
	Head       *Operation   `json:"head,omitempty"`
	Options    *Operation   `json:"options,omitempty"`
	Parameters []*Parameter `json:"parameters,omitempty"`
}

type methodOperation struct {
	method string
	op     *Operation
}

var canonicalMethods = []string{"get", "post", "put", "patch", "delete", "head", "options"}

func (pi *PathItem) operation(method string) *Operation {
	switch method {
	case "get":
		return pi.Get
	case "post":
		return pi.Post
	case "put":
		return pi.Put
	case "patch":
		return pi.Patch
	case "delete":
		return pi.Delete
	case "head":
		return pi.Head
	case "options":
		return pi.Options
	}
	return nil
}

// operations returns the item's method entries in the given document
// order, then any remaining methods in the canonical get, post, put,
// patch, delete, head, options order.
func (pi *PathItem) operations(order []string) []methodOperation {
	out := make([]methodOperation, 0, len(canonicalMethods))
	seen := make(map[string]struct{}, len(canonicalMethods))
	for _, method := range order {
		if _, dup := seen[method]; dup {
			continue
		}
		seen[method] = struct{}{}
		out = append(out, methodOperation{method, pi.operation(method)})
	}
	for _, method := range canonicalMethods {
		if _, ok := seen[method]; !ok {
			out = append(out, methodOperation{method, pi.operation(method)})
		}
	}
	return out
}

// Operation is one method entry under one path.
type Operation struct {
	Summary     string                `json:"summary,omitempty"`
	Description string                `json:"description,omitempty"`
	OperationID string                `json:"operationId,omitempty"`
	Tags        []string              `json:"tags,omitempty"`
	Parameters  []*Parameter          `json:"parameters,omitempty"`
	Security    []SecurityRequirement `json:"security,omitempty"`
}

// Parameter is a Swagger 2.0 parameter object. Non-body parameters carry
// type/format/default inline; body parameters carry a schema. Example is
// the per-parameter example key the resolvers consume.
type Parameter struct {
	Name     string              `json:"name,omitempty"`
	In       string              `json:"in,omitempty"`
	Type     string              `json:"type,omitempty"`
	Format   string              `json:"format,omitempty"`
	Required bool                `json:"required,omitempty"`
	Default  any                 `json:"default,omitempty"`
	Example  any                 `json:"example,omitempty"`
	Schema   *openapi3.SchemaRef `json:"schema,omitempty"`
}

// SecurityScheme is an entry of the securityDefinitions table.
type SecurityScheme struct {
	Type        string `json:"type,omitempty"`
	In          string `json:"in,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// SecurityRequirement maps scheme names to their requested scopes.
type SecurityRequirement map[string][]string

// Header is one rendered header line. Endpoints keep headers as an
// ordered slice so security headers stay ahead of Content-Type.
type Header struct {
	Name  string
	Value string
}

// SetHeader overwrites an existing header by name or appends a new one,
// preserving insertion order.
func SetHeader(headers []Header, name, value string) []Header {
	for i := range headers {
		if headers[i].Name == name {
			headers[i].Value = value
			return headers
		}
	}
	return append(headers, Header{Name: name, Value: value})
}

// Endpoint is the derived record for one path/method pair. It is created
// once by ExtractEndpoints and never mutated afterwards. An empty Body
// means the operation has no request body.
type Endpoint struct {
	Method      string
	URL         string
	Headers     []Header
	Body        string
	Summary     string
	Description string
	OperationID string
	Path        string
	Tags        []string
}
