package spec

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/invopop/yaml"
	yamlv3 "gopkg.in/yaml.v3"
)

// ErrorCode categorizes loader errors for clearer handling and messaging.
type ErrorCode string

const (
	InputError              ErrorCode = "InputError"
	ParseError              ErrorCode = "ParseError"
	UnsupportedVersionError ErrorCode = "UnsupportedVersionError"
)

// DocumentError is a structured loader error with an optional location.
type DocumentError struct {
	Code     ErrorCode
	Message  string
	Location string // file path
	Cause    error
}

func (e *DocumentError) Error() string { return e.Message }
func (e *DocumentError) Unwrap() error { return e.Cause }

// Load reads and parses a Swagger 2.0 document from a local file. It never
// touches the network; $ref targets must live in the document itself.
func Load(path string) (*Document, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &DocumentError{Code: InputError, Message: "spec: input path is empty"}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &DocumentError{Code: InputError, Message: fmt.Sprintf("resolve path: %v", err), Location: path, Cause: err}
	}
	raw, err := os.ReadFile(abs)
	if err != nil {
		return nil, &DocumentError{Code: InputError, Message: fmt.Sprintf("read file %s: %v", abs, err), Location: abs, Cause: err}
	}
	doc, err := Parse(raw)
	if err != nil {
		var de *DocumentError
		if errors.As(err, &de) && de.Location == "" {
			de.Location = abs
		}
		return nil, err
	}
	return doc, nil
}

// Parse decodes raw YAML or JSON bytes into a Document. Only Swagger 2.0
// is accepted; OpenAPI 3.x inputs are rejected rather than converted.
func Parse(data []byte) (*Document, error) {
	version, err := detectSpecVersion(data)
	if err != nil {
		return nil, &DocumentError{Code: ParseError, Message: err.Error(), Cause: err}
	}
	if version != 2 {
		return nil, &DocumentError{
			Code:    UnsupportedVersionError,
			Message: "spec: only Swagger 2.0 documents are supported",
		}
	}
	// invopop/yaml converts to JSON before unmarshalling, which routes
	// schema nodes through openapi3.SchemaRef's $ref-aware decoder.
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &DocumentError{Code: ParseError, Message: fmt.Sprintf("parse spec: %v", err), Cause: err}
	}
	captureDocumentOrder(data, &doc)
	return &doc, nil
}

// captureDocumentOrder records the order in which paths and methods
// appear in the raw document. The main decode goes through a JSON map and
// loses it; a yaml.v3 node walk (which also handles JSON input) gets it
// back so endpoints can be emitted in document-encounter order.
func captureDocumentOrder(data []byte, doc *Document) {
	var root yamlv3.Node
	if err := yamlv3.Unmarshal(data, &root); err != nil || len(root.Content) == 0 {
		return
	}
	mapping := root.Content[0]
	if mapping.Kind != yamlv3.MappingNode {
		return
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value != "paths" {
			continue
		}
		paths := mapping.Content[i+1]
		if paths.Kind != yamlv3.MappingNode {
			return
		}
		doc.pathOrder = make([]string, 0, len(paths.Content)/2)
		doc.methodOrder = make(map[string][]string, len(paths.Content)/2)
		for j := 0; j+1 < len(paths.Content); j += 2 {
			p := paths.Content[j].Value
			doc.pathOrder = append(doc.pathOrder, p)
			item := paths.Content[j+1]
			if item.Kind != yamlv3.MappingNode {
				continue
			}
			for k := 0; k+1 < len(item.Content); k += 2 {
				switch method := strings.ToLower(item.Content[k].Value); method {
				case "get", "post", "put", "patch", "delete", "head", "options":
					doc.methodOrder[p] = append(doc.methodOrder[p], method)
				}
			}
		}
		return
	}
}

// detectSpecVersion returns 2 for Swagger v2, 3 for OpenAPI v3, else error.
func detectSpecVersion(data []byte) (int, error) {
	var probe struct {
		Swagger any `json:"swagger"`
		OpenAPI any `json:"openapi"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return 0, fmt.Errorf("parse spec: %w", err)
	}
	if hasMajorVersion(probe.Swagger, 2) {
		return 2, nil
	}
	if hasMajorVersion(probe.OpenAPI, 3) {
		return 3, nil
	}
	return 0, fmt.Errorf("spec: missing or unknown version (expected 'swagger: 2.0')")
}

// hasMajorVersion matches a version field against a major version. The
// field may be a string or, when YAML leaves "swagger: 2.0" unquoted, a
// number.
func hasMajorVersion(v any, major int) bool {
	switch value := v.(type) {
	case string:
		trimmed := strings.TrimSpace(value)
		return trimmed == strconv.Itoa(major) || strings.HasPrefix(trimmed, strconv.Itoa(major)+".")
	case float64:
		return int(value) == major
	}
	return false
}
