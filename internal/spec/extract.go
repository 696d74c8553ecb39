package spec

import (
	"strings"
)

// ExtractOption configures how endpoints are extracted from a document.
type ExtractOption func(*extractConfig)

type extractConfig struct {
	includeTags map[string]struct{}
	excludeTags map[string]struct{}
}

// WithIncludeTags keeps only endpoints that have at least one of the given tags.
func WithIncludeTags(tags []string) ExtractOption {
	return func(c *extractConfig) {
		for _, t := range tags {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			if c.includeTags == nil {
				c.includeTags = make(map[string]struct{})
			}
			c.includeTags[t] = struct{}{}
		}
	}
}

// WithExcludeTags removes endpoints that have any of the given tags.
func WithExcludeTags(tags []string) ExtractOption {
	return func(c *extractConfig) {
		for _, t := range tags {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			if c.excludeTags == nil {
				c.excludeTags = make(map[string]struct{})
			}
			c.excludeTags[t] = struct{}{}
		}
	}
}

// ExtractEndpoints walks every path/method pair in the document and
// derives one Endpoint per operation. Paths and methods are visited in
// the order they appear in the document, so repeated runs over the same
// document yield identical output.
//
// Path-level parameters precede operation-level ones in the effective
// list and duplicates are kept: a query parameter declared at both levels
// appears twice in the resolved URL.
func ExtractEndpoints(doc *Document, opts ...ExtractOption) []Endpoint {
	cfg := &extractConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	baseURL := doc.BaseURL()

	var endpoints []Endpoint
	for _, p := range doc.orderedPathKeys() {
		item := doc.Paths[p]
		if item == nil {
			continue
		}
		for _, pair := range item.operations(doc.methodOrder[p]) {
			if pair.op == nil {
				continue
			}
			tags := append([]string(nil), pair.op.Tags...)
			if !allowByTags(tags, cfg) {
				continue
			}

			merged := make([]*Parameter, 0, len(item.Parameters)+len(pair.op.Parameters))
			merged = append(merged, item.Parameters...)
			merged = append(merged, pair.op.Parameters...)

			headers := ResolveSecurityHeaders(pair.op, doc)
			body, hasBody := ResolveRequestBody(merged, doc.Definitions)
			if hasBody {
				headers = SetHeader(headers, "Content-Type", "application/json")
			}

			endpoints = append(endpoints, Endpoint{
				Method:      strings.ToUpper(pair.method),
				URL:         ResolveURL(baseURL, p, merged),
				Headers:     headers,
				Body:        body,
				Summary:     pair.op.Summary,
				Description: pair.op.Description,
				OperationID: pair.op.OperationID,
				Path:        p,
				Tags:        tags,
			})
		}
	}
	return endpoints
}

func allowByTags(tags []string, cfg *extractConfig) bool {
	if len(cfg.includeTags) > 0 {
		ok := false
		for _, t := range tags {
			if _, yes := cfg.includeTags[t]; yes {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	for _, t := range tags {
		if _, blocked := cfg.excludeTags[t]; blocked {
			return false
		}
	}
	return true
}
