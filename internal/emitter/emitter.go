// Package emitter renders HTTP requests as plain text in one of three
// syntaxes: editor REST-client files, HTTPie invocations, or cURL
// commands. It consumes endpoint records and never executes anything.
package emitter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/httpmaker/httpmaker/internal/spec"
)

// Format selects the textual request syntax to emit.
type Format string

const (
	RestClient Format = "rest-client"
	HTTPie     Format = "httpie"
	Curl       Format = "curl"
)

// Formats lists the recognized format selectors.
func Formats() []string {
	return []string{string(RestClient), string(HTTPie), string(Curl)}
}

// ParseFormat validates a format selector; the empty string selects
// RestClient. An unrecognized selector is a configuration error.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return RestClient, nil
	case RestClient, HTTPie, Curl:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (allowed: %s)", s, strings.Join(Formats(), ", "))
	}
}

// Request is a single HTTP request to render. Body is pre-rendered text;
// empty means no body.
type Request struct {
	Method  string
	URL     string
	Headers []spec.Header
	Body    string
}

// Render produces the request text in the given format.
func Render(req Request, format Format) (string, error) {
	switch format {
	case RestClient:
		return renderRestClient(req), nil
	case HTTPie:
		return renderHTTPie(req), nil
	case Curl:
		return renderCurl(req), nil
	default:
		return "", fmt.Errorf("unknown format %q (allowed: %s)", format, strings.Join(Formats(), ", "))
	}
}

// renderRestClient emits the .http file syntax: request line, header
// lines, then a blank line and the body.
func renderRestClient(req Request) string {
	lines := []string{req.Method + " " + req.URL}
	for _, h := range req.Headers {
		lines = append(lines, h.Name+": "+h.Value)
	}
	if req.Body != "" {
		lines = append(lines, "", req.Body)
	}
	return strings.Join(lines, "\n")
}

func renderHTTPie(req Request) string {
	lines := []string{"http " + req.Method + " " + req.URL}
	for _, h := range req.Headers {
		lines = append(lines, "  "+h.Name+":"+h.Value)
	}
	if req.Body != "" {
		lines = append(lines, "  <<< '"+req.Body+"'")
	}
	return strings.Join(lines, " \\\n")
}

func renderCurl(req Request) string {
	parts := []string{"curl -X " + req.Method}
	for _, h := range req.Headers {
		parts = append(parts, "-H '"+h.Name+": "+h.Value+"'")
	}
	if req.Body != "" {
		parts = append(parts, "-d '"+req.Body+"'")
	}
	parts = append(parts, "'"+req.URL+"'")
	return strings.Join(parts, " \\\n  ")
}

// RenderDocument renders extracted endpoints grouped by their first tag.
// Groups are sorted alphabetically; endpoints without tags fall under
// "Other". Each endpoint is preceded by comment lines for its summary and
// the first line of its description when that line differs from the
// summary.
func RenderDocument(doc *spec.Document, endpoints []spec.Endpoint, format Format) (string, error) {
	groups := make(map[string][]spec.Endpoint)
	for _, ep := range endpoints {
		tag := "Other"
		if len(ep.Tags) > 0 {
			tag = ep.Tags[0]
		}
		groups[tag] = append(groups[tag], ep)
	}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := []string{
		"### Generated from OpenAPI/Swagger specification",
		"### Base URL: " + doc.BaseURL(),
		"",
	}
	for _, tag := range names {
		lines = append(lines, "### "+tag, "")
		for _, ep := range groups[tag] {
			if ep.Summary != "" {
				lines = append(lines, "### "+ep.Summary)
			}
			if ep.Description != "" {
				first := strings.TrimSpace(strings.SplitN(ep.Description, "\n", 2)[0])
				if first != "" && first != ep.Summary {
					lines = append(lines, "### "+first)
				}
			}
			text, err := Render(Request{Method: ep.Method, URL: ep.URL, Headers: ep.Headers, Body: ep.Body}, format)
			if err != nil {
				return "", err
			}
			lines = append(lines, text, "", "")
		}
	}
	return strings.Join(lines, "\n"), nil
}
