package spec

import (
	"reflect"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
)

func TestResolveURL_PathParameterExample(t *testing.T) {
	t.Parallel()
	params := []*Parameter{
		{Name: "id", In: "path", Type: "integer", Example: float64(42)},
	}
	got := ResolveURL("https://api.example.com/v1", "/users/{id}", params)
	if got != "https://api.example.com/v1/users/42" {
		t.Fatalf("got %q", got)
	}
	if strings.Contains(got, "{id}") {
		t.Fatalf("unsubstituted path parameter in %q", got)
	}
}

func TestResolveURL_PathParameterPlaceholder(t *testing.T) {
	t.Parallel()
	params := []*Parameter{{Name: "slug", In: "path", Type: "string"}}
	got := ResolveURL("https://api.example.com", "/posts/{slug}/comments/{slug}", params)
	if got != "https://api.example.com/posts/<slug>/comments/<slug>" {
		t.Fatalf("got %q", got)
	}
}

func TestResolveURL_QueryParameters(t *testing.T) {
	t.Parallel()
	params := []*Parameter{
		{Name: "limit", In: "query", Example: float64(10)},
		{Name: "offset", In: "query", Default: float64(0)},
		{Name: "filter", In: "query"},
	}
	got := ResolveURL("https://api.example.com", "/users", params)
	// Declaration order, example before default before placeholder.
	if got != "https://api.example.com/users?limit=10&offset=0&filter=<filter>" {
		t.Fatalf("got %q", got)
	}
}

func TestResolveURL_NoQuery(t *testing.T) {
	t.Parallel()
	got := ResolveURL("https://api.example.com", "/users", nil)
	if strings.Contains(got, "?") {
		t.Fatalf("unexpected query separator in %q", got)
	}
}

func TestResolveURL_RelativePathJoins(t *testing.T) {
	t.Parallel()
	got := ResolveURL("https://api.example.com/v1", "users", nil)
	if got != "https://api.example.com/v1/users" {
		t.Fatalf("got %q", got)
	}
}

func TestResolveURL_TrimsBaseSlash(t *testing.T) {
	t.Parallel()
	got := ResolveURL("https://api.example.com/v1/", "/users", nil)
	if got != "https://api.example.com/v1/users" {
		t.Fatalf("got %q", got)
	}
}

func TestBaseURL_Defaults(t *testing.T) {
	t.Parallel()
	doc := &Document{Host: "api.example.com"}
	if got := doc.BaseURL(); got != "https://api.example.com" {
		t.Fatalf("got %q", got)
	}
	doc = &Document{Schemes: []string{"http"}, Host: "api.example.com", BasePath: "/v2"}
	if got := doc.BaseURL(); got != "http://api.example.com/v2" {
		t.Fatalf("got %q", got)
	}
}

func securityDoc() *Document {
	return &Document{
		SecurityDefinitions: map[string]*SecurityScheme{
			"ApiKeyAuth": {Type: "apiKey", In: "header", Name: "X-API-Key", Description: "Send your Bearer token"},
			"PlainKey":   {Type: "apiKey", In: "header", Name: "X-Plain-Key", Description: "static key"},
			"QueryKey":   {Type: "apiKey", In: "query", Name: "api_key"},
			"BasicAuth":  {Type: "basic"},
		},
		Security: []SecurityRequirement{{"PlainKey": nil}},
	}
}

func TestResolveSecurityHeaders_OperationLevel(t *testing.T) {
	t.Parallel()
	op := &Operation{Security: []SecurityRequirement{{"ApiKeyAuth": nil}}}
	got := ResolveSecurityHeaders(op, securityDoc())
	want := []Header{{Name: "X-API-Key", Value: "Bearer <your-token>"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestResolveSecurityHeaders_DocumentFallback(t *testing.T) {
	t.Parallel()
	got := ResolveSecurityHeaders(&Operation{}, securityDoc())
	want := []Header{{Name: "X-Plain-Key", Value: "<your-token>"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestResolveSecurityHeaders_SkipsNonHeaderSchemes(t *testing.T) {
	t.Parallel()
	op := &Operation{Security: []SecurityRequirement{
		{"QueryKey": nil},
		{"BasicAuth": nil},
		{"Unknown": nil},
	}}
	if got := ResolveSecurityHeaders(op, securityDoc()); len(got) != 0 {
		t.Fatalf("expected no headers, got %#v", got)
	}
}

func TestResolveRequestBody_FirstBodyWins(t *testing.T) {
	t.Parallel()
	definitions := map[string]*openapi3.SchemaRef{
		"User": {Value: &openapi3.Schema{
			Type:     "object",
			Required: []string{"name"},
			Properties: openapi3.Schemas{
				"name": {Value: &openapi3.Schema{Type: "string"}},
				"age":  {Value: &openapi3.Schema{Type: "integer", Default: float64(0)}},
			},
		}},
	}
	params := []*Parameter{
		{Name: "q", In: "query"},
		{Name: "user", In: "body", Schema: &openapi3.SchemaRef{Ref: "#/definitions/User"}},
		{Name: "ignored", In: "body", Schema: &openapi3.SchemaRef{Value: &openapi3.Schema{Example: "x"}}},
	}

	body, ok := ResolveRequestBody(params, definitions)
	if !ok {
		t.Fatalf("expected a body")
	}
	want := "{\n  \"age\": 0,\n  \"name\": \"<name>\"\n}"
	if body != want {
		t.Fatalf("body:\n%s\nwant:\n%s", body, want)
	}
}

func TestResolveRequestBody_NoBodyParameter(t *testing.T) {
	t.Parallel()
	params := []*Parameter{{Name: "q", In: "query"}}
	if _, ok := ResolveRequestBody(params, nil); ok {
		t.Fatalf("expected no body")
	}
}

func TestResolveRequestBody_UnsynthesizableFirstBody(t *testing.T) {
	t.Parallel()
	// The first body parameter is authoritative even when nothing can be
	// synthesized from it.
	params := []*Parameter{
		{Name: "blob", In: "body", Schema: &openapi3.SchemaRef{Value: &openapi3.Schema{Type: "string"}}},
		{Name: "fallback", In: "body", Schema: &openapi3.SchemaRef{Value: &openapi3.Schema{Example: "x"}}},
	}
	if _, ok := ResolveRequestBody(params, nil); ok {
		t.Fatalf("expected no body")
	}
}

func TestStringify(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   any
		want string
	}{
		{"abc", "abc"},
		{float64(42), "42"},
		{float64(4.5), "4.5"},
		{true, "true"},
		{7, "7"},
	}
	for _, tc := range cases {
		if got := stringify(tc.in); got != tc.want {
			t.Errorf("stringify(%#v): got %q, want %q", tc.in, got, tc.want)
		}
	}
}
