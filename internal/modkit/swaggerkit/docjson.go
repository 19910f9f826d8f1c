package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
)

// SpecMutator adds a module's paths and schemas to the OpenAPI document
type SpecMutator func(spec map[string]any)

var (
	mu       sync.Mutex
	mutators []SpecMutator
)

// Register queues m to run each time the document is built. Modules call it on mount
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// child returns m[key] as an object, creating it when missing
func child(m map[string]any, key string) map[string]any {
	if c, ok := m[key].(map[string]any); ok {
		return c
	}
	c := map[string]any{}
	m[key] = c
	return c
}

func jsonContent(schema map[string]any, example any) map[string]any {
	media := map[string]any{"schema": schema}
	if example != nil {
		media["example"] = example
	}
	return map[string]any{"application/json": media}
}

// AddPath documents one operation. A non-empty schemaRef is wrapped in the success envelope
func AddPath(spec map[string]any, path, method, summary, tag string, params []map[string]any, schemaRef string) {
	ok := map[string]any{"description": "OK"}
	if schemaRef != "" {
		ok["content"] = jsonContent(map[string]any{
			"type": "object",
			"properties": map[string]any{
				"status_code": map[string]any{"type": "integer"},
				"status":      map[string]any{"type": "string"},
				"request_id":  map[string]any{"type": "string"},
				"data":        map[string]any{"$ref": schemaRef},
			},
		}, nil)
	}
	op := map[string]any{
		"summary":   summary,
		"tags":      []any{tag},
		"responses": map[string]any{"200": ok},
	}
	if len(params) > 0 {
		list := make([]any, len(params))
		for i, p := range params {
			list[i] = p
		}
		op["parameters"] = list
	}
	child(child(spec, "paths"), path)[strings.ToLower(method)] = op
}

// QueryParam describes an optional query string parameter
func QueryParam(name, typ, description string) map[string]any {
	return map[string]any{
		"name":        name,
		"in":          "query",
		"description": description,
		"schema":      map[string]any{"type": typ},
	}
}

// Schema adds a named component schema
func Schema(spec map[string]any, name string, schema map[string]any) {
	child(child(spec, "components"), "schemas")[name] = schema
}

var errorSchema = map[string]any{
	"type":        "object",
	"description": "Error envelope",
	"required":    []any{"status_code", "status"},
	"properties": map[string]any{
		"status_code": map[string]any{"type": "integer"},
		"status":      map[string]any{"type": "string"},
		"code":        map[string]any{"type": "integer"},
		"error":       map[string]any{"type": "string"},
		"field":       map[string]any{"type": "string"},
		"request_id":  map[string]any{"type": "string"},
	},
}

// errorResponses are added to every operation that does not declare its own
var errorResponses = map[string]map[string]any{
	"400": {"status_code": 400, "status": "Bad Request", "code": 6, "error": "progress must be at most 100", "field": "progress"},
	"500": {"status_code": 500, "status": "Internal Server Error", "code": 1, "error": "panic recovered"},
	"503": {"status_code": 503, "status": "Service Unavailable", "code": 4, "error": "meta: commit history not loaded"},
}

// build assembles the document from scratch so mutators always see a clean copy
func build(title string) map[string]any {
	spec := map[string]any{
		"openapi": "3.0.3",
		"info":    map[string]any{"title": title, "version": "1.0"},
		"servers": []any{map[string]any{"url": "/api/v1"}},
		"paths":   map[string]any{},
	}
	mu.Lock()
	ms := append([]SpecMutator(nil), mutators...)
	mu.Unlock()
	for _, m := range ms {
		m(spec)
	}

	Schema(spec, "ErrorResponse", errorSchema)
	ref := map[string]any{"$ref": "#/components/schemas/ErrorResponse"}
	for _, node := range child(spec, "paths") {
		ops, _ := node.(map[string]any)
		for _, op := range ops {
			o, ok := op.(map[string]any)
			if !ok {
				continue
			}
			resps := child(o, "responses")
			for code, example := range errorResponses {
				if _, set := resps[code]; !set {
					resps[code] = map[string]any{
						"description": http.StatusText(example["status_code"].(int)),
						"content":     jsonContent(ref, example),
					}
				}
			}
		}
	}
	return spec
}

func serveDocJSON(title string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		body, err := json.Marshal(build(title))
		if err != nil {
			http.Error(w, "openapi: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(body)
	}
}
