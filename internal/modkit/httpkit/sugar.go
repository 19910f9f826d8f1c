package httpkit

import "net/http"

// Get mounts a JSON handler that takes no input
func Get(r Router, path string, h func(*http.Request) (any, error)) { r.Get(path, Call(h)) }

// GetQuery mounts a JSON handler whose input is bound from the query string
func GetQuery[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Get(path, Query(h))
}
