package http

import (
	stdhttp "net/http"

	"folio/internal/platform/net/http/bind"
)

// Call adapts a handler with no bound input. A nil error sends out as the envelope data
func Call(fn func(*stdhttp.Request) (any, error)) Handler {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		out, err := fn(r)
		reply(w, r, out, err)
	}
}

// Query binds and validates the query string into T before calling fn
func Query[T any](fn func(*stdhttp.Request, T) (any, error)) Handler {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		in, err := bind.ParseQuery[T](r)
		if err != nil {
			RespondError(w, r, err)
			return
		}
		out, err := fn(r, in)
		reply(w, r, out, err)
	}
}

func reply(w stdhttp.ResponseWriter, r *stdhttp.Request, out any, err error) {
	if err != nil {
		RespondError(w, r, err)
		return
	}
	RespondOK(w, r, out)
}
