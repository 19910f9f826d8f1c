package middleware

import (
	stdjson "encoding/json"
	"fmt"
	"html"
	stdhttp "net/http"
	"runtime/debug"
	"strings"

	perr "folio/internal/platform/errors"
	"folio/internal/platform/logger"
	pnet "folio/internal/platform/net"
)

type panicWire struct {
	StatusCode int    `json:"status_code"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
}

// PanicWriter renders the 500 body after a recovered panic
type PanicWriter func(w stdhttp.ResponseWriter, r *stdhttp.Request, reqID string)

// RecoverWith converts panics into a 500 written by write and logs the stack with the request id
func RecoverWith(write PanicWriter) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == stdhttp.ErrAbortHandler {
					panic(v)
				}
				reqID := pnet.RequestID(r.Context())
				// format stack like chi recover
				stack := strings.Join(strings.Split(string(debug.Stack()), "\n"), "\n\t")
				logger.C(r.Context()).Error().
					Str("request_id", reqID).
					Interface("panic", v).
					Msgf("panic recovered\n%s", stack)
				// mirror id in response header
				if reqID != "" {
					w.Header().Set("X-Request-ID", reqID)
				}
				write(w, r, reqID)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RecoverJSON answers panics with the JSON error envelope
var RecoverJSON = RecoverWith(func(w stdhttp.ResponseWriter, _ *stdhttp.Request, reqID string) {
	body := panicWire{
		StatusCode: stdhttp.StatusInternalServerError,
		Status:     stdhttp.StatusText(stdhttp.StatusInternalServerError),
		Error:      perr.Root(perr.PanicErrf("panic recovered")).Error(),
		RequestID:  reqID,
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(stdhttp.StatusInternalServerError)
	_ = stdjson.NewEncoder(w).Encode(body)
})

// RecoverHTML answers panics with a bare HTML page
var RecoverHTML = RecoverWith(func(w stdhttp.ResponseWriter, _ *stdhttp.Request, reqID string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(stdhttp.StatusInternalServerError)
	_, _ = fmt.Fprintf(w,
		"<!doctype html><title>Something broke</title><h1>Something broke</h1><p>Request %s</p>",
		html.EscapeString(reqID))
})
