// Package swaggerkit serves the API's OpenAPI document and the Swagger UI over it
package swaggerkit

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	phttp "folio/internal/platform/net/http"
)

const docsRoot = "/api/docs"

// Mount serves the UI at /api/docs/ and the document at /api/docs/doc.json when on
func Mount(r phttp.Router, on bool) {
	if !on {
		return
	}
	r.Get(docsRoot, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, docsRoot+"/", http.StatusPermanentRedirect)
	})
	r.Get(docsRoot+"/doc.json", serveDocJSON("folio API"))
	r.Handle(docsRoot+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName("folio"),
		httpSwagger.URL(docsRoot+"/doc.json"),
	))
}
