// Package swaggerkit serves the OpenAPI document and the swagger UI
package swaggerkit

import (
	"net/http"

	phttp "gsa/internal/platform/net/http"
)

// DocPath is where the spec document is served
const DocPath = "/docs/doc.json"

// Mount serves the spec and the UI under /docs when enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusPermanentRedirect)
	})
	r.Get(DocPath, serveDocJSON())
	phttp.MountSwagger(r, DocPath, true)
}
