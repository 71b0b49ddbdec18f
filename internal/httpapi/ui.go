package httpapi

import (
	_ "embed"
	"net/http"
)

// The operator UI is a single static page with no control logic of its own;
// it drives the JSON API with the key the operator enters.
//
//go:embed index.html
var uiPage []byte

func serveUI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(uiPage)
}
