// Package site handles the service landing page.
package site

import (
	"context"
	"errors"
	"net/http"
)

// Error constants
var (
	ErrServe = errors.New("site serve failed")
)

// Register attaches the landing page route to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(indexHTML))
	})
}

// indexHTML is a minimal landing page pointing at the API surface.
const indexHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>Paddock Insight</title>
    <style>body{font-family:sans-serif;max-width:40rem;margin:3rem auto;line-height:1.5}</style>
  </head>
  <body>
    <h1>Paddock Insight</h1>
    <p>Read-only analytics over historical motor-racing results.</p>
    <ul>
      <li><code>GET /similar/{surname}</code> — most similar driver profiles</li>
      <li><code>GET /story?race_id=&amp;driver=</code> — one driver's race outcome</li>
      <li><code>GET /seasons</code>, <code>GET /races?year=</code>, <code>GET /drivers?race_id=</code> — archive</li>
      <li><a href="/api-docs">API documentation</a></li>
      <li><a href="/stats">Service statistics</a></li>
    </ul>
  </body>
</html>`
