package server

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/justfortestingnothibghere/Api/internal/models"
	"github.com/justfortestingnothibghere/Api/internal/services"
	"github.com/justfortestingnothibghere/Api/internal/shared"
)

var landingTmpl = template.Must(template.New("landing").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Music API</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
               text-align: center; padding: 40px; background: #f5f5f5; }
        .container { display: inline-block; text-align: left; background: white; padding: 2rem;
                     border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        h1 { color: #1DB954; margin: 0 0 1rem 0; }
        code { background: #eee; padding: 0 4px; border-radius: 3px; }
        li { margin: 0.5rem 0; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Music API is Live!</h1>
        <p>{{.Total}} songs available. Send your key in the <code>{{.Header}}</code> header.</p>
        <ul>
        {{- range .Endpoints}}
            <li><b>{{.Path}}</b> &mdash; {{.Summary}} (key capability: <code>{{.Capability}}</code>)</li>
        {{- end}}
        </ul>
    </div>
</body>
</html>
`))

type landingEndpoint struct {
	Path       string
	Summary    string
	Capability models.Capability
}

type landingData struct {
	Total     int
	Header    string
	Endpoints []landingEndpoint
}

// SiteHandler serves the unauthenticated landing page and health check.
type SiteHandler struct {
	songs  services.Service
	prefix string
}

// NewSiteHandler creates the handler; prefix is only used to render endpoint paths.
func NewSiteHandler(songs services.Service, prefix string) *SiteHandler {
	return &SiteHandler{songs: songs, prefix: prefix}
}

// Routes returns the landing page and health routes.
func (h *SiteHandler) Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Pattern: "/{$}", Handler: http.HandlerFunc(h.Landing)},
		{Method: http.MethodGet, Pattern: "/health", Handler: http.HandlerFunc(h.Health)},
	}
}

// Landing renders the informational page. Key values are never shown.
func (h *SiteHandler) Landing(w http.ResponseWriter, r *http.Request) {
	songs, err := h.songs.ListSongs(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	data := landingData{
		Total:  len(songs),
		Header: shared.APIKeyHeader,
		Endpoints: []landingEndpoint{
			{Path: h.prefix + "/all/songs/", Summary: "get all songs", Capability: models.AccessAll},
			{Path: h.prefix + "/access/songs/?title=Heat%20Waves", Summary: "get a single song by title", Capability: models.AccessSingle},
		},
	}

	var buf bytes.Buffer
	if err := landingTmpl.Execute(&buf, data); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// Health reports liveness and the catalog size.
func (h *SiteHandler) Health(w http.ResponseWriter, r *http.Request) {
	songs, err := h.songs.ListSongs(r.Context())
	if err != nil {
		writeDetail(w, http.StatusServiceUnavailable, "catalog unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "total_songs": len(songs)})
}
