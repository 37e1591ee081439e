package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/justfortestingnothibghere/Api/internal/models"
	"github.com/justfortestingnothibghere/Api/internal/services"
	"github.com/justfortestingnothibghere/Api/internal/shared"
)

type detailBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, detailBody{Detail: detail})
}

// writeError maps the shared sentinel errors to a status code and short message.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrInvalidAPIKey):
		writeDetail(w, http.StatusForbidden, "Invalid API key")
	case errors.Is(err, shared.ErrUnauthorizedKey):
		writeDetail(w, http.StatusForbidden, "Unauthorized API key")
	case errors.Is(err, shared.ErrForbidden):
		writeDetail(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, shared.ErrSongNotFound):
		writeDetail(w, http.StatusNotFound, "Song not found")
	case errors.Is(err, shared.ErrMissingArgument):
		writeDetail(w, http.StatusUnprocessableEntity, "missing title query parameter")
	default:
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}

// SongsHandler serves the two catalog endpoints under the protected prefix.
type SongsHandler struct {
	songs  services.Service
	prefix string
}

// NewSongsHandler creates a handler reading from songs with routes under prefix.
func NewSongsHandler(songs services.Service, prefix string) *SongsHandler {
	return &SongsHandler{songs: songs, prefix: prefix}
}

// Routes returns both endpoints, each guarded by the capability it needs.
func (h *SongsHandler) Routes() []Route {
	return []Route{
		{
			Method:  http.MethodGet,
			Pattern: h.prefix + "/all/songs/{$}",
			Handler: RequireCapability(models.AccessAll)(http.HandlerFunc(h.ListAll)),
		},
		{
			Method:  http.MethodGet,
			Pattern: h.prefix + "/access/songs/{$}",
			Handler: RequireCapability(models.AccessSingle)(http.HandlerFunc(h.FindByTitle)),
		},
	}
}

// ListAll writes every song and the count.
func (h *SongsHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	songs, err := h.songs.ListSongs(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.SongList{TotalSongs: len(songs), Songs: songs})
}

// FindByTitle writes the first song whose title matches the title query parameter ignoring case.
func (h *SongsHandler) FindByTitle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("title") {
		writeError(w, shared.ErrMissingArgument)
		return
	}

	song, err := h.songs.FindSong(r.Context(), query.Get("title"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.SongResult{Status: "success", Song: *song})
}
