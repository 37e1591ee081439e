// API service for calling a running songapi server
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/justfortestingnothibghere/Api/internal/models"
	"github.com/justfortestingnothibghere/Api/internal/shared"
)

// APIService makes authenticated requests against the song API.
type APIService struct {
	baseURL    string
	prefix     string
	apiKey     string
	httpClient *http.Client
}

// NewAPIService creates a new API service instance for the server at baseURL.
func NewAPIService(baseURL, apiKey string, client *http.Client) *APIService {
	if baseURL == "" {
		baseURL = "http://127.0.0.1:8000"
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &APIService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		prefix:     "/api/v1",
		apiKey:     apiKey,
		httpClient: client,
	}
}

// WithPrefix returns a copy of the service using a different protected prefix.
func (a *APIService) WithPrefix(prefix string) *APIService {
	cp := *a
	cp.prefix = strings.TrimRight(prefix, "/")
	return &cp
}

// APIResponse represents a raw API response with status and body.
type APIResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	IsJSON     bool
	JSONData   any
}

type errorBody struct {
	Detail string `json:"detail"`
}

// Get performs a GET request to the specified path and returns the raw response.
//
// The API key header is attached when one is configured.
func (a *APIService) Get(ctx context.Context, path string) (*APIResponse, error) {
	fullURL := a.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if a.apiKey != "" {
		req.Header.Set(shared.APIKeyHeader, a.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	apiResp := &APIResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}

	var jsonData any
	if err := json.Unmarshal(body, &jsonData); err == nil {
		apiResp.IsJSON = true
		apiResp.JSONData = jsonData
	}

	return apiResp, nil
}

// ListSongs calls the all-songs endpoint.
func (a *APIService) ListSongs(ctx context.Context) ([]models.Song, error) {
	resp, err := a.Get(ctx, a.prefix+"/all/songs/")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	if err := statusError(resp); err != nil {
		return nil, err
	}

	var list models.SongList
	if err := json.Unmarshal(resp.Body, &list); err != nil {
		return nil, fmt.Errorf("%w: failed to decode songs: %v", shared.ErrAPIRequest, err)
	}
	return list.Songs, nil
}

// FindSong calls the single-song endpoint.
func (a *APIService) FindSong(ctx context.Context, title string) (*models.Song, error) {
	query := url.Values{"title": []string{title}}
	resp, err := a.Get(ctx, a.prefix+"/access/songs/?"+query.Encode())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	if err := statusError(resp); err != nil {
		return nil, err
	}

	var result models.SongResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode song: %v", shared.ErrAPIRequest, err)
	}
	return &result.Song, nil
}

// Health calls the unauthenticated health endpoint.
func (a *APIService) Health(ctx context.Context) (*APIResponse, error) {
	resp, err := a.Get(ctx, "/health")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrServiceUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return resp, fmt.Errorf("%w: status %d", shared.ErrServiceUnavailable, resp.StatusCode)
	}
	return resp, nil
}

func (a *APIService) Name() string { return "api" }

// statusError maps non-2xx responses back to the shared sentinel errors.
func statusError(resp *APIResponse) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var body errorBody
	detail := strings.TrimSpace(string(resp.Body))
	if err := json.Unmarshal(resp.Body, &body); err == nil && body.Detail != "" {
		detail = body.Detail
	}

	switch resp.StatusCode {
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", shared.ErrForbidden, detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", shared.ErrSongNotFound, detail)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", shared.ErrMissingArgument, detail)
	default:
		return fmt.Errorf("%w: status %d, body: %s", shared.ErrAPIRequest, resp.StatusCode, detail)
	}
}
