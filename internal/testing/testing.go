// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/justfortestingnothibghere/Api/internal/models"
	"github.com/justfortestingnothibghere/Api/internal/shared"
)

// MockService is a test double for [services.Service] backed by a fixed song slice.
//
// Err, when set, is returned from every call. Calls records looked-up titles.
type MockService struct {
	Songs []models.Song
	Err   error

	mu    sync.Mutex
	calls []string
}

// SeedSongs returns the two songs shipped in the example config.
func SeedSongs() []models.Song {
	return []models.Song{
		{ID: 1, Title: "Heat Waves", Artist: "Glass Animals", SongURL: "https://example.com/heat-waves.mp3", ThumbnailURL: "https://example.com/bg.png"},
		{ID: 2, Title: "Blinding Lights", Artist: "The Weeknd", SongURL: "https://example.com/blinding-lights.mp3", ThumbnailURL: "https://example.com/bg.png"},
	}
}

func (m *MockService) ListSongs(ctx context.Context) ([]models.Song, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]models.Song(nil), m.Songs...), nil
}

func (m *MockService) FindSong(ctx context.Context, title string) (*models.Song, error) {
	m.mu.Lock()
	m.calls = append(m.calls, title)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	for _, s := range m.Songs {
		if strings.EqualFold(s.Title, title) {
			song := s
			return &song, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", shared.ErrSongNotFound, title)
}

func (m *MockService) Name() string { return "mock" }

// Calls returns the titles passed to FindSong so far.
func (m *MockService) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
