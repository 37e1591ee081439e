// package services defines interface Service for reading the song catalog
//
// In-process (CatalogService) or over HTTP (APIService)
package services

import (
	"context"

	"github.com/justfortestingnothibghere/Api/internal/models"
)

// Service defines read access to a song catalog.
type Service interface {
	// ListSongs returns every song in collection order.
	ListSongs(ctx context.Context) ([]models.Song, error)

	// FindSong returns the first song whose title matches ignoring case.
	// Returns an error wrapping [shared.ErrSongNotFound] when nothing matches.
	FindSong(ctx context.Context, title string) (*models.Song, error)

	// Name returns a short label for logs and the TUI header.
	Name() string
}

var (
	_ Service = (*CatalogService)(nil)
	_ Service = (*APIService)(nil)
)

// CatalogService serves songs straight from an in-memory [models.Catalog].
type CatalogService struct {
	catalog *models.Catalog
}

// NewCatalogService wraps catalog.
func NewCatalogService(catalog *models.Catalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// ListSongs returns a copy of the catalog.
func (s *CatalogService) ListSongs(ctx context.Context) ([]models.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.catalog.All(), nil
}

// FindSong looks up title in the catalog.
func (s *CatalogService) FindSong(ctx context.Context, title string) (*models.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	song, err := s.catalog.FindByTitle(title)
	if err != nil {
		return nil, err
	}
	return &song, nil
}

// Len returns the number of songs without copying them.
func (s *CatalogService) Len() int { return s.catalog.Len() }

func (s *CatalogService) Name() string { return "catalog" }
