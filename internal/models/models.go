// package models defines the data model for the song API
package models

import (
	"fmt"
	"strings"

	"github.com/justfortestingnothibghere/Api/internal/shared"
)

// Capability is the label attached to an API key that gates which endpoints it may call.
type Capability string

const (
	AccessAll    Capability = shared.CapabilityAll    // may list the full catalog
	AccessSingle Capability = shared.CapabilitySingle // may look up one song by title
)

// ParseCapability converts a configured tag to a [Capability].
func ParseCapability(s string) (Capability, error) {
	switch c := Capability(s); c {
	case AccessAll, AccessSingle:
		return c, nil
	default:
		return "", fmt.Errorf("%w: unknown capability %q", shared.ErrInvalidConfig, s)
	}
}

func (c Capability) String() string { return string(c) }

// Song is one immutable catalog entry.
type Song struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Artist       string `json:"artist"`
	SongURL      string `json:"song_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// SongList is the response body of the all-songs endpoint.
type SongList struct {
	TotalSongs int    `json:"total_songs"`
	Songs      []Song `json:"songs"`
}

// SongResult is the response body of the single-song endpoint.
type SongResult struct {
	Status string `json:"status"`
	Song   Song   `json:"song"`
}

// Catalog is the read-only song collection.
type Catalog struct {
	songs []Song
}

// NewCatalog validates songs and returns a catalog holding a private copy of them.
//
// Ids must be unique and titles non-empty. Duplicate titles are allowed; lookups return the first in order.
func NewCatalog(songs []Song) (*Catalog, error) {
	seen := make(map[int]bool, len(songs))
	for i, s := range songs {
		if seen[s.ID] {
			return nil, fmt.Errorf("%w: songs[%d] duplicates id %d", shared.ErrInvalidConfig, i, s.ID)
		}
		if strings.TrimSpace(s.Title) == "" {
			return nil, fmt.Errorf("%w: songs[%d] has an empty title", shared.ErrInvalidConfig, i)
		}
		seen[s.ID] = true
	}

	owned := make([]Song, len(songs))
	copy(owned, songs)
	return &Catalog{songs: owned}, nil
}

// CatalogFromConfig builds a [Catalog] from the [[songs]] section.
func CatalogFromConfig(songs []shared.SongConfig) (*Catalog, error) {
	list := make([]Song, 0, len(songs))
	for _, s := range songs {
		list = append(list, Song{
			ID:           s.ID,
			Title:        s.Title,
			Artist:       s.Artist,
			SongURL:      s.SongURL,
			ThumbnailURL: s.ThumbnailURL,
		})
	}
	return NewCatalog(list)
}

// All returns a copy of every song in collection order.
func (c *Catalog) All() []Song {
	out := make([]Song, len(c.songs))
	copy(out, c.songs)
	return out
}

// Len returns the number of songs.
func (c *Catalog) Len() int { return len(c.songs) }

// FindByTitle returns the first song whose title equals title ignoring case.
func (c *Catalog) FindByTitle(title string) (Song, error) {
	want := shared.NormalizeTitle(title)
	for _, s := range c.songs {
		if shared.NormalizeTitle(s.Title) == want {
			return s, nil
		}
	}
	return Song{}, fmt.Errorf("%w: %q", shared.ErrSongNotFound, title)
}

// KeyTable maps API keys to capabilities.
type KeyTable struct {
	keys map[string]Capability
}

// NewKeyTable builds a [KeyTable] from the [[auth.keys]] section.
func NewKeyTable(keys []shared.KeyConfig) (*KeyTable, error) {
	table := &KeyTable{keys: make(map[string]Capability, len(keys))}
	for i, k := range keys {
		if k.Key == "" {
			return nil, fmt.Errorf("%w: auth.keys[%d] has an empty key", shared.ErrInvalidConfig, i)
		}
		c, err := ParseCapability(k.Capability)
		if err != nil {
			return nil, err
		}
		if _, dup := table.keys[k.Key]; dup {
			return nil, fmt.Errorf("%w: auth.keys[%d] duplicates an earlier key", shared.ErrInvalidConfig, i)
		}
		table.keys[k.Key] = c
	}
	return table, nil
}

// Lookup returns the capability for key and whether the key is known.
func (t *KeyTable) Lookup(key string) (Capability, bool) {
	if key == "" {
		return "", false
	}
	c, ok := t.keys[key]
	return c, ok
}

// Len returns the number of configured keys.
func (t *KeyTable) Len() int { return len(t.keys) }
