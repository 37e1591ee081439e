package models

import (
	"errors"
	"testing"

	"github.com/justfortestingnothibghere/Api/internal/shared"
)

func seedSongs() []Song {
	return []Song{
		{ID: 1, Title: "Heat Waves", Artist: "Glass Animals", SongURL: "https://example.com/1.mp3", ThumbnailURL: "https://example.com/bg.png"},
		{ID: 2, Title: "Blinding Lights", Artist: "The Weeknd", SongURL: "https://example.com/2.mp3", ThumbnailURL: "https://example.com/bg.png"},
	}
}

func TestCatalog(t *testing.T) {
	t.Run("NewCatalog", func(t *testing.T) {
		t.Run("copies input", func(t *testing.T) {
			songs := seedSongs()
			catalog, err := NewCatalog(songs)
			if err != nil {
				t.Fatalf("NewCatalog() error = %v", err)
			}

			songs[0].Title = "Mutated"
			if catalog.All()[0].Title != "Heat Waves" {
				t.Error("expected catalog to be unaffected by changes to the input slice")
			}
		})

		t.Run("duplicate id", func(t *testing.T) {
			songs := seedSongs()
			songs[1].ID = 1
			if _, err := NewCatalog(songs); !errors.Is(err, shared.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})

		t.Run("empty title", func(t *testing.T) {
			songs := seedSongs()
			songs[1].Title = " "
			if _, err := NewCatalog(songs); !errors.Is(err, shared.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})

		t.Run("empty catalog", func(t *testing.T) {
			catalog, err := NewCatalog(nil)
			if err != nil {
				t.Fatalf("NewCatalog() error = %v", err)
			}
			if catalog.Len() != 0 || len(catalog.All()) != 0 {
				t.Error("expected empty catalog")
			}
		})
	})

	t.Run("All", func(t *testing.T) {
		catalog, _ := NewCatalog(seedSongs())

		all := catalog.All()
		if len(all) != catalog.Len() {
			t.Errorf("expected %d songs, got %d", catalog.Len(), len(all))
		}

		all[0].Title = "Mutated"
		if catalog.All()[0].Title != "Heat Waves" {
			t.Error("expected All to return a copy")
		}
	})

	t.Run("FindByTitle", func(t *testing.T) {
		catalog, _ := NewCatalog(seedSongs())

		tc := []struct {
			title   string
			wantID  int
			wantErr error
		}{
			{title: "Heat Waves", wantID: 1},
			{title: "heat waves", wantID: 1},
			{title: "HEAT WAVES", wantID: 1},
			{title: "blinding lights", wantID: 2},
			{title: "heat", wantErr: shared.ErrSongNotFound},
			{title: "heat waves ", wantErr: shared.ErrSongNotFound},
			{title: "nonexistent", wantErr: shared.ErrSongNotFound},
			{title: "", wantErr: shared.ErrSongNotFound},
		}

		for _, tt := range tc {
			t.Run(tt.title, func(t *testing.T) {
				song, err := catalog.FindByTitle(tt.title)
				if tt.wantErr != nil {
					if !errors.Is(err, tt.wantErr) {
						t.Errorf("expected %v, got %v", tt.wantErr, err)
					}
					return
				}
				if err != nil {
					t.Fatalf("FindByTitle() error = %v", err)
				}
				if song.ID != tt.wantID {
					t.Errorf("expected id %d, got %d", tt.wantID, song.ID)
				}
			})
		}
	})

	t.Run("FindByTitle first match wins", func(t *testing.T) {
		songs := append(seedSongs(), Song{ID: 3, Title: "heat waves", Artist: "Cover Band"})
		catalog, err := NewCatalog(songs)
		if err != nil {
			t.Fatalf("NewCatalog() error = %v", err)
		}

		song, err := catalog.FindByTitle("Heat Waves")
		if err != nil {
			t.Fatalf("FindByTitle() error = %v", err)
		}
		if song.ID != 1 {
			t.Errorf("expected first match id 1, got %d", song.ID)
		}
	})

	t.Run("CatalogFromConfig", func(t *testing.T) {
		catalog, err := CatalogFromConfig(shared.DefaultConfig().Songs)
		if err != nil {
			t.Fatalf("CatalogFromConfig() error = %v", err)
		}
		if catalog.Len() != 2 {
			t.Errorf("expected 2 songs, got %d", catalog.Len())
		}
	})
}

func TestKeyTable(t *testing.T) {
	t.Run("from default config", func(t *testing.T) {
		config := shared.DefaultConfig()
		table, err := NewKeyTable(config.Auth.Keys)
		if err != nil {
			t.Fatalf("NewKeyTable() error = %v", err)
		}

		c, ok := table.Lookup(config.Auth.KeyFor(shared.CapabilityAll))
		if !ok || c != AccessAll {
			t.Errorf("expected access_all, got %v (%v)", c, ok)
		}

		c, ok = table.Lookup(config.Auth.KeyFor(shared.CapabilitySingle))
		if !ok || c != AccessSingle {
			t.Errorf("expected access_single, got %v (%v)", c, ok)
		}
	})

	t.Run("unknown and empty keys", func(t *testing.T) {
		table, _ := NewKeyTable([]shared.KeyConfig{{Key: "k", Capability: "access_all"}})
		if _, ok := table.Lookup("nope"); ok {
			t.Error("expected unknown key to miss")
		}
		if _, ok := table.Lookup(""); ok {
			t.Error("expected empty key to miss")
		}
	})

	t.Run("rejects bad entries", func(t *testing.T) {
		tc := [][]shared.KeyConfig{
			{{Key: "", Capability: "access_all"}},
			{{Key: "k", Capability: "root"}},
			{{Key: "k", Capability: "access_all"}, {Key: "k", Capability: "access_single"}},
		}
		for _, keys := range tc {
			if _, err := NewKeyTable(keys); !errors.Is(err, shared.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig for %v, got %v", keys, err)
			}
		}
	})
}

func TestParseCapability(t *testing.T) {
	for _, s := range []string{"access_all", "access_single"} {
		c, err := ParseCapability(s)
		if err != nil || c.String() != s {
			t.Errorf("ParseCapability(%q) = %v, %v", s, c, err)
		}
	}
	if _, err := ParseCapability("ACCESS_ALL"); err == nil {
		t.Error("expected capability tags to be case sensitive")
	}
}
