package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/justfortestingnothibghere/Api/internal/models"
)

var _ list.Item = songItem{}

// songItem wraps [models.Song] to implement [list.Item].
type songItem struct {
	song models.Song
}

func (i songItem) FilterValue() string { return i.song.Title + " " + i.song.Artist }
func (i songItem) Title() string       { return i.song.Title }
func (i songItem) Description() string { return fmt.Sprintf("%s • #%d", i.song.Artist, i.song.ID) }

func songItems(songs []models.Song) []list.Item {
	items := make([]list.Item, len(songs))
	for i, s := range songs {
		items[i] = songItem{song: s}
	}
	return items
}
