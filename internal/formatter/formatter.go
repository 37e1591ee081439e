// package formatter renders song lists as JSON, CSV, Markdown or plain text
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/justfortestingnothibghere/Api/internal/models"
	"github.com/justfortestingnothibghere/Api/internal/shared"
)

// Format names an output encoding accepted by [Render].
type Format string

const (
	JSON     Format = "json"
	CSV      Format = "csv"
	Markdown Format = "markdown"
	Text     Format = "txt"
)

// Formats lists every supported format in display order.
var Formats = []Format{JSON, CSV, Markdown, Text}

// ParseFormat accepts a format name case-insensitively; "md" and "text" are aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return JSON, nil
	case "csv":
		return CSV, nil
	case "markdown", "md":
		return Markdown, nil
	case "txt", "text":
		return Text, nil
	default:
		return "", fmt.Errorf("%w: unsupported format %q (want one of %v)", shared.ErrInvalidFlag, s, Formats)
	}
}

// Render encodes songs in the given format.
func Render(format Format, songs []models.Song, pretty bool) ([]byte, error) {
	switch format {
	case JSON:
		return ExportToJSON(songs, pretty)
	case CSV:
		return ExportToCSV(songs)
	case Markdown:
		return ExportToMarkdown(songs, "Songs")
	case Text:
		return ExportToText(songs)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", shared.ErrInvalidFlag, format)
	}
}

// ExportToJSON wraps songs in the same envelope the all-songs endpoint returns.
func ExportToJSON(songs []models.Song, pretty bool) ([]byte, error) {
	if songs == nil {
		songs = []models.Song{}
	}
	return shared.MarshalJSON(models.SongList{TotalSongs: len(songs), Songs: songs}, pretty)
}

// ExportToCSV converts songs to CSV with columns: ID, Title, Artist, SongURL, ThumbnailURL
func ExportToCSV(songs []models.Song) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Artist", "SongURL", "ThumbnailURL"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, song := range songs {
		record := []string{
			strconv.Itoa(song.ID),
			song.Title,
			song.Artist,
			song.SongURL,
			song.ThumbnailURL,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown renders songs as a numbered Markdown list under heading.
func ExportToMarkdown(songs []models.Song, heading string) ([]byte, error) {
	var buf bytes.Buffer

	if heading != "" {
		buf.WriteString(fmt.Sprintf("# %s\n\n", heading))
	}
	buf.WriteString(fmt.Sprintf("**Songs**: %d\n\n", len(songs)))

	for i, song := range songs {
		buf.WriteString(fmt.Sprintf("%d. %s - [%s](%s)", i+1, song.Artist, song.Title, song.SongURL))
		if song.ThumbnailURL != "" {
			buf.WriteString(fmt.Sprintf(" ![thumbnail](%s)", song.ThumbnailURL))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// ExportToText renders songs in plain text format
func ExportToText(songs []models.Song) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Songs: %d\n\n", len(songs)))
	for i, song := range songs {
		buf.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, song.Artist, song.Title))
		buf.WriteString(fmt.Sprintf("   %s\n", song.SongURL))
	}

	return buf.Bytes(), nil
}

// SongDetail renders one song as labelled lines.
func SongDetail(song models.Song) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID:        %d\n", song.ID)
	fmt.Fprintf(&b, "Title:     %s\n", song.Title)
	fmt.Fprintf(&b, "Artist:    %s\n", song.Artist)
	fmt.Fprintf(&b, "Song:      %s\n", song.SongURL)
	fmt.Fprintf(&b, "Thumbnail: %s\n", song.ThumbnailURL)
	return b.String()
}

// WriteExport renders songs and writes them to path.
//
// Defaults to songs.{ext} in the working directory.
func WriteExport(format Format, songs []models.Song, path string, pretty bool) (string, error) {
	if path == "" {
		path = "songs." + Extension(format)
	}

	data, err := Render(format, songs, pretty)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s file: %w", format, err)
	}

	return path, nil
}

// Extension returns the file extension for format.
func Extension(format Format) string {
	switch format {
	case Markdown:
		return "md"
	case Text:
		return "txt"
	default:
		return string(format)
	}
}
