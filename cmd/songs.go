package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/justfortestingnothibghere/Api/internal/formatter"
	"github.com/justfortestingnothibghere/Api/internal/models"
	"github.com/justfortestingnothibghere/Api/internal/shared"
	"github.com/justfortestingnothibghere/Api/internal/tasks"
	"github.com/urfave/cli/v3"
)

// SongsAll prints the full catalog in the requested format.
func (r *Runner) SongsAll(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	srv, err := r.songService(cmd)
	if err != nil {
		return err
	}

	songs, err := srv.ListSongs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list songs: %w", err)
	}

	if path := cmd.String("output"); path != "" {
		written, err := formatter.WriteExport(format, songs, path, cmd.Bool("pretty"))
		if err != nil {
			return err
		}
		r.logger.Info("songs exported", "path", written, "songs", len(songs))
		return nil
	}

	data, err := formatter.Render(format, songs, cmd.Bool("pretty"))
	if err != nil {
		return err
	}
	if err := r.writePlain("%s", data); err != nil {
		return err
	}
	if !strings.HasSuffix(string(data), "\n") {
		return r.writePlain("\n")
	}
	return nil
}

// SongsGet prints one song matched by title.
func (r *Runner) SongsGet(ctx context.Context, cmd *cli.Command) error {
	title := strings.TrimSpace(cmd.StringArg("title"))
	if title == "" {
		return fmt.Errorf("%w: title", shared.ErrMissingArgument)
	}

	srv, err := r.songService(cmd)
	if err != nil {
		return err
	}

	song, err := srv.FindSong(ctx, title)
	if err != nil {
		return fmt.Errorf("failed to find %q: %w", title, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(models.SongResult{Status: "success", Song: *song}, true)
	}
	return r.writePlain("%s", formatter.SongDetail(*song))
}

// SongsLookup resolves many titles with a rate-limited worker pool.
func (r *Runner) SongsLookup(ctx context.Context, cmd *cli.Command) error {
	titles := cmd.StringSlice("title")
	if len(titles) == 0 {
		return fmt.Errorf("%w: at least one --title", shared.ErrMissingArgument)
	}

	srv, err := r.songService(cmd)
	if err != nil {
		return err
	}

	opts := tasks.LookupOpts{
		NumWorkers: r.config.Client.Workers,
		RateLimit:  r.config.Client.RateLimit,
	}
	if cmd.IsSet("workers") {
		opts.NumWorkers = cmd.Int("workers")
	}
	if cmd.IsSet("rate") {
		opts.RateLimit = cmd.Float("rate")
	}
	if opts.NumWorkers < 0 || opts.RateLimit < 0 {
		return fmt.Errorf("%w: workers and rate must not be negative", shared.ErrInvalidFlag)
	}

	prog := make(chan tasks.ProgressUpdate, len(titles)*2+1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range prog {
			r.logger.Debug(update.Message, "phase", update.Phase, "step", update.Step, "total", update.Total)
		}
	}()

	result, err := tasks.Lookup(ctx, prog, srv, titles, opts)
	close(prog)
	<-done
	if result == nil {
		return err
	}
	if err != nil {
		r.logger.Warn("lookup interrupted", "error", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(lookupJSON(result), true)
	}

	r.writePlainHeader(fmt.Sprintf("Lookup: %d found, %d missing, %d failed", result.Found, result.Missing, result.Failed))
	for _, res := range result.Results {
		switch {
		case res.Error == nil:
			r.writePlain("✓ %s → %s - %s (%s)\n", res.Title, res.Song.Artist, res.Song.Title, res.Song.SongURL)
		case res.Missing():
			r.writePlain("✗ %s → not found\n", res.Title)
		default:
			r.writePlain("! %s → %v\n", res.Title, res.Error)
		}
	}

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d lookups failed: %w", result.Failed, result.Total, firstFailure(result))
	}
	return nil
}

// SongsHealth reports a running server's health.
func (r *Runner) SongsHealth(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	resp, err := r.apiService(cmd, config).Health(ctx)
	if err != nil {
		return err
	}
	return r.writeJSON(resp.JSONData, true)
}

type lookupEntry struct {
	Title  string       `json:"title"`
	Status string       `json:"status"`
	Song   *models.Song `json:"song,omitempty"`
	Error  string       `json:"error,omitempty"`
}

type lookupOutput struct {
	Total   int           `json:"total"`
	Found   int           `json:"found"`
	Missing int           `json:"missing"`
	Failed  int           `json:"failed"`
	Results []lookupEntry `json:"results"`
}

func lookupJSON(result *tasks.BulkLookupResult) lookupOutput {
	out := lookupOutput{
		Total:   result.Total,
		Found:   result.Found,
		Missing: result.Missing,
		Failed:  result.Failed,
		Results: make([]lookupEntry, len(result.Results)),
	}
	for i, res := range result.Results {
		entry := lookupEntry{Title: res.Title, Song: res.Song, Status: "found"}
		switch {
		case res.Missing():
			entry.Status = "missing"
		case res.Error != nil:
			entry.Status = "failed"
			entry.Error = res.Error.Error()
		}
		out.Results[i] = entry
	}
	return out
}

func firstFailure(result *tasks.BulkLookupResult) error {
	for _, res := range result.Results {
		if res.Error != nil && !res.Missing() {
			return res.Error
		}
	}
	return errors.New("unknown failure")
}
