package tasks

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/justfortestingnothibghere/Api/internal/models"
	"github.com/justfortestingnothibghere/Api/internal/services"
	"github.com/justfortestingnothibghere/Api/internal/shared"
	"golang.org/x/time/rate"
)

// LookupOpts contains configuration for bulk title lookups.
type LookupOpts struct {
	NumWorkers int     // Concurrent workers (default: 4, max: 16)
	RateLimit  float64 // Requests per second (default: 5)
}

// LookupResult is the outcome for one title.
type LookupResult struct {
	Title string       // Title as given
	Song  *models.Song // Matched song (nil if not found)
	Error error        // Error if lookup failed
}

// Missing reports whether the lookup failed only because no song matched.
func (r LookupResult) Missing() bool {
	return errors.Is(r.Error, shared.ErrSongNotFound)
}

// BulkLookupResult contains every per-title result in input order.
type BulkLookupResult struct {
	Total   int
	Found   int
	Missing int
	Failed  int
	Results []LookupResult
}

type lookupJob struct {
	index int
	title string
}

// Lookup resolves titles concurrently against srv.
//
// Results[i] always corresponds to titles[i]. On cancellation, titles never
// dispatched carry the context error.
func Lookup(
	ctx context.Context,
	prog chan<- ProgressUpdate,
	srv services.Service,
	titles []string,
	opts LookupOpts,
) (*BulkLookupResult, error) {
	if srv == nil {
		return nil, fmt.Errorf("%w: service not initialized", shared.ErrServiceUnavailable)
	}
	if len(titles) == 0 {
		return nil, fmt.Errorf("%w: no titles given", shared.ErrMissingArgument)
	}

	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 4
	}
	if opts.NumWorkers > 16 {
		opts.NumWorkers = 16
	}
	if opts.NumWorkers > len(titles) {
		opts.NumWorkers = len(titles)
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}

	result := &BulkLookupResult{
		Total:   len(titles),
		Results: make([]LookupResult, len(titles)),
	}
	for i, title := range titles {
		result.Results[i] = LookupResult{Title: title}
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan lookupJob)
	done := make(chan int, len(titles))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go lookupWorker(ctx, &wg, srv, jobs, done, result.Results)
	}

	go func() {
		defer close(jobs)
		for i, title := range titles {
			if err := limiter.Wait(ctx); err != nil {
				return
			}
			select {
			case jobs <- lookupJob{index: i, title: title}:
				sendProgress(prog, queuedUpdate(i+1, len(titles), title))
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(done)
	}()

	completed := 0
	finished := make([]bool, len(titles))
	for idx := range done {
		completed++
		finished[idx] = true
		sendProgress(prog, foundUpdate(completed, len(titles), result.Results[idx]))
	}

	for i := range result.Results {
		res := &result.Results[i]
		if !finished[i] {
			res.Error = ctx.Err()
			if res.Error == nil {
				res.Error = context.Canceled
			}
		}
		switch {
		case res.Error == nil:
			result.Found++
		case res.Missing():
			result.Missing++
		default:
			result.Failed++
		}
	}

	sendProgress(prog, completeUpdate(result))

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("lookup interrupted: %w", err)
	}
	return result, nil
}

// lookupWorker resolves jobs and writes each result into its own slot.
func lookupWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	srv services.Service,
	jobs <-chan lookupJob,
	done chan<- int,
	results []LookupResult,
) {
	defer wg.Done()

	for job := range jobs {
		song, err := srv.FindSong(ctx, job.title)
		results[job.index].Song = song
		results[job.index].Error = err
		done <- job.index
	}
}
