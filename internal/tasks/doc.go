// Package tasks runs batch operations against a song [services.Service] with real-time progress reporting.
//
// # Bulk Lookup
//
// [Lookup] resolves many titles at once:
//   - a producer queues titles, throttled by a [rate.Limiter]
//   - a bounded worker pool calls [services.Service.FindSong]
//   - results are stored by input position, so output order matches the titles given
//
// A title that matches nothing is recorded as missing; any other error is recorded as failed.
// Neither aborts the batch. Cancelling the context stops queueing and returns what finished.
//
// # Progress Reporting
//
// Operations use non-blocking channels for progress updates.
// The [ProgressUpdate] struct contains phase, step counters and a message.
// Updates use select with default so a slow reader never stalls the workers.
package tasks
