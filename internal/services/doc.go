// Package services defines the [Service] interface for reading the song catalog and its two implementations.
//
// # In-process
//
// [CatalogService] wraps the immutable [models.Catalog] built from configuration at startup.
// The HTTP handlers in internal/server read through it, so the same lookup rules apply everywhere.
//
// # Over HTTP
//
// [APIService] calls a running songapi server, sending the configured key in the x-api-key header.
// The CLI and TUI use it so they exercise the same authorization path as any other client.
//
// # Error Handling
//
// Both implementations return sentinel errors from the shared package:
//   - [shared.ErrSongNotFound] : no title matched (HTTP 404)
//   - [shared.ErrForbidden] : key missing, unknown or lacking the capability (HTTP 403)
//   - [shared.ErrAPIRequest] : transport failure or unexpected status
package services
