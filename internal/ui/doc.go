// Package ui implements an interactive terminal song browser using bubbletea's Elm architecture.
//
// Views:
//  1. [SongListView] : Browse the catalog, with bubbles/list's built-in "/" filtering
//  2. [DetailView] : Show one song's artist, stream and thumbnail URLs
//  3. [ErrorView] : Show a failed fetch with a retry key
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the Msg union type.
// Songs come from any [services.Service], so the browser works against the in-process catalog or a running server.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, o, r, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
