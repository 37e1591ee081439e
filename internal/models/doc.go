// Package models defines the domain entities served by the song API.
//
// Both collections are immutable once built:
//   - [Catalog] : the seeded song list, validated for unique ids and copied on construction and on read
//   - [KeyTable] : the static API key to [Capability] mapping consulted by the authorization gate
//
// Neither type holds a lock; they are safe for concurrent readers because nothing writes to them after construction.
package models
