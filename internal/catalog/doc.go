// Package catalog holds the show catalog: shows, their characters, and the
// directed relationships between those characters.
//
// A Collection is loaded from a single JSON document, mutated in memory, and
// written back wholesale with Save. Within a show character names are unique
// (exact match) and every relationship connects two characters of that show.
// Relationships are keyed by their ordered endpoints, so A -> B and B -> A are
// independent edges; setting an existing edge again only changes its kind.
//
// Operations return copies of the stored values and report failures as
// *Error values whose Kind callers can match with errors.Is against the
// exported sentinels (ErrShowNotFound, ErrCharacterNotFound, ...).
//
// The package performs no locking and no logging; see internal/store for the
// locked load-mutate-save session used by the CLI.
package catalog
