// Package export writes the catalog, or a single show from it, in formats
// other tools can consume: indented JSON, YAML, or a SQLite database with
// one table per entity.
//
// Every format renders the same view: shows in natural name order,
// characters in insertion order, and relationships sorted by id with the
// endpoint names resolved. Output files are replaced atomically.
package export
