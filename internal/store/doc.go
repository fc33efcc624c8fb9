// Package store wraps the catalog document in the load-mutate-save session
// each kd command runs.
//
// Update holds an advisory file lock (shows.json.lock beside the document)
// for the whole cycle so two kd processes serialize their writes. A mutation
// that returns an error leaves the document untouched: nothing is saved.
package store
