package catalog

import "fmt"

// KeySeparator joins the endpoint ids in the persisted relationship key.
const KeySeparator = "--"

// RelationshipKey identifies a relationship by its ordered endpoints.
type RelationshipKey struct {
	Source string
	Target string
}

// KeyFor returns the key for the directed edge source -> target.
func KeyFor(sourceID, targetID string) RelationshipKey {
	return RelationshipKey{Source: sourceID, Target: targetID}
}

// String returns the persisted form of the key.
func (k RelationshipKey) String() string {
	return k.Source + KeySeparator + k.Target
}

// Relationship is a directed, labelled edge between two characters of a show.
type Relationship struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
	Kind   string `json:"kind"`
}

// Key returns the typed key derived from the relationship endpoints.
func (r Relationship) Key() RelationshipKey {
	return KeyFor(r.Source, r.Target)
}

func (r Relationship) String() string {
	return fmt.Sprintf("%s -> %s: %s", r.Source, r.Target, r.Kind)
}
