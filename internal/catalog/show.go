package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Show is a TV series together with its characters and their relationships.
// Characters keep insertion order; relationships are keyed by ordered endpoints.
type Show struct {
	ID          string
	Name        string
	ReleaseYear int

	characters    []Character
	relationships map[RelationshipKey]Relationship
}

// NewShow returns an empty show with a freshly generated id.
func NewShow(name string, releaseYear int) *Show {
	return &Show{
		ID:            uuid.NewString(),
		Name:          name,
		ReleaseYear:   releaseYear,
		relationships: make(map[RelationshipKey]Relationship),
	}
}

// AddCharacter appends c unless a character with the same name already exists.
func (s *Show) AddCharacter(c Character) (Character, error) {
	if _, exists := s.indexByName(c.Name); exists {
		return Character{}, newError(KindDuplicateCharacterName, c.Name, nil)
	}
	s.characters = append(s.characters, c)
	return c, nil
}

// UpdateCharacter replaces the character named oldName in place, keeping its
// position and id. Renaming onto another character's name is rejected.
func (s *Show) UpdateCharacter(oldName string, c Character) (Character, error) {
	idx, ok := s.indexByName(oldName)
	if !ok {
		return Character{}, newError(KindCharacterNotFound, oldName, nil)
	}
	if c.Name != oldName {
		if _, taken := s.indexByName(c.Name); taken {
			return Character{}, newError(KindDuplicateCharacterName, c.Name, nil)
		}
	}
	c.ID = s.characters[idx].ID
	s.characters[idx] = c
	return c, nil
}

// CharacterByName returns the first character whose name matches exactly.
func (s *Show) CharacterByName(name string) (Character, bool) {
	idx, ok := s.indexByName(name)
	if !ok {
		return Character{}, false
	}
	return s.characters[idx], true
}

// CharacterByID returns the character with the given id.
func (s *Show) CharacterByID(id string) (Character, bool) {
	for _, c := range s.characters {
		if c.ID == id {
			return c, true
		}
	}
	return Character{}, false
}

// Characters returns a copy of the character list in insertion order.
func (s *Show) Characters() []Character {
	out := make([]Character, len(s.characters))
	copy(out, s.characters)
	return out
}

// SetRelationship creates or relabels the directed edge source -> target.
// Both ids must belong to characters of this show.
func (s *Show) SetRelationship(sourceID, targetID, kind string) (Relationship, error) {
	for _, id := range []string{sourceID, targetID} {
		if _, ok := s.CharacterByID(id); !ok {
			return Relationship{}, newError(KindCharacterNotFound, id, nil)
		}
	}
	if s.relationships == nil {
		s.relationships = make(map[RelationshipKey]Relationship)
	}

	key := KeyFor(sourceID, targetID)
	rel, exists := s.relationships[key]
	if !exists {
		rel = Relationship{
			ID:     key.String(),
			Source: sourceID,
			Target: targetID,
		}
	}
	rel.Kind = kind
	s.relationships[key] = rel
	return rel, nil
}

// FindRelationship looks up the directed edge source -> target.
func (s *Show) FindRelationship(sourceID, targetID string) (Relationship, bool) {
	rel, ok := s.relationships[KeyFor(sourceID, targetID)]
	return rel, ok
}

// Relationships returns all edges ordered by their persisted key.
func (s *Show) Relationships() []Relationship {
	out := make([]Relationship, 0, len(s.relationships))
	for _, rel := range s.relationships {
		out = append(out, rel)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *Show) String() string {
	return fmt.Sprintf("%s - %d", s.Name, s.ReleaseYear)
}

// MoreInfo renders the show line followed by one bullet per character.
func (s *Show) MoreInfo() string {
	var b strings.Builder
	b.WriteString(s.String())
	b.WriteString("\nCharacters:\n")
	for _, c := range s.characters {
		b.WriteString("\t- ")
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (s *Show) clone() Show {
	out := Show{
		ID:            s.ID,
		Name:          s.Name,
		ReleaseYear:   s.ReleaseYear,
		characters:    s.Characters(),
		relationships: make(map[RelationshipKey]Relationship, len(s.relationships)),
	}
	for key, rel := range s.relationships {
		out.relationships[key] = rel
	}
	return out
}

func (s *Show) indexByName(name string) (int, bool) {
	for i, c := range s.characters {
		if c.Name == name {
			return i, true
		}
	}
	return -1, false
}

// showDocument is the on-disk shape of a show.
type showDocument struct {
	ID            string                  `json:"id"`
	Name          string                  `json:"name"`
	ReleaseYear   int                     `json:"release_year"`
	Characters    []Character             `json:"characters"`
	Relationships map[string]Relationship `json:"relationships"`
}

func (s *Show) MarshalJSON() ([]byte, error) {
	doc := showDocument{
		ID:            s.ID,
		Name:          s.Name,
		ReleaseYear:   s.ReleaseYear,
		Characters:    s.Characters(),
		Relationships: make(map[string]Relationship, len(s.relationships)),
	}
	for key, rel := range s.relationships {
		doc.Relationships[key.String()] = rel
	}
	return json.Marshal(doc)
}

func (s *Show) UnmarshalJSON(data []byte) error {
	var doc showDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	s.ID = doc.ID
	s.Name = doc.Name
	s.ReleaseYear = doc.ReleaseYear
	s.characters = doc.Characters
	s.relationships = make(map[RelationshipKey]Relationship, len(doc.Relationships))
	for stored, rel := range doc.Relationships {
		if rel.Source == "" || rel.Target == "" {
			return fmt.Errorf("relationship %q: source and target are required", stored)
		}
		key := rel.Key()
		if rel.ID == "" {
			rel.ID = key.String()
		}
		s.relationships[key] = rel
	}
	return nil
}
