package catalog

import (
	"sort"

	"github.com/facette/natsort"
)

// DocumentName is the file name of the persisted collection.
const DocumentName = "shows.json"

// Collection holds every show in the catalog keyed by show id.
type Collection struct {
	shows map[string]*Show
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{shows: make(map[string]*Show)}
}

// Len returns the number of shows.
func (c *Collection) Len() int {
	return len(c.shows)
}

// Add inserts show keyed by its id.
func (c *Collection) Add(show *Show) {
	if c.shows == nil {
		c.shows = make(map[string]*Show)
	}
	c.shows[show.ID] = show
}

// Shows returns every show in natural name order.
func (c *Collection) Shows() []*Show {
	out := make([]*Show, 0, len(c.shows))
	for _, id := range c.sortedIDs() {
		out = append(out, c.shows[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return natsort.Compare(out[i].Name, out[j].Name)
	})
	return out
}

// ShowNames returns the names of all shows. Callers must not depend on the order.
func (c *Collection) ShowNames() []string {
	shows := c.Shows()
	names := make([]string, 0, len(shows))
	for _, show := range shows {
		names = append(names, show.Name)
	}
	return names
}

// ShowByName returns the first show whose name matches exactly.
func (c *Collection) ShowByName(name string) (*Show, bool) {
	for _, id := range c.sortedIDs() {
		if show := c.shows[id]; show.Name == name {
			return show, true
		}
	}
	return nil, false
}

// Show is ShowByName with a ShowNotFound error for a missing name.
func (c *Collection) Show(name string) (*Show, error) {
	show, ok := c.ShowByName(name)
	if !ok {
		return nil, newError(KindShowNotFound, name, nil)
	}
	return show, nil
}

// Update renames the show called oldName and sets its release year from show.
// The stored show keeps its id, characters and relationships.
func (c *Collection) Update(oldName string, show Show) (Show, error) {
	existing, err := c.Show(oldName)
	if err != nil {
		return Show{}, err
	}
	existing.Name = show.Name
	existing.ReleaseYear = show.ReleaseYear
	return existing.clone(), nil
}

// AddCharacter adds character to the show called showName.
func (c *Collection) AddCharacter(showName string, character Character) (Character, error) {
	show, err := c.Show(showName)
	if err != nil {
		return Character{}, err
	}
	return show.AddCharacter(character)
}

// UpdateCharacter replaces the character oldName in the show called showName.
func (c *Collection) UpdateCharacter(showName, oldName string, character Character) (Character, error) {
	show, err := c.Show(showName)
	if err != nil {
		return Character{}, err
	}
	return show.UpdateCharacter(oldName, character)
}

// SetRelationship relates two characters of the show called showName by name.
func (c *Collection) SetRelationship(showName, sourceName, targetName, kind string) (Relationship, error) {
	show, err := c.Show(showName)
	if err != nil {
		return Relationship{}, err
	}
	source, ok := show.CharacterByName(sourceName)
	if !ok {
		return Relationship{}, newError(KindCharacterNotFound, sourceName, nil)
	}
	target, ok := show.CharacterByName(targetName)
	if !ok {
		return Relationship{}, newError(KindCharacterNotFound, targetName, nil)
	}
	return show.SetRelationship(source.ID, target.ID, kind)
}

func (c *Collection) sortedIDs() []string {
	ids := make([]string, 0, len(c.shows))
	for id := range c.shows {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
