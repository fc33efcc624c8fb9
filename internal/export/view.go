package export

import (
	"github.com/spenweb/kd/internal/catalog"
)

type document struct {
	Shows []showView `json:"shows" yaml:"shows"`
}

type showView struct {
	ID            string             `json:"id" yaml:"id"`
	Name          string             `json:"name" yaml:"name"`
	ReleaseYear   int                `json:"release_year" yaml:"release_year"`
	Characters    []characterView    `json:"characters" yaml:"characters"`
	Relationships []relationshipView `json:"relationships" yaml:"relationships"`
}

type characterView struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Role   string `json:"role" yaml:"role"`
	Gender string `json:"gender" yaml:"gender"`
}

type relationshipView struct {
	ID         string `json:"id" yaml:"id"`
	SourceID   string `json:"source_id" yaml:"source_id"`
	SourceName string `json:"source_name,omitempty" yaml:"source_name,omitempty"`
	TargetID   string `json:"target_id" yaml:"target_id"`
	TargetName string `json:"target_name,omitempty" yaml:"target_name,omitempty"`
	Kind       string `json:"kind" yaml:"kind"`
}

func buildDocument(shows []*catalog.Show) document {
	doc := document{Shows: make([]showView, 0, len(shows))}
	for _, show := range shows {
		doc.Shows = append(doc.Shows, buildShow(show))
	}
	return doc
}

func buildShow(show *catalog.Show) showView {
	characters := show.Characters()
	view := showView{
		ID:            show.ID,
		Name:          show.Name,
		ReleaseYear:   show.ReleaseYear,
		Characters:    make([]characterView, 0, len(characters)),
		Relationships: []relationshipView{},
	}
	for _, c := range characters {
		view.Characters = append(view.Characters, characterView{
			ID:     c.ID,
			Name:   c.Name,
			Role:   c.Role,
			Gender: c.Gender,
		})
	}
	for _, r := range show.Relationships() {
		rv := relationshipView{ID: r.ID, SourceID: r.Source, TargetID: r.Target, Kind: r.Kind}
		if c, ok := show.CharacterByID(r.Source); ok {
			rv.SourceName = c.Name
		}
		if c, ok := show.CharacterByID(r.Target); ok {
			rv.TargetName = c.Name
		}
		view.Relationships = append(view.Relationships, rv)
	}
	return view
}
