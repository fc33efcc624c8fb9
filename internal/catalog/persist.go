package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spenweb/kd/internal/fileutil"
)

type collectionDocument struct {
	Shows map[string]*Show `json:"shows"`
}

// Load reads the collection stored at path. A missing file yields an empty
// collection so that the first run needs no setup.
func Load(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewCollection(), nil
		}
		return nil, newError(KindIO, path, err)
	}
	if len(data) == 0 {
		return NewCollection(), nil
	}

	var doc collectionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, newError(KindParse, path, err)
	}

	c := NewCollection()
	for key, show := range doc.Shows {
		if show == nil {
			continue
		}
		switch {
		case show.ID == "":
			show.ID = key
		case show.ID != key:
			return nil, newError(KindParse, path, fmt.Errorf("show %q is stored under key %q", show.ID, key))
		}
		if _, dup := c.shows[show.ID]; dup {
			return nil, newError(KindParse, path, fmt.Errorf("duplicate show id %q", show.ID))
		}
		c.Add(show)
	}
	return c, nil
}

// Save writes the whole collection to path, replacing any previous document.
func (c *Collection) Save(path string) error {
	doc := collectionDocument{Shows: c.shows}
	if doc.Shows == nil {
		doc.Shows = map[string]*Show{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return newError(KindSerialize, path, err)
	}
	data = append(data, '\n')

	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return newError(KindIO, path, err)
	}
	return nil
}
