package catalog

import (
	"fmt"

	"github.com/google/uuid"
)

// Suggested values offered by the prompt layer. The catalog accepts any string.
var (
	Roles   = []string{"protagonist", "antagonist", "comic-relief"}
	Genders = []string{"female", "male", "other"}
)

// Character is a named person in a show.
type Character struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Gender string `json:"gender"`
}

// NewCharacter returns a character with a freshly generated id.
func NewCharacter(name, role, gender string) Character {
	return Character{
		ID:     uuid.NewString(),
		Name:   name,
		Role:   role,
		Gender: gender,
	}
}

func (c Character) String() string {
	return fmt.Sprintf("%s (%s) - %s", c.Name, c.Gender, c.Role)
}
