package catalog

import "fmt"

// Actor is a performer. Actors are not stored in the collection.
type Actor struct {
	Name      string
	BirthYear int
}

// NewActor returns an actor value.
func NewActor(name string, birthYear int) Actor {
	return Actor{Name: name, BirthYear: birthYear}
}

func (a Actor) String() string {
	return fmt.Sprintf("%s - born %d", a.Name, a.BirthYear)
}
