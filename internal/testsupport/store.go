package testsupport

import (
	"context"
	"testing"

	"github.com/spenweb/kd/internal/catalog"
	"github.com/spenweb/kd/internal/config"
	"github.com/spenweb/kd/internal/logging"
	"github.com/spenweb/kd/internal/store"
)

// MustOpenStore opens a store for tests.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	return st
}

// SeedOurBlues persists the Our Blues show with two characters and a
// relationship between them, returning the stored show.
func SeedOurBlues(t testing.TB, st *store.Store) catalog.Show {
	t.Helper()

	var seeded catalog.Show
	err := st.Update(context.Background(), func(c *catalog.Collection) error {
		show := catalog.NewShow("Our Blues", 2022)
		c.Add(show)
		if _, err := c.AddCharacter(show.Name, catalog.NewCharacter("Lee Dong Seok", "Main", "Male")); err != nil {
			return err
		}
		if _, err := c.AddCharacter(show.Name, catalog.NewCharacter("Min Seon Ah", "Main", "Female")); err != nil {
			return err
		}
		if _, err := c.SetRelationship(show.Name, "Lee Dong Seok", "Min Seon Ah", "Love Interest"); err != nil {
			return err
		}
		seeded = *show
		return nil
	})
	if err != nil {
		t.Fatalf("seed Our Blues: %v", err)
	}
	return seeded
}
