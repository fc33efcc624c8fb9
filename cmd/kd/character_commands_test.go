package main

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spenweb/kd/internal/catalog"
)

func listCharacters(t *testing.T, env *cliTestEnv, show string) []catalog.Character {
	t.Helper()
	out := env.mustRun(t, "", "list", "characters", "--show", show, "--json")
	var characters []catalog.Character
	if err := json.Unmarshal([]byte(out), &characters); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	return characters
}

func TestAddCharacterPrompts(t *testing.T) {
	env := setupCLITestEnv(t)
	env.mustRun(t, "", "add", "show", "--name", "Our Blues", "--release-year", "2022", "--yes")

	// Show by partial name, role by number, gender by text, default confirmation.
	out := env.mustRun(t, "our\nJung Eun-hee\n1\nFemale\n\n", "add", "character")
	requireContains(t, out, "(known: Our Blues)")
	requireContains(t, out, "1) protagonist")
	requireContains(t, out, "Does this info look correct: Jung Eun-hee (female) - protagonist")
	requireContains(t, out, "Added new character: Jung Eun-hee (female) - protagonist")

	characters := listCharacters(t, env, "Our Blues")
	if len(characters) != 1 || characters[0].Name != "Jung Eun-hee" || characters[0].ID == "" {
		t.Fatalf("unexpected characters: %+v", characters)
	}
}

func TestAddCharacterRejectsDuplicateName(t *testing.T) {
	env := setupCLITestEnv(t)
	seedOurBlues(t, env)

	_, _, err := env.run(t, "", "add", "character", "--show", "Our Blues", "--name", "Lee Dong Seok",
		"--role", "antagonist", "--gender", "male", "--yes")
	if !errors.Is(err, catalog.ErrDuplicateCharacterName) {
		t.Fatalf("expected duplicate character error, got %v", err)
	}
	if got := len(listCharacters(t, env, "Our Blues")); got != 2 {
		t.Fatalf("characters = %d, want 2", got)
	}
}

func TestAddCharacterUnknownShow(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := env.run(t, "", "add", "character", "--show", "Nope", "--name", "A", "--role", "x", "--gender", "y", "--yes")
	if !errors.Is(err, catalog.ErrShowNotFound) {
		t.Fatalf("expected show not found, got %v", err)
	}
}

func TestUpdateCharacterKeepsIDAndPosition(t *testing.T) {
	env := setupCLITestEnv(t)
	seedOurBlues(t, env)
	before := listCharacters(t, env, "Our Blues")

	out := env.mustRun(t, "Dong Seok\nLee Dong-seok\n\n3\ny\n", "update", "character", "--show", "Our Blues")
	requireContains(t, out, "Character's new name: [Lee Dong Seok]")
	requireContains(t, out, "Role: [protagonist]")
	requireContains(t, out, "Updated character: Lee Dong-seok (other) - protagonist")

	after := listCharacters(t, env, "Our Blues")
	if len(after) != 2 {
		t.Fatalf("characters = %d, want 2", len(after))
	}
	if after[0].ID != before[0].ID || after[0].Name != "Lee Dong-seok" || after[0].Gender != "other" {
		t.Fatalf("unexpected first character: %+v", after[0])
	}
	if after[1] != before[1] {
		t.Fatalf("second character changed: %+v", after[1])
	}
}

func TestUpdateCharacterRenameOntoExistingNameFails(t *testing.T) {
	env := setupCLITestEnv(t)
	seedOurBlues(t, env)

	_, _, err := env.run(t, "", "update", "character", "--show", "Our Blues", "--old-name", "Lee Dong Seok",
		"--name", "Min Seon Ah", "--role", "protagonist", "--gender", "male", "--yes")
	if !errors.Is(err, catalog.ErrDuplicateCharacterName) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestAddActorPrintsRendering(t *testing.T) {
	out, _, err := runCLI(t, []string{"add", "actor", "--name", "Lee Byung-hun", "--birth-year", "1970"}, "")
	if err != nil {
		t.Fatalf("add actor: %v", err)
	}
	requireContains(t, out, "Added new actor: Lee Byung-hun - born 1970")
}

func TestPromptsFailWhenStdinIsNotATerminal(t *testing.T) {
	env := setupCLITestEnv(t)
	path := filepath.Join(env.baseDir, "stdin.txt")
	if err := os.WriteFile(path, []byte("Our Blues\n2022\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	stdin, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer stdin.Close()

	cmd := newRootCommand()
	cmd.SetIn(stdin)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--config", env.configPath, "add", "show"})
	err = cmd.Execute()
	if !errors.Is(err, errNotInteractive) {
		t.Fatalf("expected not interactive error, got %v", err)
	}
	requireContains(t, err.Error(), "pass --name")
}

func TestAddCharacterFindsShowStoredWithIrregularSpacing(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.MkdirAll(env.dataDir, 0o755); err != nil {
		t.Fatal(err)
	}
	doc := `{"shows": {"s1": {"id": "s1", "name": "Our  Blues", "release_year": 2022, "characters": []}}}`
	if err := os.WriteFile(filepath.Join(env.dataDir, catalog.DocumentName), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	out := env.mustRun(t, "", "add", "character", "--show", "Our  Blues", "--name", "Jung Eun-hee",
		"--role", "protagonist", "--gender", "female", "--yes")
	requireContains(t, out, "Added new character: Jung Eun-hee (female) - protagonist")

	chars := listCharacters(t, env, "Our  Blues")
	if len(chars) != 1 || chars[0].Name != "Jung Eun-hee" {
		t.Fatalf("characters = %+v", chars)
	}
}
