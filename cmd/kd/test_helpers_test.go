package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	dataDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(homeDir, ".config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(homeDir, ".local", "share"))
	for _, key := range []string{"KD_DATA_DIR", "KD_LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "config", "config.toml"),
		dataDir:    filepath.Join(base, "data"),
	}
	if err := os.MkdirAll(filepath.Dir(env.configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	content := fmt.Sprintf("[paths]\ndata_dir = %q\n\n[currency]\nkrw_per_usd = 1303.74\n", env.dataDir)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return env
}

// run executes kd against the env's config with stdin as the scripted answers.
func (env *cliTestEnv) run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	return runCLI(t, append([]string{"--config", env.configPath}, args...), stdin)
}

// mustRun is run that fails the test on error.
func (env *cliTestEnv) mustRun(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	stdout, stderr, err := env.run(t, stdin, args...)
	if err != nil {
		t.Fatalf("kd %s: %v\nstdout: %s\nstderr: %s", strings.Join(args, " "), err, stdout, stderr)
	}
	return stdout
}

func runCLI(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

// seedOurBlues adds Our Blues with two characters through the CLI.
func seedOurBlues(t *testing.T, env *cliTestEnv) {
	t.Helper()
	env.mustRun(t, "", "add", "show", "--name", "Our Blues", "--release-year", "2022", "--yes")
	env.mustRun(t, "", "add", "character", "--show", "Our Blues", "--name", "Lee Dong Seok",
		"--role", "protagonist", "--gender", "male", "--yes")
	env.mustRun(t, "", "add", "character", "--show", "Our Blues", "--name", "Min Seon Ah",
		"--role", "protagonist", "--gender", "female", "--yes")
}
