package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigPrintsDirectories(t *testing.T) {
	env := setupCLITestEnv(t)
	out := env.mustRun(t, "", "config")
	requireContains(t, out, "Config directory: \""+filepath.Dir(env.configPath)+"\"")
	requireContains(t, out, "Data directory: \""+env.dataDir+"\"")
}

func TestConfigValidate(t *testing.T) {
	env := setupCLITestEnv(t)
	out := env.mustRun(t, "", "config", "validate")
	requireContains(t, out, "Config path: "+env.configPath)
	requireContains(t, out, "Data directory:    [OK] "+env.dataDir+" (read/write ok)")
	requireContains(t, out, "Catalog document:  [OK] "+filepath.Join(env.dataDir, "shows.json")+" (not created yet)")
	requireContains(t, out, "Configuration valid")
}

func TestConfigInitCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "sample", "config.toml")

	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration to "+target)
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "krw_per_usd") {
		t.Fatalf("unexpected sample content:\n%s", data)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
}

func TestConfigValidateReportsBrokenDocument(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.MkdirAll(env.dataDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(env.dataDir, "shows.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, _, err := env.run(t, "", "config", "validate")
	if err == nil {
		t.Fatal("expected failing check")
	}
	requireContains(t, out, "Catalog document:  [ERROR]")
}

func TestInvalidConfigFails(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.WriteFile(env.configPath, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := env.run(t, "", "list", "shows"); err == nil {
		t.Fatal("expected invalid config to fail")
	}
}
