package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	original := &Module{
		Name:          "example",
		Target:        "x86_64-unknown-linux-gnu",
		CacheGenerics: true,
	}

	if err := Save(dir, original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Name != original.Name {
		t.Errorf("expected name %q, got %q", original.Name, loaded.Name)
	}

	if loaded.Target != original.Target {
		t.Errorf("expected target %q, got %q", original.Target, loaded.Target)
	}

	if loaded.CacheGenerics != original.CacheGenerics {
		t.Error("expected CacheGenerics to round-trip as true")
	}

	absDir, _ := filepath.Abs(dir)
	if loaded.Root != absDir {
		t.Errorf("expected root %q, got %q", absDir, loaded.Root)
	}
}

func TestLoadMissingModuleFile(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(dir); err == nil {
		t.Error("expected an error loading a directory with no rave-mod.toml")
	}
}

func TestLoadRejectsMissingName(t *testing.T) {
	dir := t.TempDir()

	content := "target = \"x86_64-unknown-linux-gnu\"\n"
	if err := os.WriteFile(filepath.Join(dir, "rave-mod.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("expected an error loading a module file with no name")
	}
}
