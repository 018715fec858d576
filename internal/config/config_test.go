package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Prompt == "" || cfg.HistoryFile == "" {
		t.Fatalf("Default() returned incomplete config: %+v", cfg)
	}
}

func TestLoadMissingFileFallsBackToDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load of missing file returned error: %v", err)
	}
	if *cfg != *Default() {
		t.Fatalf("Load of missing file = %+v, want default %+v", cfg, Default())
	}
}

func TestLoadOverlaysFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cachetree.yaml")
	contents := "prompt: \"mm> \"\nbanner: false\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Prompt != "mm> " {
		t.Fatalf("Prompt = %q, want %q", cfg.Prompt, "mm> ")
	}
	if cfg.Banner {
		t.Fatal("Banner = true, want false")
	}
	if cfg.HistoryFile != Default().HistoryFile {
		t.Fatalf("HistoryFile = %q, want default preserved", cfg.HistoryFile)
	}
}
