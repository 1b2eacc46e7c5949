package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"unhex/internal/viewport"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverridesAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unhex.toml")
	content := `
[layout]
bytes_per_row = 8
visible_rows = -3

[theme]
marker_background = "#123456"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	want := viewport.Layout{BytesPerRow: 8, VisibleRows: viewport.DefaultVisibleRows}
	if diff := cmp.Diff(want, cfg.ViewportLayout()); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
	if cfg.Theme.MarkerBackground != "#123456" {
		t.Errorf("expected marker background override, got %q", cfg.Theme.MarkerBackground)
	}
	if cfg.Theme.LegendBackground != DefaultConfig().Theme.LegendBackground {
		t.Errorf("expected default legend background, got %q", cfg.Theme.LegendBackground)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[layout\nbytes_per_row ="), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected a decode error")
	}
	if cfg == nil || cfg.Layout.BytesPerRow != viewport.DefaultBytesPerRow {
		t.Errorf("expected defaults alongside the error, got %+v", cfg)
	}
}
