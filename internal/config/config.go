package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"unhex/internal/viewport"
)

type Theme struct {
	MarkerBackground        string `toml:"marker_background"`
	MarkerPendingBackground string `toml:"marker_pending_background"`
	LegendBackground        string `toml:"legend_background"`
	LegendHighlight         string `toml:"legend_highlight"`
	ModifiedColor           string `toml:"modified_color"`
}

type Layout struct {
	BytesPerRow int `toml:"bytes_per_row"`
	VisibleRows int `toml:"visible_rows"`
}

type Config struct {
	Layout Layout `toml:"layout"`
	Theme  Theme  `toml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Layout: Layout{
			BytesPerRow: viewport.DefaultBytesPerRow,
			VisibleRows: viewport.DefaultVisibleRows,
		},
		Theme: Theme{
			MarkerBackground:        "#0000FF",
			MarkerPendingBackground: "#FFFF00",
			LegendBackground:        "#0000FF",
			LegendHighlight:         "#FF0000",
			ModifiedColor:           "#FF0000",
		},
	}
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "unhex.toml"
	}
	return filepath.Join(home, ".config", "unhex", "unhex.toml")
}

// Load reads the config at path, or at ConfigPath when path is empty.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = ConfigPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return DefaultConfig(), err
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.Layout.BytesPerRow <= 0 {
		c.Layout.BytesPerRow = viewport.DefaultBytesPerRow
	}
	if c.Layout.VisibleRows <= 0 {
		c.Layout.VisibleRows = viewport.DefaultVisibleRows
	}
}

func (c *Config) ViewportLayout() viewport.Layout {
	return viewport.Layout{
		BytesPerRow: c.Layout.BytesPerRow,
		VisibleRows: c.Layout.VisibleRows,
	}
}

type Styles struct {
	Marker          lipgloss.Style
	MarkerPending   lipgloss.Style
	Legend          lipgloss.Style
	LegendHighlight lipgloss.Style
	Modified        lipgloss.Style
}

func NewStyles(theme *Theme) *Styles {
	return &Styles{
		Marker: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.MarkerBackground)).
			Foreground(lipgloss.Color("#FFFFFF")),
		MarkerPending: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.MarkerPendingBackground)).
			Foreground(lipgloss.Color("#000000")),
		Legend: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.LegendBackground)).
			Foreground(lipgloss.Color("#FFFFFF")),
		LegendHighlight: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.LegendBackground)).
			Foreground(lipgloss.Color(theme.LegendHighlight)).
			Bold(true),
		Modified: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ModifiedColor)),
	}
}
