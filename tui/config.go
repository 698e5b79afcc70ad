package tui

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

// Config is the user-tunable editor configuration, read from
// $XDG_CONFIG_HOME/mote/config.toml. A missing file yields the defaults; a
// malformed file also falls back to the defaults and reports the parse
// error, never a startup failure.
type Config struct {
	// QuitTimes is how many times Ctrl+Q must be pressed to discard
	// unsaved changes.
	QuitTimes int `toml:"quit_times"`

	Colors ColorConfig `toml:"colors"`
}

// ColorConfig overrides individual theme colors. Empty fields keep the
// default.
type ColorConfig struct {
	Match         string `toml:"match"`
	SelectedMatch string `toml:"selected_match"`
	Selection     string `toml:"selection"`
	StatusBar     string `toml:"status_bar"`
}

func DefaultConfig() Config {
	return Config{QuitTimes: 3}
}

// LoadConfig reads the configuration file, falling back to defaults. The
// returned error is informational; the Config is always usable.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	dir, err := os.UserConfigDir()
	if err != nil {
		return cfg, nil
	}
	data, err := os.ReadFile(filepath.Join(dir, "mote", "config.toml"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	if cfg.QuitTimes < 1 {
		cfg.QuitTimes = 1
	}
	return cfg, nil
}

// Theme applies the configured color overrides to the default theme.
func (c Config) Theme() Theme {
	theme := DefaultTheme
	if c.Colors.Match != "" {
		theme.MatchStyle = theme.MatchStyle.Background(lipgloss.Color(c.Colors.Match))
	}
	if c.Colors.SelectedMatch != "" {
		theme.SelectedMatchStyle = theme.SelectedMatchStyle.Background(lipgloss.Color(c.Colors.SelectedMatch))
	}
	if c.Colors.Selection != "" {
		theme.SelectionStyle = theme.SelectionStyle.Background(lipgloss.Color(c.Colors.Selection))
	}
	if c.Colors.StatusBar != "" {
		theme.StatusBarStyle = theme.StatusBarStyle.Background(lipgloss.Color(c.Colors.StatusBar))
	}
	return theme
}
