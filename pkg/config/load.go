package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/shelf/config.toml
//  2. ~/.config/shelf/config.toml
//
// If no file exists, returns DefaultConfig().
func Load() (*Config, error) {
	paths := configSearchPaths()
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()
	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, err
	}
	if cfg.Paths.ConfigDir == "" {
		cfg.Paths = pathsFor(filepath.Dir(path))
	}
	return cfg, nil
}

// LoadFromReader reads configuration from an io.Reader.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultConfig returns the default configuration with sensible defaults,
// matching the built-in defaults spec.md §3 lists for the Config entity.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	confDir := filepath.Join(xdgConfigHome(home), "shelf")

	return &Config{
		AutoLS:             true,
		AutoCD:             true,
		AutoOpen:           true,
		CaseSensPathComp:   false,
		CaseSensDirJump:    false,
		ClearScreen:        true,
		Colorize:           true,
		FilesCounter:       true,
		FuzzyMatch:         true,
		LightMode:          false,
		ListDirsFirst:      true,
		LongView:           false,
		MaxNameLen:         20,
		MaxFiles:           0,
		MaxPath:            40,
		MaxDirhist:         100,
		Pager:              false,
		ShowHidden:         false,
		Sort:               "name",
		SortReverse:        false,
		SplashScreen:       false,
		SuggestionsEnabled: true,
		Tips:               true,
		WarningPrompt:      true,
		WelcomeMessage:     true,
		Unicode:            true,
		Classify:           true,
		TrimNames:          false,
		ShareSelbox:        false,
		PrivateWSSettings:  false,
		ColorScheme:        "default",
		RestoreLastPath:    true,
		CWDInTitle:         false,
		RefreshOnResize:    true,
		EnableLogs:         false,
		History:            true,
		PollInterval:       Duration{2 * time.Second},
		Aliases:            map[string]string{},
		Prompt: PromptConfig{
			Regular: `\u@\H \[\e[36m\]\w\[\e[0m\] \$ `,
			Warning: `\u@\H \[\e[31m\]\w\[\e[0m\] !> `,
		},
		Paths: pathsFor(confDir),
	}
}

// pathsFor derives the full PathsConfig from a config directory, matching
// the layout §6 describes under XDG_CONFIG_HOME/shelf.
func pathsFor(confDir string) PathsConfig {
	return PathsConfig{
		ConfigDir:      confDir,
		BookmarksFile:  filepath.Join(confDir, "bookmarks"),
		JumpDBFile:     filepath.Join(confDir, "jump.db"),
		HistoryFile:    filepath.Join(confDir, "history"),
		DirhistFile:    filepath.Join(confDir, "dirhist"),
		SelboxFile:     filepath.Join(confDir, "selbox"),
		TagsDir:        filepath.Join(confDir, "tags"),
		ColorSchemeDir: filepath.Join(confDir, "colors"),
	}
}

// applyEnvOverrides checks environment variables and overrides config
// values, mirroring the source's CLIFM_* environment handling.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SHELF_COLORSCHEME"); v != "" {
		cfg.ColorScheme = v
	}
	if v := os.Getenv("SHELF_NO_COLOR"); v != "" {
		cfg.Colorize = false
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.Colorize = false
	}
	if v := os.Getenv("SHELF_SHOW_HIDDEN"); v != "" {
		cfg.ShowHidden = true
	}
	if v := os.Getenv("SHELF_CONFIG_DIR"); v != "" {
		cfg.Paths = pathsFor(v)
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, "shelf", "config.toml"))

	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, "shelf", "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

// xdgCacheHome returns XDG_CACHE_HOME or ~/.cache as fallback.
func xdgCacheHome(home string) string {
	if v := os.Getenv("XDG_CACHE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".cache")
}
