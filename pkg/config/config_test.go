package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Colorize {
		t.Fatalf("expected colorize on by default")
	}
	if cfg.Sort != "name" {
		t.Fatalf("expected default sort key %q, got %q", "name", cfg.Sort)
	}
	if cfg.Paths.ConfigDir == "" {
		t.Fatalf("expected a non-empty config dir")
	}
}

func TestLoadFromReaderOverridesDefaults(t *testing.T) {
	r := strings.NewReader(`
show_hidden = true
sort = "size"
max_name_len = 30

[prompt]
regular = "> "
`)
	cfg, err := LoadFromReader(r)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.ShowHidden {
		t.Fatalf("expected show_hidden to be overridden to true")
	}
	if cfg.Sort != "size" {
		t.Fatalf("expected sort override, got %q", cfg.Sort)
	}
	if cfg.MaxNameLen != 30 {
		t.Fatalf("expected max_name_len override, got %d", cfg.MaxNameLen)
	}
	if cfg.Prompt.Regular != "> " {
		t.Fatalf("expected prompt override, got %q", cfg.Prompt.Regular)
	}
	// Fields not mentioned in the fragment keep their defaults.
	if !cfg.AutoCD {
		t.Fatalf("expected autocd to retain its default")
	}
}

func TestLoadFromFileMissingReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadFromFile(dir + "/does-not-exist.toml")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sort != DefaultConfig().Sort {
		t.Fatalf("expected default config when file is missing")
	}
}

func TestAutocmdStackApplyAndPop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShowHidden = false
	cfg.Sort = "name"

	stack := NewAutocmdStack()
	rules := []AutocmdRule{
		{
			Pattern: "*",
			Overrides: map[string]any{
				"show_hidden": true,
				"sort":        "size",
			},
		},
	}

	stack.Apply(cfg, rules)
	if !cfg.ShowHidden {
		t.Fatalf("expected show_hidden overridden to true")
	}
	if cfg.Sort != "size" {
		t.Fatalf("expected sort overridden to size, got %q", cfg.Sort)
	}

	stack.Pop(cfg)
	if cfg.ShowHidden {
		t.Fatalf("expected show_hidden restored to false")
	}
	if cfg.Sort != "name" {
		t.Fatalf("expected sort restored to name, got %q", cfg.Sort)
	}
}

func TestAutocmdStackPopWithoutApplyIsNoop(t *testing.T) {
	cfg := DefaultConfig()
	stack := NewAutocmdStack()
	stack.Pop(cfg) // should not panic
}

func TestMatchRules(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Autocmds = []AutocmdRule{
		{Pattern: "/tmp/*", Overrides: map[string]any{"sort": "size"}},
		{Pattern: "/home/*", Overrides: map[string]any{"sort": "atime"}},
	}
	matched := MatchRules(cfg, "/tmp/scratch")
	if len(matched) != 1 || matched[0].Pattern != "/tmp/*" {
		t.Fatalf("expected exactly one match for /tmp/*, got %+v", matched)
	}
}
