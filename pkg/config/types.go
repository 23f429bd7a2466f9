package config

// Config is the flat struct of booleans, small integers, and owned
// strings described by spec.md §3. It is loaded once at startup and
// mutated in place by internal commands (`hf`, `ft`, `st`, `lv`, `pg`,
// …); Autocmd overrides are stashed/restored on top of it as CWD
// changes.
type Config struct {
	AutoLS             bool     `toml:"autols"`
	AutoCD             bool     `toml:"autocd"`
	AutoOpen           bool     `toml:"auto_open"`
	CaseSensPathComp   bool     `toml:"case_sens_path_comp"`
	CaseSensDirJump    bool     `toml:"case_sens_dirjump"`
	ClearScreen        bool     `toml:"clear_screen"`
	Colorize           bool     `toml:"colorize"`
	FilesCounter       bool     `toml:"files_counter"`
	FuzzyMatch         bool     `toml:"fuzzy_match"`
	LightMode          bool     `toml:"light_mode"`
	ListDirsFirst      bool     `toml:"list_dirs_first"`
	LongView           bool     `toml:"long_view"`
	MaxNameLen         int      `toml:"max_name_len"`
	MaxFiles           int      `toml:"max_files"`
	MaxPath            int      `toml:"max_path"`
	MaxDirhist         int      `toml:"max_dirhist"`
	Pager              bool     `toml:"pager"`
	ShowHidden         bool     `toml:"show_hidden"`
	Sort               string   `toml:"sort"`
	SortReverse        bool     `toml:"sort_reverse"`
	SplashScreen       bool     `toml:"splash_screen"`
	SuggestionsEnabled bool     `toml:"suggestions_enabled"`
	Tips               bool     `toml:"tips"`
	WarningPrompt      bool     `toml:"warning_prompt"`
	WelcomeMessage     bool     `toml:"welcome_message"`
	Unicode            bool     `toml:"unicode"`
	Classify           bool     `toml:"classify"`
	TrimNames          bool     `toml:"trim_names"`
	ShareSelbox        bool     `toml:"share_selbox"`
	PrivateWSSettings  bool     `toml:"private_ws_settings"`
	CDPath             []string `toml:"cdpath"`
	ColorScheme        string   `toml:"colorscheme"`
	RestoreLastPath    bool     `toml:"restore_last_path"`
	CWDInTitle         bool     `toml:"cwd_in_title"`
	RefreshOnResize    bool     `toml:"refresh_on_resize"`
	EnableLogs         bool     `toml:"enable_logs"`
	History            bool     `toml:"history"`

	// PollInterval throttles the poll-based watcher fallback (§4.10),
	// used when the OS inotify/kqueue backend is unavailable.
	PollInterval Duration `toml:"poll_interval"`

	Aliases map[string]string `toml:"aliases"`
	Prompt  PromptConfig      `toml:"prompt"`
	Paths   PathsConfig       `toml:"paths"`

	// Autocmds are glob -> override rules, matched by MatchRules and
	// applied/restored through AutocmdStack (§9 "Supplemented features").
	// No code outside the tests calls MatchRules or Apply, so changing
	// directory applies no rule.
	Autocmds []AutocmdRule `toml:"autocmd"`
}

// PromptConfig names the regular and warning prompt templates (§4.9, §6
// "Prompts file").
type PromptConfig struct {
	Regular string `toml:"regular"`
	Warning string `toml:"warning"`
}

// PathsConfig collects the on-disk locations of the persisted state
// files named in §6. Derived from ConfigDir, not user-settable in the
// TOML file directly.
type PathsConfig struct {
	ConfigDir      string `toml:"-"`
	BookmarksFile  string `toml:"-"`
	JumpDBFile     string `toml:"-"`
	HistoryFile    string `toml:"-"`
	DirhistFile    string `toml:"-"`
	SelboxFile     string `toml:"-"`
	TagsDir        string `toml:"-"`
	ColorSchemeDir string `toml:"-"`
}

// AutocmdRule is one {pattern, overrides} entry of §3's Autocmd entity.
// Overrides is decoded as a generic map so only the named Config fields
// present in the TOML fragment are touched when the rule is applied.
type AutocmdRule struct {
	Pattern   string         `toml:"pattern"`
	Overrides map[string]any `toml:"overrides"`
}
