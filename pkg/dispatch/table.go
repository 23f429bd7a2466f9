package dispatch

// commandTable is the static name -> Command table §4.6 describes:
// the dispatcher checks each entry's arity bounds ("at least/at most
// this many argv elements", not argument shapes); the parameter-kind
// mask is recorded here but not read by the dispatcher or completion.
var commandTable = []Command{
	{
		Name: "cd", MinArgs: 1, MaxArgs: 2, Kind: ParamFilename,
		Help:    "cd [DIR] - change the current directory",
		Handler: handleCD,
	},
	{
		Name: "b", Aliases: []string{"back"}, MinArgs: 1, MaxArgs: 1, Kind: ParamNone,
		Help:    "b - move back in the directory history",
		Handler: handleBack,
	},
	{
		Name: "f", Aliases: []string{"forth"}, MinArgs: 1, MaxArgs: 1, Kind: ParamNone,
		Help:    "f - move forward in the directory history",
		Handler: handleForth,
	},
	{
		Name: "bd", MinArgs: 1, MaxArgs: 2, Kind: ParamString,
		Help:    "bd [PATTERN] - climb to an ancestor directory matching PATTERN",
		Handler: handleBD,
	},
	{
		Name: "ws", MinArgs: 1, MaxArgs: 3, Kind: ParamString,
		Help:    "ws [N|NAME|+|-] [unset] - list or switch workspaces",
		Handler: handleWS,
	},
	{
		Name: "bm", Aliases: []string{"bookmark", "bookmarks"}, MinArgs: 1, MaxArgs: -1, Kind: ParamString,
		Help:    "bm [add|del|NAME] ... - manage and jump to bookmarks",
		Handler: handleBookmark,
	},
	{
		Name: "sel", MinArgs: 1, MaxArgs: -1, Kind: ParamFilename,
		Help:    "sel SPEC... - add files to the selection box",
		Handler: handleSelect,
	},
	{
		Name: "desel", Aliases: []string{"unsel"}, MinArgs: 1, MaxArgs: -1, Kind: ParamFilename,
		Help:    "desel SPEC...|* - remove files from the selection box",
		Handler: handleDeselect,
	},
	{
		Name: "sb", Aliases: []string{"selbox"}, MinArgs: 1, MaxArgs: 1, Kind: ParamNone,
		Help:    "sb - list the current selection",
		Handler: handleSelboxList,
	},
	{
		Name: "t", Aliases: []string{"trash"}, MinArgs: 1, MaxArgs: -1, Kind: ParamFilename,
		Help:    "t SPEC... - send files to trash (external collaborator)",
		Handler: handleTrash,
	},
	{
		Name: "tag", MinArgs: 1, MaxArgs: -1, Kind: ParamString,
		Help:    "tag [add|del|list] NAME [PATH...] - manage file tags",
		Handler: handleTag,
	},
	{
		Name: "j", Aliases: []string{"jump"}, MinArgs: 1, MaxArgs: -1, Kind: ParamString,
		Help:    "j WORD... - jump to the highest-ranked matching directory",
		Handler: handleJump,
	},
	{
		Name: "jl", MinArgs: 1, MaxArgs: 1, Kind: ParamNone,
		Help:    "jl - list the jump database by rank",
		Handler: handleJumpList,
	},
	{
		Name: "jc", MinArgs: 1, MaxArgs: 1, Kind: ParamNone,
		Help:    "jc - list jump database entries that are children of CWD",
		Handler: handleJumpChildren,
	},
	{
		Name: "jp", MinArgs: 1, MaxArgs: 1, Kind: ParamNone,
		Help:    "jp - jump to CWD's tracked parent entry",
		Handler: handleJumpParent,
	},
	{
		Name: "mm", Aliases: []string{"mime"}, MinArgs: 1, MaxArgs: -1, Kind: ParamString,
		Help:    "mm ... - edit MIME associations (external collaborator)",
		Handler: handleMime,
	},
	{
		Name: "st", Aliases: []string{"sort"}, MinArgs: 1, MaxArgs: 3, Kind: ParamString,
		Help:    "st [KEY] [rev] - report or set the active sort key",
		Handler: handleSort,
	},
	{
		Name: "ff", Aliases: []string{"dirs-first"}, MinArgs: 1, MaxArgs: 2, Kind: ParamString,
		Help:    "ff [on|off] - toggle directories-first listing",
		Handler: handleDirsFirst,
	},
	{
		Name: "hf", Aliases: []string{"hidden"}, MinArgs: 1, MaxArgs: 2, Kind: ParamString,
		Help:    "hf [on|off] - toggle showing hidden files",
		Handler: handleHidden,
	},
	{
		Name: "ft", Aliases: []string{"filter"}, MinArgs: 1, MaxArgs: 2, Kind: ParamString,
		Help:    "ft [SPEC] - set (or clear) the active listing filter",
		Handler: handleFilter,
	},
	{
		Name: "lv", Aliases: []string{"long"}, MinArgs: 1, MaxArgs: 2, Kind: ParamString,
		Help:    "lv [on|off] - toggle the long (detailed) view",
		Handler: handleLong,
	},
	{
		Name: "pg", Aliases: []string{"pager"}, MinArgs: 1, MaxArgs: 2, Kind: ParamString,
		Help:    "pg [on|off] - toggle the listing pager",
		Handler: handlePager,
	},
	{
		Name: "mf", MinArgs: 1, MaxArgs: 2, Kind: ParamNumber,
		Help:    "mf [N] - report or set the max number of files listed",
		Handler: handleMaxFiles,
	},
	{
		Name: "ll", MinArgs: 1, MaxArgs: 2, Kind: ParamString,
		Help:    "ll [on|off] - toggle light mode (skip per-entry stat(2))",
		Handler: handleLightMode,
	},
	{
		Name: "pf", Aliases: []string{"prof", "profile"}, MinArgs: 1, MaxArgs: -1, Kind: ParamString,
		Help:    "pf ... - manage profiles (external collaborator)",
		Handler: handleProfile,
	},
	{
		Name: "cs", Aliases: []string{"colorscheme"}, MinArgs: 1, MaxArgs: 2, Kind: ParamString,
		Help:    "cs [NAME] - report or set the active color scheme",
		Handler: handleColorscheme,
	},
	{
		Name: "prompt", MinArgs: 1, MaxArgs: 2, Kind: ParamString,
		Help:    "prompt [NAME] - report or switch the active prompt template",
		Handler: handlePrompt,
	},
	{
		Name: "kb", Aliases: []string{"keybinds"}, MinArgs: 1, MaxArgs: -1, Kind: ParamString,
		Help:    "kb ... - edit keybindings (external collaborator)",
		Handler: handleKeybinds,
	},
	{
		Name: "hist", Aliases: []string{"history"}, MinArgs: 1, MaxArgs: 1, Kind: ParamNone,
		Help:    "hist - list recorded command history",
		Handler: handleHist,
	},
	{
		Name: "log", MinArgs: 1, MaxArgs: -1, Kind: ParamString,
		Help:    "log ... - view logs (external collaborator)",
		Handler: handleLog,
	},
	{
		Name: "p", Aliases: []string{"prop"}, MinArgs: 2, MaxArgs: 2, Kind: ParamFilename,
		Help:    "p ELN|NAME - print an entry's stat(2) properties",
		Handler: handleProp,
	},
	{
		Name: "view", MinArgs: 1, MaxArgs: 1, Kind: ParamNone,
		Help:    "view - set the long_view option and relist the current directory",
		Handler: handleView,
	},
	{
		Name: "open", Aliases: []string{"o"}, MinArgs: 2, MaxArgs: 2, Kind: ParamFilename,
		Help:    "open ELN|NAME - open an entry with its associated opener",
		Handler: handleOpen,
	},
	{
		Name: "path", Aliases: []string{"cwd"}, MinArgs: 1, MaxArgs: 1, Kind: ParamNone,
		Help:    "path - print the current working directory",
		Handler: handlePath,
	},
	{
		Name: "refresh", Aliases: []string{"rf", "rl"}, MinArgs: 1, MaxArgs: 1, Kind: ParamNone,
		Help:    "refresh - force a relist of the current directory",
		Handler: handleRefresh,
	},
	{
		Name: "splash", MinArgs: 1, MaxArgs: 2, Kind: ParamString,
		Help:    "splash [on|off] - toggle the startup splash screen",
		Handler: handleSplash,
	},
	{
		Name: "stats", MinArgs: 1, MaxArgs: 1, Kind: ParamNone,
		Help:    "stats - print per-kind counts for the current listing",
		Handler: handleStats,
	},
	{
		Name: "q", Aliases: []string{"quit", "exit"}, MinArgs: 1, MaxArgs: 1, Kind: ParamNone,
		Help:    "q - quit",
		Handler: handleQuit,
	},
	{
		Name: "ac", MinArgs: 1, MaxArgs: -1, Kind: ParamFilename,
		Help:    "ac SPEC... - compress into an archive (external collaborator)",
		Handler: handleArchive,
	},
	{
		Name: "ad", MinArgs: 1, MaxArgs: -1, Kind: ParamFilename,
		Help:    "ad SPEC... - extract an archive (external collaborator)",
		Handler: handleDearchive,
	},
	{
		Name: "mp", MinArgs: 1, MaxArgs: -1, Kind: ParamString,
		Help:    "mp ... - list/manage mountpoints (external collaborator)",
		Handler: handleMountpoints,
	},
	{
		Name: "actions", MinArgs: 1, MaxArgs: -1, Kind: ParamString,
		Help:    "actions ... - run a plugin action (external collaborator)",
		Handler: handleActions,
	},
	{
		Name: "icons", MinArgs: 1, MaxArgs: 2, Kind: ParamString,
		Help:    "icons [on|off] - toggle icon rendering (external collaborator)",
		Handler: handleIcons,
	},
}
