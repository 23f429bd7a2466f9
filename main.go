// shelf is an interactive, text-only terminal file manager: a prompt
// loop over the current directory with navigation history, a jump
// database, a selection box, bookmarks, tags, and external-command
// fallback.
//
// Usage:
//
//	shelf [flags] [start-dir]
//
// Flags:
//
//	-A, --show-hidden           Show hidden files
//	-a, --no-hidden             Hide hidden files
//	-e, --eln-off               Disable entry list numbers
//	-f, --no-dirs-first         Don't list directories first
//	-F, --dirs-first            List directories first
//	-g, --pager                 Enable the pager for long listings
//	-G, --no-pager              Disable the pager
//	-h, --help                  Print usage and exit
//	-l, --no-long               Disable long/detail view
//	-L, --long                  Enable long/detail view
//	-o, --autocd                Enable autocd (bare directory name changes CWD)
//	-O, --no-autocd             Disable autocd
//	-p, --path string           Start directory
//	-P, --profile string        Named profile (selects an alternate config dir)
//	-r, --no-refresh-on-resize  Don't relist on SIGWINCH
//	-s, --no-splash             Suppress the splash screen
//	-S, --stealth-mode          No disk persistence (bookmarks, history, jumpdb, dirhist, selbox)
//	-t, --disk-usage-analyzer   (unimplemented: a full-screen panel mode is out of scope)
//	-U, --no-unicode            Disable unicode box-drawing/icons
//	-v, --version               Print version and exit
//	-w, --workspace int         Start on workspace N (1-8)
//	-x, --no-ext-cmds           Disable the external-command fallback
//	-y, --light-mode            Skip per-entry stat(2) calls (faster, less detail)
//	--case-sens-dirjump         Case-sensitive `j` jump matching
//	--case-sens-path-comp       Case-sensitive path/command completion and sorting
//	--fuzzy-match               Fuzzy (subsequence) completion instead of prefix matching
//	--list-and-quit             Print the startup listing and exit without prompting
//	--max-dirhist int           Cap the back/forth directory history ring
//	--max-files int             Cap the number of entries listed per directory
//	--max-path int              Truncate the prompt's \w path expansion to N columns
//	--no-files-counter          Don't show per-directory file/dir counts
//	--no-history                Disable command history recall and persistence
//	--no-suggestions            Disable inline completion suggestions
//	--only-dirs                 List only directories
//	--print-sel                 Print the selection box contents on quit
//	--sel-file string           Use an alternate selection box file
//	--share-selbox              Share one selection box across workspaces (the default layout)
//	--sort string               Sort key: a name (see `st`) or its numeric index
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/tinyland/shelf/pkg/app"
	"github.com/tinyland/shelf/pkg/config"
	"github.com/tinyland/shelf/pkg/listing"
	"github.com/tinyland/shelf/pkg/nav"
	"github.com/tinyland/shelf/pkg/shelferr"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	var (
		showHidden    = flag.Bool("A", false, "show hidden files")
		showHiddenL   = flag.Bool("show-hidden", false, "show hidden files")
		noHidden      = flag.Bool("a", false, "hide hidden files")
		noHiddenL     = flag.Bool("no-hidden", false, "hide hidden files")
		elnOff        = flag.Bool("e", false, "disable entry list numbers")
		elnOffL       = flag.Bool("eln-off", false, "disable entry list numbers")
		noDirsFirst   = flag.Bool("f", false, "don't list directories first")
		noDirsFirstL  = flag.Bool("no-dirs-first", false, "don't list directories first")
		dirsFirst     = flag.Bool("F", false, "list directories first")
		dirsFirstL    = flag.Bool("dirs-first", false, "list directories first")
		pager         = flag.Bool("g", false, "enable the pager")
		pagerL        = flag.Bool("pager", false, "enable the pager")
		noPager       = flag.Bool("G", false, "disable the pager")
		noPagerL      = flag.Bool("no-pager", false, "disable the pager")
		noLong        = flag.Bool("l", false, "disable long view")
		noLongL       = flag.Bool("no-long", false, "disable long view")
		long          = flag.Bool("L", false, "enable long view")
		longL         = flag.Bool("long", false, "enable long view")
		autocd        = flag.Bool("o", false, "enable autocd")
		autocdL       = flag.Bool("autocd", false, "enable autocd")
		noAutocd      = flag.Bool("O", false, "disable autocd")
		noAutocdL     = flag.Bool("no-autocd", false, "disable autocd")
		startPath     = flag.String("p", "", "start directory")
		startPathL    = flag.String("path", "", "start directory")
		profile       = flag.String("P", "", "named profile")
		profileL      = flag.String("profile", "", "named profile")
		noResize      = flag.Bool("r", false, "don't relist on terminal resize")
		noResizeL     = flag.Bool("no-refresh-on-resize", false, "don't relist on terminal resize")
		noSplash      = flag.Bool("s", false, "suppress the splash screen")
		noSplashL     = flag.Bool("no-splash", false, "suppress the splash screen")
		stealth       = flag.Bool("S", false, "no disk persistence")
		stealthL      = flag.Bool("stealth-mode", false, "no disk persistence")
		noUnicode     = flag.Bool("U", false, "disable unicode box-drawing/icons")
		noUnicodeL    = flag.Bool("no-unicode", false, "disable unicode box-drawing/icons")
		showVersion   = flag.Bool("v", false, "print version and exit")
		showVersionL  = flag.Bool("version", false, "print version and exit")
		noExtCmds     = flag.Bool("x", false, "disable the external-command fallback")
		noExtCmdsL    = flag.Bool("no-ext-cmds", false, "disable the external-command fallback")
		lightMode     = flag.Bool("y", false, "skip per-entry stat(2) calls")
		lightModeL    = flag.Bool("light-mode", false, "skip per-entry stat(2) calls")
		help          = flag.Bool("h", false, "print usage and exit")
		helpL         = flag.Bool("help", false, "print usage and exit")
		workspace     = flag.Int("w", 0, "start on workspace N (1-8)")
		workspaceL    = flag.Int("workspace", 0, "start on workspace N (1-8)")
		diskUsage     = flag.Bool("t", false, "disk usage analyzer (unimplemented)")
		diskUsageL    = flag.Bool("disk-usage-analyzer", false, "disk usage analyzer (unimplemented)")
		maxFiles      = flag.Int("max-files", 0, "cap the number of entries listed per directory")
		maxDirhist    = flag.Int("max-dirhist", 0, "cap the back/forth directory history ring")
		maxPath       = flag.Int("max-path", 0, "truncate the prompt's path expansion to N columns")
		sortKey       = flag.String("sort", "", "sort key: a name or its numeric index")
		onlyDirs      = flag.Bool("only-dirs", false, "list only directories")
		noSuggestions = flag.Bool("no-suggestions", false, "disable inline completion suggestions")
		noHistory     = flag.Bool("no-history", false, "disable command history recall and persistence")
		noFilesCount  = flag.Bool("no-files-counter", false, "don't show per-directory file/dir counts")
		selFile       = flag.String("sel-file", "", "use an alternate selection box file")
		shareSelbox   = flag.Bool("share-selbox", false, "share one selection box across workspaces")
		printSel      = flag.Bool("print-sel", false, "print the selection box contents on quit")
		listAndQuit   = flag.Bool("list-and-quit", false, "print the startup listing and exit")
		caseSensPath  = flag.Bool("case-sens-path-comp", false, "case-sensitive path completion and sorting")
		caseSensJump  = flag.Bool("case-sens-dirjump", false, "case-sensitive jump matching")
		fuzzyMatch    = flag.Bool("fuzzy-match", false, "fuzzy completion instead of prefix matching")
	)
	flag.Parse()

	if *showVersion || *showVersionL {
		fmt.Printf("shelf %s (%s)\n", version, commit)
		os.Exit(0)
	}
	if *help || *helpL {
		flag.Usage()
		os.Exit(0)
	}
	if *diskUsage || *diskUsageL {
		err := shelferr.New(shelferr.KindUnimplemented, "disk-usage-analyzer", "a full-screen panel mode is an external collaborator, not part of this build")
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlagOverrides(cfg, flagOverrides{
		showHidden:    *showHidden || *showHiddenL,
		noHidden:      *noHidden || *noHiddenL,
		noDirsFirst:   *noDirsFirst || *noDirsFirstL,
		dirsFirst:     *dirsFirst || *dirsFirstL,
		pager:         *pager || *pagerL,
		noPager:       *noPager || *noPagerL,
		noLong:        *noLong || *noLongL,
		long:          *long || *longL,
		autocd:        *autocd || *autocdL,
		noAutocd:      *noAutocd || *noAutocdL,
		noResize:      *noResize || *noResizeL,
		noSplash:      *noSplash || *noSplashL,
		noUnicode:     *noUnicode || *noUnicodeL,
		lightMode:     *lightMode || *lightModeL,
		noSuggestions: *noSuggestions,
		noHistory:     *noHistory,
		noFilesCount:  *noFilesCount,
		shareSelbox:   *shareSelbox,
		caseSensPath:  *caseSensPath,
		caseSensJump:  *caseSensJump,
		fuzzyMatch:    *fuzzyMatch,
	})

	if *maxFiles > 0 {
		cfg.MaxFiles = *maxFiles
	}
	if *maxDirhist > 0 {
		cfg.MaxDirhist = *maxDirhist
	}
	if *maxPath > 0 {
		cfg.MaxPath = *maxPath
	}
	if *sortKey != "" {
		cfg.Sort = resolveSortKey(*sortKey)
	}
	if *selFile != "" {
		cfg.Paths.SelboxFile = *selFile
	}

	if p := firstNonEmpty(*profile, *profileL); p != "" {
		cfg.Paths = profilePaths(cfg.Paths.ConfigDir, p)
		os.Setenv("CLIFM_PROFILE", p)
	}

	stealthMode := *stealth || *stealthL
	startDir := firstNonEmpty(*startPath, *startPathL)
	if startDir == "" {
		startDir, err = os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to resolve working directory: %v\n", err)
			os.Exit(1)
		}
	}
	if abs, err := filepath.Abs(startDir); err == nil {
		startDir = abs
	}

	if !stealthMode {
		if err := os.MkdirAll(cfg.Paths.ConfigDir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create config dir: %v\n", err)
			os.Exit(1)
		}
	}

	logger, logFile := setupLogger(cfg, stealthMode)
	if logFile != nil {
		defer logFile.Close()
	}

	setEnv(startDir)

	ctx, err := app.New(cfg, startDir, stealthMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	ctx.DisableExtCmds = *noExtCmds || *noExtCmdsL
	ctx.ELNOff = *elnOff || *elnOffL
	ctx.ListAndQuit = *listAndQuit
	ctx.PrintSelOnQuit = *printSel

	if w := firstPositive(*workspace, *workspaceL); w > 0 {
		if _, err := ctx.Runtime.Workspaces.Switch(w-1, nav.PerWSOpts{}); err != nil {
			fmt.Fprintf(os.Stderr, "invalid workspace %d: %v\n", w, err)
			os.Exit(2)
		}
	}
	if *onlyDirs {
		ctx.Runtime.ListOpts.Filter = listing.FilterSpec{Kind: listing.FilterFileType, Pattern: "d"}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("received shutdown signal")
		_ = ctx.Shutdown()
		os.Exit(0)
	}()

	if err := app.Run(ctx, logger); err != nil {
		logger.Error("run failed", "error", err)
		_ = ctx.Shutdown()
		os.Exit(1)
	}

	if ctx.PrintSelOnQuit {
		for _, p := range ctx.Runtime.Selection.List() {
			fmt.Println(p)
		}
	}

	if err := ctx.Shutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to persist state: %v\n", err)
		os.Exit(1)
	}
}

// firstPositive returns the first positive value among vals, or 0.
func firstPositive(vals ...int) int {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}

// sortKeyByIndex maps --sort's numeric form to a listing.SortKey, in the
// order listing.SortKey's constants are declared; an implementer-chosen
// mapping, since no sort index scheme is specified (spec.md §9 permits
// this the same way it permits an implementer-chosen frecency formula).
var sortKeyByIndex = []string{
	"none", "name", "size", "blocks", "atime", "btime", "ctime",
	"mtime", "version", "extension", "inode", "owner", "group",
	"links", "type",
}

// resolveSortKey accepts either a sort key name or its numeric index
// (§6 "--sort N|NAME"), returning the name form types.Config.Sort holds.
func resolveSortKey(s string) string {
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 0 && n < len(sortKeyByIndex) {
			return sortKeyByIndex[n]
		}
		return s
	}
	return s
}

// flagOverrides collects the boolean CLI flags that override whatever
// config.Load() produced, per §6's flag-over-config precedence.
type flagOverrides struct {
	showHidden, noHidden   bool
	noDirsFirst, dirsFirst bool
	pager, noPager         bool
	noLong, long           bool
	autocd, noAutocd       bool
	noResize               bool
	noSplash               bool
	noUnicode              bool
	lightMode              bool
	noSuggestions          bool
	noHistory              bool
	noFilesCount           bool
	shareSelbox            bool
	caseSensPath           bool
	caseSensJump           bool
	fuzzyMatch             bool
}

func applyFlagOverrides(cfg *config.Config, o flagOverrides) {
	if o.showHidden {
		cfg.ShowHidden = true
	}
	if o.noHidden {
		cfg.ShowHidden = false
	}
	if o.dirsFirst {
		cfg.ListDirsFirst = true
	}
	if o.noDirsFirst {
		cfg.ListDirsFirst = false
	}
	if o.pager {
		cfg.Pager = true
	}
	if o.noPager {
		cfg.Pager = false
	}
	if o.long {
		cfg.LongView = true
	}
	if o.noLong {
		cfg.LongView = false
	}
	if o.autocd {
		cfg.AutoCD = true
	}
	if o.noAutocd {
		cfg.AutoCD = false
	}
	if o.noResize {
		cfg.RefreshOnResize = false
	}
	if o.noSplash {
		cfg.SplashScreen = false
	}
	if o.noUnicode {
		cfg.Unicode = false
	}
	if o.lightMode {
		cfg.LightMode = true
	}
	if o.noSuggestions {
		cfg.SuggestionsEnabled = false
	}
	if o.noHistory {
		cfg.History = false
	}
	if o.noFilesCount {
		cfg.FilesCounter = false
	}
	if o.shareSelbox {
		cfg.ShareSelbox = true
	}
	if o.caseSensPath {
		cfg.CaseSensPathComp = true
	}
	if o.caseSensJump {
		cfg.CaseSensDirJump = true
	}
	if o.fuzzyMatch {
		cfg.FuzzyMatch = true
	}
}

func profilePaths(baseConfigDir, profile string) config.PathsConfig {
	dir := filepath.Join(filepath.Dir(baseConfigDir), "shelf-"+profile)
	return config.PathsConfig{
		ConfigDir:      dir,
		BookmarksFile:  filepath.Join(dir, "bookmarks"),
		JumpDBFile:     filepath.Join(dir, "jump.db"),
		HistoryFile:    filepath.Join(dir, "history"),
		DirhistFile:    filepath.Join(dir, "dirhist"),
		SelboxFile:     filepath.Join(dir, "selbox"),
		TagsDir:        filepath.Join(dir, "tags"),
		ColorSchemeDir: filepath.Join(dir, "colors"),
	}
}

// setupLogger builds the slog logger writing to stderr and, when
// enable_logs is set and stealth mode is off, also to a log file under
// the config directory (§6 "Log file") at Info level. Otherwise logging
// is stderr-only, so nothing touches disk.
func setupLogger(cfg *config.Config, stealth bool) (*slog.Logger, *os.File) {
	if stealth || !cfg.EnableLogs {
		return slog.New(slog.NewTextHandler(os.Stderr, nil)), nil
	}

	logPath := filepath.Join(cfg.Paths.ConfigDir, "shelf.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(slog.NewTextHandler(os.Stderr, nil)), nil
	}
	w := io.MultiWriter(os.Stderr, f)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})), f
}

// setEnv exports the CLIFM_* environment variables §6 says a running
// instance sets for the processes it spawns.
func setEnv(startDir string) {
	os.Setenv("CLIFM", "1")
	os.Setenv("CLIFM_PID", fmt.Sprintf("%d", os.Getpid()))
	os.Setenv("CLIFM_VERSION", version)
	os.Setenv("CLIFM_VIRTUAL_DIR", startDir)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
