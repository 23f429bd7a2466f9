package dispatch

import (
	"sort"
	"strings"

	"github.com/tinyland/shelf/pkg/shelferr"
)

// Dispatcher holds the static command table and resolves argv[0] to a
// Command, accepting exact names, declared aliases, and unambiguous
// prefixes of either.
type Dispatcher struct {
	byName map[string]*Command
	names  []string // sorted, for prefix scans
}

// NewDispatcher builds a Dispatcher from the static table in table.go.
func NewDispatcher() *Dispatcher {
	d := &Dispatcher{byName: make(map[string]*Command)}
	for i := range commandTable {
		cmd := &commandTable[i]
		d.byName[cmd.Name] = cmd
		for _, alias := range cmd.Aliases {
			d.byName[alias] = cmd
		}
	}
	for name := range d.byName {
		d.names = append(d.names, name)
	}
	sort.Strings(d.names)
	return d
}

// Names returns every registered command name and alias, sorted, for
// the completion engine's "command" context (§4.8).
func (d *Dispatcher) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Lookup resolves name to a Command via exact match, then (if
// unambiguous) prefix match.
func (d *Dispatcher) Lookup(name string) (*Command, bool) {
	if cmd, ok := d.byName[name]; ok {
		return cmd, true
	}
	var match *Command
	count := 0
	for _, n := range d.names {
		if strings.HasPrefix(n, name) {
			count++
			match = d.byName[n]
		}
	}
	if count == 1 {
		return match, true
	}
	return nil, false
}

// Dispatch implements §4.6's three steps: lookup, --help shortcut, run.
// On a miss it returns (Result{}, false, nil) so the caller falls through to the
// external-command path of §4.7.
func (d *Dispatcher) Dispatch(rt *Runtime, argv []string) (Result, bool, error) {
	if len(argv) == 0 {
		return Result{}, true, nil
	}
	cmd, found := d.Lookup(argv[0])
	if !found {
		return Result{}, false, nil
	}

	for _, a := range argv[1:] {
		if a == "--help" || a == "-h" {
			return okHelp(cmd)
		}
	}

	if len(argv) < cmd.MinArgs || (cmd.MaxArgs >= 0 && len(argv) > cmd.MaxArgs) {
		return Result{Code: ExitMisuse}, true, shelferr.New(shelferr.KindUsage, cmd.Name, "wrong number of arguments")
	}

	res, err := cmd.Handler(rt, argv)
	return res, true, err
}

func okHelp(cmd *Command) (Result, bool, error) {
	return Result{Code: ExitOK, Output: cmd.Help}, true, nil
}
