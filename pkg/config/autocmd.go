package config

import (
	"path/filepath"
	"reflect"
)

// snapshot is a saved {field name -> prior value} map pushed onto the
// AutocmdStack when a rule's overrides are applied, so the exact prior
// values (not just "defaults") can be restored on leaving the matching
// directory. Grounded on original_source/'s autocmd handling, which the
// distilled spec dropped (§9 "Supplemented features").
type snapshot map[string]any

// AutocmdStack tracks the nested stack of snapshots pushed by Apply and
// removed by Pop. pkg/app.Ctx holds a single stack shared by every
// workspace. Outside the tests only Active is called (for the prompt's
// indicator); nothing calls Apply or Pop on cd, so the stack stays empty
// at run time.
type AutocmdStack struct {
	frames []snapshot
}

// NewAutocmdStack returns an empty stack.
func NewAutocmdStack() *AutocmdStack {
	return &AutocmdStack{}
}

// MatchRules returns every rule in cfg.Autocmds whose glob Pattern matches
// dir, in declared order. Later rules override earlier ones field by
// field when Apply is called.
func MatchRules(cfg *Config, dir string) []AutocmdRule {
	var matched []AutocmdRule
	for _, r := range cfg.Autocmds {
		ok, err := filepath.Match(r.Pattern, dir)
		if err == nil && ok {
			matched = append(matched, r)
		}
	}
	return matched
}

// Apply overlays each rule's Overrides onto cfg, pushing a snapshot of
// the fields it is about to change so Pop can restore them exactly.
// Unknown field names in Overrides are ignored.
func (s *AutocmdStack) Apply(cfg *Config, rules []AutocmdRule) {
	if len(rules) == 0 {
		s.frames = append(s.frames, nil)
		return
	}
	snap := snapshot{}
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()
	for _, rule := range rules {
		for name, newVal := range rule.Overrides {
			fv, ft, ok := fieldByTOMLName(v, t, name)
			if !ok {
				continue
			}
			if _, stashed := snap[name]; !stashed {
				snap[name] = fv.Interface()
			}
			setField(fv, ft, newVal)
		}
	}
	s.frames = append(s.frames, snap)
}

// Active reports whether the current (innermost) frame actually stashed
// any overrides, for the prompt's `\@` "autocmd set" indicator (§4.9).
func (s *AutocmdStack) Active() bool {
	if len(s.frames) == 0 {
		return false
	}
	return len(s.frames[len(s.frames)-1]) > 0
}

// Pop restores the fields changed by the most recent Apply call. It is a
// no-op if the stack is empty, which can happen if Pop is called without
// a matching Apply (a dispatcher bug, not a user-facing error).
func (s *AutocmdStack) Pop(cfg *Config) {
	n := len(s.frames)
	if n == 0 {
		return
	}
	snap := s.frames[n-1]
	s.frames = s.frames[:n-1]
	if snap == nil {
		return
	}
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()
	for name, prior := range snap {
		fv, ft, ok := fieldByTOMLName(v, t, name)
		if !ok {
			continue
		}
		setField(fv, ft, prior)
	}
}

func fieldByTOMLName(v reflect.Value, t reflect.Type, name string) (reflect.Value, reflect.StructField, bool) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("toml")
		if tag == name {
			return v.Field(i), f, true
		}
	}
	return reflect.Value{}, reflect.StructField{}, false
}

// setField assigns newVal to fv when the dynamic type matches the field's
// kind; mismatches are ignored rather than panicking, since Overrides
// comes from user-edited TOML.
func setField(fv reflect.Value, ft reflect.StructField, newVal any) {
	if !fv.CanSet() {
		return
	}
	rv := reflect.ValueOf(newVal)
	if !rv.Type().ConvertibleTo(ft.Type) {
		return
	}
	fv.Set(rv.Convert(ft.Type))
}
