package prompt

import "time"

// Render picks the regular or warning template (per §4.9, the warning
// variant fires when the previous command was invalid) and decodes it
// against vars.
func Render(regular, warning string, lastCommandInvalid bool, vars Vars, now time.Time) string {
	template := regular
	if lastCommandInvalid {
		template = warning
	}
	return Decode(template, vars, now)
}
