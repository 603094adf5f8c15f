// Package report renders simulation results for terminals and files:
// Gantt charts, summary tables, the per-process audit, JSON export, and
// policy comparison tables.
//
// Every renderer takes an io.Writer and an Options value. Color is opt-in
// per call; the package keeps no global color state.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// ANSI escape codes by color name.
var ansiCodes = map[string]string{
	"blue":    "\033[94m",
	"cyan":    "\033[96m",
	"green":   "\033[92m",
	"yellow":  "\033[93m",
	"red":     "\033[91m",
	"magenta": "\033[95m",
	"white":   "\033[97m",
	"bold":    "\033[1m",
	"dim":     "\033[2m",
}

const ansiReset = "\033[0m"

// IsValidColor returns true if name is a recognized color name.
func IsValidColor(name string) bool {
	_, ok := ansiCodes[name]
	return ok
}

// ColorNames returns the recognized color names, sorted.
func ColorNames() []string {
	names := make([]string, 0, len(ansiCodes))
	for name := range ansiCodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Theme assigns a color name to each Gantt element.
type Theme struct {
	Exec   string
	Wait   string
	Switch string
	Idle   string
}

// Validate rejects unknown color names. Empty fields fall back to DefaultTheme.
func (t Theme) Validate() error {
	for element, color := range map[string]string{"exec": t.Exec, "wait": t.Wait, "switch": t.Switch, "idle": t.Idle} {
		if color != "" && !IsValidColor(color) {
			return fmt.Errorf("unknown %s color %q; valid: %s", element, color, strings.Join(ColorNames(), ", "))
		}
	}
	return nil
}

// ThemeFromMap builds a Theme from element=color pairs (keys exec, wait, switch, idle).
func ThemeFromMap(m map[string]string) (Theme, error) {
	var t Theme
	for element, color := range m {
		switch element {
		case "exec":
			t.Exec = color
		case "wait":
			t.Wait = color
		case "switch", "ctx":
			t.Switch = color
		case "idle":
			t.Idle = color
		default:
			return Theme{}, fmt.Errorf("unknown theme element %q; valid: exec, wait, switch, idle", element)
		}
	}
	return t, t.Validate()
}

// DefaultTheme is used when Options.Theme is the zero value.
var DefaultTheme = Theme{Exec: "green", Wait: "yellow", Switch: "red", Idle: "dim"}

// Options controls rendering. The zero value renders plain text.
type Options struct {
	Color bool
	Theme Theme
}

func (o Options) theme() Theme {
	if o.Theme == (Theme{}) {
		return DefaultTheme
	}
	t := o.Theme
	if t.Exec == "" {
		t.Exec = DefaultTheme.Exec
	}
	if t.Wait == "" {
		t.Wait = DefaultTheme.Wait
	}
	if t.Switch == "" {
		t.Switch = DefaultTheme.Switch
	}
	if t.Idle == "" {
		t.Idle = DefaultTheme.Idle
	}
	return t
}

// paint wraps text in the named color when color output is enabled.
// Unknown names leave the text unchanged.
func (o Options) paint(text, color string) string {
	if !o.Color {
		return text
	}
	code, ok := ansiCodes[color]
	if !ok {
		return text
	}
	return code + text + ansiReset
}

// writeLines writes the buffered lines in a single call so callers see one error.
func writeLines(w io.Writer, lines []string) error {
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func pidLabel(pid int) string {
	return fmt.Sprintf("P%02d", pid)
}
