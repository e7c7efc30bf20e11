// Package flagx contains helpers for sharing os.Args between several
// independent flag sets (JSON config path, runtime overrides).
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs keeps only the allowed flags (and their values) from args.
//
// Both "-f value" and "-f=value" forms are recognised. A token that starts
// with "-" is never consumed as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigPath extracts the JSON config file path given via -c or -config.
// An empty string means no file was requested.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "Path to config file")
	fs.StringVar(&path, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}

// StringList is a repeatable string flag: every occurrence appends a value.
// The first occurrence replaces any default the list was seeded with.
type StringList struct {
	Values []string
	set    bool
}

func (l *StringList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(l.Values, ",")
}

func (l *StringList) Set(v string) error {
	if !l.set {
		l.Values = nil
		l.set = true
	}
	l.Values = append(l.Values, v)
	return nil
}
