// Package flagx helps several loaders share os.Args: each one parses only
// the flags it owns and ignores the rest.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns the subset of args made of allowedFlags and their values.
//
// Both "-c conf.json" and "-config=conf.json" forms are recognised. A token
// starting with "-" is never taken as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// PathFlag returns the value of the last of the given short/long flag pair
// found in os.Args, or "" when neither is present.
func PathFlag(short, long string) string {
	var v string

	args := FilterArgs(os.Args[1:], []string{"-" + short, "-" + long, "--" + long})

	fs := flag.NewFlagSet(long, flag.ContinueOnError)
	fs.SetOutput(discard{})
	fs.StringVar(&v, long, "", "path")
	fs.StringVar(&v, short, "", "path (short)")
	_ = fs.Parse(args)

	return v
}

// JsonConfigFlags returns the config file path given by -c or -config.
func JsonConfigFlags() string {
	return PathFlag("c", "config")
}

// DotEnvFlags returns the dotenv file path given by -e or -env.
func DotEnvFlags() string {
	return PathFlag("e", "env")
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
