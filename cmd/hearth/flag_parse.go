package main

import (
	"flag"
	"strings"
)

// parseFlagsLoose parses fs against args while letting positional arguments
// appear before flags, so both of these work:
//
//	hearth send homework "what is due?" --kind query
//	hearth send --kind query homework "what is due?"
//
// Everything after a bare "--" is positional. Returns the positional
// arguments in order of appearance.
func parseFlagsLoose(fs *flag.FlagSet, args []string) ([]string, error) {
	var flagArgs, positional []string

	i := 0
	for i < len(args) {
		arg := args[i]
		i++
		switch {
		case arg == "--":
			positional = append(positional, args[i:]...)
			i = len(args)
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			positional = append(positional, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if i < len(args) && flagTakesValue(fs, arg) {
				flagArgs = append(flagArgs, args[i])
				i++
			}
		}
	}

	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}
	return append(positional, fs.Args()...), nil
}

// flagTakesValue reports whether arg names a defined non-boolean flag
// written without =value, i.e. one that consumes the following argument.
func flagTakesValue(fs *flag.FlagSet, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	name := strings.TrimLeft(arg, "-")
	if name == "" {
		return false
	}
	f := fs.Lookup(name)
	if f == nil {
		// Unknown flags are left for the standard parser to report.
		return false
	}
	bf, ok := f.Value.(interface{ IsBoolFlag() bool })
	return !ok || !bf.IsBoolFlag()
}
