package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/runenames"

	"github.com/dshills/keychord/internal/input/keysym"
)

var errUnknownKeysym = errors.New("unknown keysym")

func (a *app) newKeysymCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keysym [name...]",
		Short: "Look up keysym names",
		Long: `Print the codepoint each keysym name resolves to, followed by the
X11 keysym value ("-" for names defined only in the config file).
With no arguments, every built-in keysym is listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = keysym.Default().Names()
			}
			return a.lookup(args)
		},
	}
}

func (a *app) lookup(names []string) error {
	keysyms := a.cfg.Resolver()
	table := keysym.Default()

	var missing []string
	for _, name := range names {
		r, ok := keysyms.Resolve(name)
		if !ok {
			missing = append(missing, name)
			fmt.Fprintf(a.stdout, "%s\tnot found\n", name)
			continue
		}
		code := "-"
		if e, ok := table.Lookup(name); ok && e.Unicode == r {
			code = fmt.Sprintf("0x%04x", e.Keysym)
		}
		fmt.Fprintf(a.stdout, "%s\tU+%04X\t%s\t%s\n", name, r, code, runenames.Name(r))
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", errUnknownKeysym, missing)
	}
	return nil
}
