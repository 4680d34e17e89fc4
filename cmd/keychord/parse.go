package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/keychord/internal/config"
	"github.com/dshills/keychord/internal/input/notation"
)

// errParseFailed is returned by parse --strict when any chord failed.
var errParseFailed = errors.New("parse failed")

func (a *app) newParseCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "parse [notation...]",
		Short: "Parse key notation into chords",
		Long: `Parse each argument as key notation and print one line per chord.
With no arguments, each line of standard input is parsed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				var err error
				if inputs, err = a.readLines(); err != nil {
					return err
				}
			}
			return a.parse(inputs, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error if any chord fails to parse")
	return cmd
}

func (a *app) readLines() ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(a.stdin)
	for sc.Scan() {
		if line := sc.Text(); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

func (a *app) parse(inputs []string, strict bool) error {
	format := a.outputFormat()
	keysyms := a.cfg.Resolver()

	failed, total := 0, 0
	for i, input := range inputs {
		results := notation.Parse(input,
			notation.WithResolver(keysyms),
			notation.WithLogger(a.logger),
		).Collect()

		for _, r := range results {
			total++
			if r.Err != nil {
				failed++
			}
		}

		var err error
		if format == config.FormatJSON {
			err = renderJSON(a.stdout, input, results)
		} else {
			if len(inputs) > 1 {
				if i > 0 {
					fmt.Fprintln(a.stdout)
				}
				fmt.Fprintf(a.stdout, "%s\n", input)
			}
			err = renderText(a.stdout, results)
		}
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	a.logger.Debug("parsed", "inputs", len(inputs), "chords", total, "failed", failed)
	if strict && failed > 0 {
		return fmt.Errorf("%w: %d of %d chords", errParseFailed, failed, total)
	}
	return nil
}
