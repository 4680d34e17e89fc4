package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/dshills/keychord/internal/config"
	"github.com/dshills/keychord/internal/input/notation"
	"github.com/dshills/keychord/internal/input/term"
	"github.com/dshills/keychord/internal/input/x11"
)

var (
	// errNoChords is returned when the notation yields no usable chord.
	errNoChords = errors.New("no chords to match")
	// errUnmatched is returned by match --strict when an event matched nothing.
	errUnmatched = errors.New("unmatched key event")
)

func (a *app) newMatchCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "match <notation> [event...]",
		Short: "Match recorded key events against key notation",
		Long: `Match key event descriptions against the chords of a notation and print
the chord each event selects. Events are written the way a terminal
reports them, modifiers joined by '+' before the key:

  a  ctrl+x  ctrl+shift+r  alt+enter  esc

With no events, each line of standard input is read as one event.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			events := args[1:]
			if len(events) == 0 {
				var err error
				if events, err = a.readLines(); err != nil {
					return err
				}
			}
			return a.match(args[0], events, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error if any event matches no chord")
	return cmd
}

func (a *app) match(input string, events []string, strict bool) error {
	var chords []x11.Event
	for ev, err := range notation.Parse(input,
		notation.WithResolver(a.cfg.Resolver()),
		notation.WithLogger(a.logger),
	).All() {
		if err != nil {
			a.logger.Warn("skipping chord", "input", input, "err", err)
			continue
		}
		chords = append(chords, ev)
	}
	if len(chords) == 0 {
		return fmt.Errorf("%w: %q", errNoChords, input)
	}

	format := a.outputFormat()
	unmatched := 0
	for _, desc := range events {
		ev, err := term.ParseEventKey(desc)
		if err != nil {
			return err
		}

		idx := -1
		for i, c := range chords {
			if term.Matches(ev, c) {
				idx = i
				break
			}
		}
		if idx < 0 {
			unmatched++
		}

		if format == config.FormatJSON {
			err = a.matchJSON(desc, chords, idx)
		} else {
			err = a.matchText(desc, chords, idx)
		}
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	a.logger.Debug("matched", "events", len(events), "unmatched", unmatched)
	if strict && unmatched > 0 {
		return fmt.Errorf("%w: %d of %d", errUnmatched, unmatched, len(events))
	}
	return nil
}

func (a *app) matchText(desc string, chords []x11.Event, idx int) error {
	if idx < 0 {
		_, err := fmt.Fprintf(a.stdout, "%s\t-\n", desc)
		return err
	}
	_, err := fmt.Fprintf(a.stdout, "%s\t%s\t#%d\n", desc, chords[idx], idx)
	return err
}

func (a *app) matchJSON(desc string, chords []x11.Event, idx int) error {
	doc, err := sjson.Set("{}", "event", desc)
	if err != nil {
		return err
	}
	if doc, err = sjson.Set(doc, "matched", idx >= 0); err != nil {
		return err
	}
	if idx >= 0 {
		if doc, err = sjson.Set(doc, "index", idx); err != nil {
			return err
		}
		if doc, err = sjson.Set(doc, "chord", chords[idx].String()); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(a.stdout, doc)
	return err
}
