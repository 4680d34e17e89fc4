package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"
	"github.com/tidwall/sjson"
	"golang.org/x/text/unicode/runenames"

	"github.com/dshills/keychord/internal/input/notation"
	"github.com/dshills/keychord/internal/input/x11"
)

// row is one rendered line of text output.
type row struct {
	chord string
	rest  string
}

// renderText writes one aligned line per result.
func renderText(w io.Writer, results []notation.Result) error {
	rows := make([]row, 0, len(results))
	width := 0
	for _, r := range results {
		var rw row
		if r.Err != nil {
			rw = row{chord: "error", rest: errorText(r.Err)}
		} else {
			rw = row{chord: r.Event.String(), rest: describe(r.Event)}
		}
		width = max(width, uniseg.StringWidth(rw.chord))
		rows = append(rows, rw)
	}

	for _, rw := range rows {
		pad := strings.Repeat(" ", width-uniseg.StringWidth(rw.chord))
		if _, err := fmt.Fprintf(w, "%s%s  %s\n", rw.chord, pad, rw.rest); err != nil {
			return err
		}
	}
	return nil
}

func describe(ev x11.Event) string {
	key := rune(ev.Key())
	parts := []string{fmt.Sprintf("U+%04X", key)}
	if mods := ev.Modifiers(); !mods.IsEmpty() {
		parts = append(parts, mods.ShortString())
	}
	if ev.Key() == x11.NoSymbol {
		parts = append(parts, "NoSymbol")
	} else if name := runenames.Name(key); name != "" {
		parts = append(parts, name)
	}
	return strings.Join(parts, "  ")
}

func errorText(err error) string {
	var perr *notation.ParseError
	if errors.As(err, &perr) {
		text := fmt.Sprintf("%s (pos %d)", perr.Msg, perr.Pos)
		if perr.Terminal() {
			text += ", parse stopped"
		}
		return text
	}
	return err.Error()
}

// renderJSON writes one JSON document for an input line.
func renderJSON(w io.Writer, input string, results []notation.Result) error {
	doc, err := sjson.Set("{}", "input", input)
	if err != nil {
		return err
	}
	if doc, err = sjson.SetRaw(doc, "results", "[]"); err != nil {
		return err
	}

	for _, r := range results {
		obj, err := resultJSON(r)
		if err != nil {
			return err
		}
		if doc, err = sjson.SetRaw(doc, "results.-1", obj); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(w, doc)
	return err
}

func resultJSON(r notation.Result) (string, error) {
	if r.Err != nil {
		fields := map[string]any{
			"error": r.Err.Error(),
			"kind":  notation.ErrorCode(r.Err),
		}
		var perr *notation.ParseError
		if errors.As(r.Err, &perr) {
			fields["pos"] = perr.Pos
			fields["terminal"] = perr.Terminal()
		}
		return setFields(fields)
	}

	ev := r.Event
	char := ""
	if ev.Key() != x11.NoSymbol {
		char = string(rune(ev.Key()))
	}
	return setFields(map[string]any{
		"chord":     ev.String(),
		"key":       int64(ev.Key()),
		"char":      char,
		"modifiers": uint32(ev.Modifiers()),
		"names":     ev.Modifiers().String(),
	})
}

// setFields builds an object in a fixed key order.
func setFields(fields map[string]any) (string, error) {
	order := []string{"chord", "key", "char", "modifiers", "names", "error", "kind", "pos", "terminal"}
	obj := "{}"
	for _, k := range order {
		v, ok := fields[k]
		if !ok {
			continue
		}
		var err error
		if obj, err = sjson.Set(obj, k, v); err != nil {
			return "", err
		}
	}
	return obj, nil
}
