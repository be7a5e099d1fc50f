package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/bodgit/hexpixel/charmap"
	"github.com/muesli/termenv"
	"github.com/urfave/cli/v2"
)

const perLine = 3

func swatch(out *termenv.Output, c charmap.Code) string {
	return out.String("  ").Background(out.Color(c.String())).String()
}

func display(r rune) string {
	if r == ' ' {
		return "' '"
	}
	return string(r)
}

func printEntries(w io.Writer, out *termenv.Output, entries []charmap.Entry) {
	for i, e := range entries {
		fmt.Fprintf(w, "  %3s: %s %s", display(e.Char), e.Code, swatch(out, e.Code))
		if (i+1)%perLine == 0 || i == len(entries)-1 {
			fmt.Fprintln(w)
		}
	}
}

func tableAction(c *cli.Context) error {
	w := c.App.Writer
	out := termenv.NewOutput(w)

	fmt.Fprintln(w, "Character Color Mapping:")

	if c.NArg() > 0 {
		used := charmap.Default().Used(c.Args().First())
		entries := make([]charmap.Entry, 0, len(used))
		for r, code := range used {
			entries = append(entries, charmap.Entry{Char: r, Code: code})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Char < entries[j].Char })

		fmt.Fprintf(w, "\nUsed by %q:\n", c.Args().First())
		printEntries(w, out, entries)
		return nil
	}

	for _, r := range charmap.Ranges() {
		fmt.Fprintf(w, "\n%s:\n", r.Name)
		printEntries(w, out, r.Entries)
	}

	return nil
}
