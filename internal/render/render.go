// Package render formats a pitch report as indented text.
package render

import (
	"fmt"
	"io"

	"github.com/StevenBlack/pitchers/internal/pitch"
)

// Write prints the report to w: one block per pitcher, categories
// indented beneath the pitcher, pitch types beneath each category.
func Write(w io.Writer, report pitch.Report) error {
	for i, p := range report.Pitchers {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		header := p.Name
		if p.Team != "" {
			header += " [" + p.Team + "]"
		}
		if _, err := fmt.Fprintf(w, "%s (%d)\n", header, p.Total); err != nil {
			return err
		}
		for _, c := range p.Categories {
			if _, err := fmt.Fprintf(w, "  %-14s %3d\n", c.Name, c.Total); err != nil {
				return err
			}
			for _, ts := range c.Types {
				if _, err := fmt.Fprintf(w, "    %-12s %3d\n", ts.Name, ts.Count); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
