package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

// WriteText prints a short human readable summary.
func (r Report) WriteText(w io.Writer) error {
	tw := &textWriter{w: w}
	title := r.Source
	if title == "" {
		title = "snapshot"
	}
	tw.line("%s: %s nodes, %d windows", title, humanize.Comma(int64(r.Nodes)), len(r.Windows))
	if len(r.Windows) > 0 {
		tw.line("  windows: %s", strings.Join(r.Windows, ", "))
	}
	if s := r.Ship; s != nil {
		capacitor := "?"
		if s.CapacitorPercent != nil {
			capacitor = fmt.Sprintf("%d%%", *s.CapacitorPercent)
		}
		tw.line("  ship: shield %d%% armor %d%% structure %d%% capacitor %s",
			s.Hitpoints.Shield, s.Hitpoints.Armor, s.Hitpoints.Structure, capacitor)
		tw.line("  modules: %d top, %d middle, %d bottom (%d active)",
			s.Modules.Top, s.Modules.Middle, s.Modules.Bottom, s.ActiveModules)
		if s.Maneuver != "" {
			tw.line("  maneuver: %s", s.Maneuver)
		}
	}
	if l := r.Location; l != nil && l.SolarSystem != "" {
		sec := ""
		if l.SecurityStatus != nil {
			sec = fmt.Sprintf(" (%.1f)", float64(*l.SecurityStatus)/100)
		}
		tw.line("  location: %s%s", l.SolarSystem, sec)
	}
	for _, row := range r.Overview {
		dist := "-"
		if row.Distance != nil {
			dist = Distance(*row.Distance)
		}
		tw.line("  overview: %-30s %-20s %s", row.Name, row.Type, dist)
	}
	if d := r.Drones; d != nil {
		for _, g := range []*DroneGroupReport{d.InBay, d.InLocalSpace} {
			if g != nil {
				tw.line("  drones: %s", g.Title)
			}
		}
	}
	for _, inv := range r.Inventories {
		line := fmt.Sprintf("  inventory: %s, %s", inv.Caption, humanize.Plural(inv.Items, "item", "items"))
		if c := inv.Capacity; c != nil && c.Maximum != nil {
			line += fmt.Sprintf(", %s/%s m³", humanize.Comma(int64(c.Used)), humanize.Comma(int64(*c.Maximum)))
		}
		tw.line("%s", line)
	}
	if r.Clock != nil {
		tw.line("  clock: %02d:%02d", r.Clock.Hour, r.Clock.Minute)
	}
	for _, e := range r.Errors {
		tw.line("  error: %s", e)
	}
	return tw.err
}

// WriteText prints the summaries one after the other.
func (rs Reports) WriteText(w io.Writer) error {
	for _, r := range rs {
		if err := r.WriteText(w); err != nil {
			return err
		}
	}
	return nil
}

// Changes is the result of comparing two snapshots.
type Changes []Change

func (cs Changes) WriteText(w io.Writer) error {
	tw := &textWriter{w: w}
	if len(cs) == 0 {
		tw.line("no changes")
	}
	for _, c := range cs {
		switch c.Type {
		case ChangeAdded:
			tw.line("+ %s %q %v", c.Path, c.Component.Text, c.Component.Region)
		case ChangeRemoved:
			tw.line("- %s %q", c.Path, c.Text)
		case ChangeChanged:
			for _, field := range []string{"t", "b"} {
				if d, ok := c.Changes[field]; ok {
					tw.line("~ %s %s: %s -> %s", c.Path, field, d[0], d[1])
				}
			}
		}
	}
	return tw.err
}

// Distance formats meters the way the overview does: meters below 10 km,
// kilometers above.
func Distance(meters int) string {
	if meters < 10_000 {
		return humanize.Comma(int64(meters)) + " m"
	}
	return humanize.CommafWithDigits(float64(meters)/1000, 1) + " km"
}

// textWriter keeps the first write error so callers can print many lines
// and check once.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) line(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format+"\n", args...)
}
