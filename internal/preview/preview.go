package preview

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bashhack/gitpix/internal/calendar"
	"github.com/bashhack/gitpix/internal/grid"
)

const (
	// FilledGlyph marks a background cell that receives commits.
	FilledGlyph = "#"

	// EmptyGlyph marks a character cell that stays empty.
	EmptyGlyph = "."

	gutter = "         "
)

var dayNames = [grid.Rows]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// labelledRows get a weekday label in the left gutter.
var labelledRows = map[int]bool{1: true, 3: true, 5: true}

// Stats summarises a shaded grid.
type Stats struct {
	Filled int
	Weight int
	Total  int
	Start  time.Time
	End    time.Time
}

// Summarize computes the preview statistics for g shaded with weight w.
func Summarize(g grid.Grid, w int, start time.Time) Stats {
	filled := g.Filled(w)
	return Stats{
		Filled: filled,
		Weight: w,
		Total:  filled * w,
		Start:  start,
		End:    calendar.EndDate(start, grid.Cols),
	}
}

type styleSet struct {
	header lipgloss.Style
	ruler  lipgloss.Style
	label  lipgloss.Style
	filled lipgloss.Style
	empty  lipgloss.Style
	key    lipgloss.Style
	hint   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styleSet {
	base := r.NewStyle().Padding(0).Margin(0)

	return styleSet{
		header: base.Foreground(lipgloss.Color("213")).Bold(true),
		ruler:  base.Foreground(lipgloss.Color("244")),
		label:  base.Foreground(lipgloss.Color("111")),
		filled: base.Foreground(lipgloss.Color("28")).Bold(true),
		empty:  base.Foreground(lipgloss.Color("252")),
		key:    base.Foreground(lipgloss.Color("153")),
		hint:   base.Foreground(lipgloss.Color("244")),
	}
}

// Renderer writes the heatmap preview. Colour is applied only when the
// destination is a terminal that supports it; otherwise output is plain text.
type Renderer struct {
	out     io.Writer
	weight  int
	command string
	styles  styleSet
}

// New creates a Renderer for grids shaded with weight w. command is the
// invocation shown in the closing hint, e.g. "gitpix --commit".
func New(out io.Writer, w int, command string) *Renderer {
	return &Renderer{
		out:     out,
		weight:  w,
		command: command,
		styles:  newStyles(lipgloss.NewRenderer(out)),
	}
}

// Render writes the preview of g with calendar range starting at start and
// returns the statistics it printed.
func (r *Renderer) Render(g grid.Grid, start time.Time) (Stats, error) {
	stats := Summarize(g, r.weight, start)

	var b strings.Builder
	s := r.styles

	b.WriteString("\n")
	b.WriteString(s.header.Render(fmt.Sprintf("Heatmap preview  (%s = background  %s = character)", FilledGlyph, EmptyGlyph)))
	b.WriteString("\n\n")

	tens, units := ruler(grid.Cols)
	b.WriteString(gutter + s.ruler.Render(tens) + "\n")
	b.WriteString(gutter + s.ruler.Render(units) + "\n")
	rule := gutter + s.ruler.Render(strings.Repeat("-", grid.Cols)) + "\n"
	b.WriteString(rule)

	for row := 0; row < grid.Rows; row++ {
		label := "     "
		if labelledRows[row] {
			label = s.label.Render("(" + dayNames[row] + ")")
		}
		b.WriteString("  " + label + "  ")
		for col := 0; col < grid.Cols; col++ {
			if g[row][col] == r.weight {
				b.WriteString(s.filled.Render(FilledGlyph))
			} else {
				b.WriteString(s.empty.Render(EmptyGlyph))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(rule)

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s : %s to %s\n", r.key("Heatmap range"), calendar.Day(stats.Start), calendar.Day(stats.End))
	fmt.Fprintf(&b, "  %s : %d  × %d commits\n", r.key("Background cells"), stats.Filled, stats.Weight)
	fmt.Fprintf(&b, "  %s : %d\n", r.key("Total commits"), stats.Total)
	if r.command != "" {
		b.WriteString("\n")
		b.WriteString("  " + s.hint.Render("To create commits: "+r.command))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	_, err := io.WriteString(r.out, b.String())
	return stats, err
}

// key styles a summary label and pads it so the colons line up.
func (r *Renderer) key(label string) string {
	const width = len("Background cells")
	pad := ""
	if len(label) < width {
		pad = strings.Repeat(" ", width-len(label))
	}
	return r.styles.key.Render(label) + pad
}

// ruler returns the two header lines numbering columns: the tens digit at
// every multiple of ten, and the units digit of every column.
func ruler(cols int) (string, string) {
	var tens, units strings.Builder
	for c := 0; c < cols; c++ {
		if c%10 == 0 {
			tens.WriteByte(byte('0' + (c/10)%10))
		} else {
			tens.WriteByte(' ')
		}
		units.WriteByte(byte('0' + c%10))
	}
	return tens.String(), units.String()
}
