package preview

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/bashhack/gitpix/internal/calendar"
	"github.com/bashhack/gitpix/internal/grid"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func renderDefault(t *testing.T, start time.Time) (string, Stats) {
	t.Helper()

	var buf bytes.Buffer
	g := grid.Build(grid.DefaultLayout(), grid.DefaultWeight)
	stats, err := New(&buf, grid.DefaultWeight, "gitpix --commit").Render(g, start)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return plain(buf.String()), stats
}

func TestRenderLayout(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, time.October, 19, 0, 0, 0, 0, time.UTC)
	out, _ := renderDefault(t, start)
	lines := strings.Split(out, "\n")

	if !strings.Contains(out, "Heatmap preview  (# = background  . = character)") {
		t.Errorf("Expected header line, got:\n%s", out)
	}

	wantTens := "         0         1         2         3         4         5 "
	wantUnits := "         0123456789012345678901234567890123456789012345678901"
	if !containsLine(lines, wantTens) {
		t.Errorf("Expected tens ruler %q in output:\n%s", wantTens, out)
	}
	if !containsLine(lines, wantUnits) {
		t.Errorf("Expected units ruler %q in output:\n%s", wantUnits, out)
	}

	rows := gridLines(lines)
	if len(rows) != grid.Rows {
		t.Fatalf("Expected %d grid rows, got %d:\n%s", grid.Rows, len(rows), out)
	}
	for i, row := range rows {
		if len(row) != 9+grid.Cols {
			t.Errorf("row %d has width %d, want %d: %q", i, len(row), 9+grid.Cols, row)
		}
	}

	wantLabels := map[int]string{1: "(Mon)", 3: "(Wed)", 5: "(Fri)"}
	for i, row := range rows {
		label := strings.TrimSpace(row[:9])
		if label != wantLabels[i] {
			t.Errorf("row %d label = %q, want %q", i, label, wantLabels[i])
		}
	}

	// Row 0 starts with three background cells then the ghost's head.
	if got := rows[0][9:19]; got != "####.....#" {
		t.Errorf("row 0 prefix = %q, want %q", got, "####.....#")
	}
	// Trail dots on the Wednesday row.
	if got := rows[3][9+10 : 9+16]; got != "#.#.#." {
		t.Errorf("row 3 trail segment = %q, want %q", got, "#.#.#.")
	}
}

func TestRenderSummary(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, time.October, 19, 0, 0, 0, 0, time.UTC)
	out, stats := renderDefault(t, start)

	want := Stats{
		Filled: 267,
		Weight: grid.DefaultWeight,
		Total:  2670,
		Start:  start,
		End:    time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}

	for _, line := range []string{
		"  Heatmap range    : 2025-10-19 to 2026-10-17",
		"  Background cells : 267  × 10 commits",
		"  Total commits    : 2670",
		"  To create commits: gitpix --commit",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("Expected %q in output:\n%s", line, out)
		}
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	t.Parallel()

	start := calendar.HeatmapStart(time.Now())
	first, _ := renderDefault(t, start)
	second, _ := renderDefault(t, start)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Rendering twice should produce identical output (-first +second):\n%s", diff)
	}
}

func TestRenderWithoutHint(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := New(&buf, 3, "").Render(grid.Grid{}, time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out := plain(buf.String())
	if strings.Contains(out, "To create commits") {
		t.Error("Expected no hint when command is empty")
	}
	if !strings.Contains(out, "Total commits    : 0") {
		t.Errorf("Expected zero total for an empty grid, got:\n%s", out)
	}
	for _, row := range gridLines(strings.Split(out, "\n")) {
		if strings.Contains(row[9:], FilledGlyph) {
			t.Errorf("An empty grid should render no filled glyphs, got %q", row)
		}
	}
}

func TestSummarizeMatchesTotalWeight(t *testing.T) {
	t.Parallel()

	for _, w := range []int{1, 4, grid.DefaultWeight, 25} {
		g := grid.Build(grid.DefaultLayout(), w)
		stats := Summarize(g, w, time.Time{})
		if stats.Total != g.TotalWeight() {
			t.Errorf("w=%d: Summarize total %d != grid total %d", w, stats.Total, g.TotalWeight())
		}
	}
}

func TestRuler(t *testing.T) {
	t.Parallel()

	tens, units := ruler(23)
	if tens != "0         1         2  " {
		t.Errorf("tens = %q", tens)
	}
	if units != "01234567890123456789012" {
		t.Errorf("units = %q", units)
	}
}

func containsLine(lines []string, want string) bool {
	for _, l := range lines {
		if strings.TrimRight(l, " ") == strings.TrimRight(want, " ") {
			return true
		}
	}
	return false
}

// gridLines picks the rendered grid rows: lines whose body is only glyphs.
func gridLines(lines []string) []string {
	var rows []string
	for _, l := range lines {
		if len(l) != 9+grid.Cols {
			continue
		}
		body := l[9:]
		if strings.Trim(body, FilledGlyph+EmptyGlyph) == "" && strings.ContainsAny(body, FilledGlyph+EmptyGlyph) {
			rows = append(rows, l)
		}
	}
	return rows
}
