package tui

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestFitBlock_PadsAndTruncates(t *testing.T) {
	out := fitBlock("short\na much longer line than fits", 10, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
	}
	for i, ln := range lines {
		if w := xansi.StringWidth(ln); w != 10 {
			t.Fatalf("line %d: expected width 10, got %d (%q)", i, w, ln)
		}
	}
	if !strings.HasSuffix(lines[1], "…") {
		t.Fatalf("expected ellipsis on truncated line, got %q", lines[1])
	}
}

func TestFitBlock_DropsExtraLines(t *testing.T) {
	out := fitBlock("a\nb\nc", 1, 2)
	if out != "a\nb" {
		t.Fatalf("got=%q", out)
	}
}

func TestRectContains(t *testing.T) {
	r := rect{x: 2, y: 3, w: 4, h: 2}
	for _, tc := range []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{2, 5, false},
		{1, 3, false},
	} {
		if got := r.contains(tc.x, tc.y); got != tc.want {
			t.Fatalf("contains(%d,%d)=%v want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestGlyphPreference(t *testing.T) {
	t.Cleanup(func() { setGlyphs(glyphSetUnicode) })

	applyGlyphPreference("ascii")
	if glyphHandle() != "::" || glyphArrow() != "->" {
		t.Fatalf("expected ascii glyphs, got %q %q", glyphHandle(), glyphArrow())
	}
	// Unknown values keep the current set.
	applyGlyphPreference("emoji")
	if glyphHRule() != "-" {
		t.Fatalf("expected ascii kept, got %q", glyphHRule())
	}
	applyGlyphPreference("unicode")
	if glyphHRule() != "─" {
		t.Fatalf("expected unicode, got %q", glyphHRule())
	}
}

func TestRenderMarkdown(t *testing.T) {
	if renderMarkdown("   ", 40) != "" {
		t.Fatalf("expected empty output for blank input")
	}
	out := renderMarkdown("Ship the **release**", 40)
	if !strings.Contains(xansi.Strip(out), "release") {
		t.Fatalf("expected rendered text, got %q", out)
	}
}
