package tui

import (
	"strings"
	"sync"
)

// Some fonts render box-drawing and braille glyphs poorly, so every
// affordance has an ASCII fallback.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func applyGlyphPreference(v string) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	defer glyphsMu.RUnlock()
	return currentGlyphs
}

func pick(unicode, ascii string) string {
	if glyphs() == glyphSetASCII {
		return ascii
	}
	return unicode
}

func glyphHandle() string { return pick("⠿", "::") }

func glyphCarry() string { return pick("⇄", "<>") }

func glyphCheck() string { return pick("✓", "x") }

func glyphArrow() string { return pick("→", "->") }

func glyphHRule() string { return pick("─", "-") }
