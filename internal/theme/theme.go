// Package theme derives per-section brochure colors from a primary/text
// color pair. Everything here is pure: the same inputs always produce the
// same style map, which both the editor and the print preview rely on.
package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/trekfolio/brochure-backend/internal/projects/domain"
)

// tintWeight is the share of the primary color blended into white for the
// tinted content sections.
const tintWeight = 0.04

// DeriveSectionStyles maps a (primary, text) pair to the full section style
// map. Banner sections (header, leader, footer) are inverted: primary
// background, text color on top. Content sections read in the primary color
// on white, with inclusions and faqs on a faint tint of the primary.
func DeriveSectionStyles(primary, text string) domain.SectionStyles {
	banner := domain.SectionStyle{TextColor: text, BackgroundColor: primary}
	plain := domain.SectionStyle{TextColor: primary, BackgroundColor: "#ffffff"}
	tinted := domain.SectionStyle{TextColor: primary, BackgroundColor: Tint(primary)}

	return domain.SectionStyles{
		domain.SectionHeader:        banner,
		domain.SectionHero:          plain,
		domain.SectionOverview:      plain,
		domain.SectionLeader:        banner,
		domain.SectionItinerary:     plain,
		domain.SectionInclusions:    tinted,
		domain.SectionThingsToCarry: plain,
		domain.SectionFAQs:          tinted,
		domain.SectionFooter:        banner,
	}
}

// Tint blends the given hex color toward white, producing the light neutral
// used behind tinted content sections. Unparseable input falls back to plain
// white so the result stays deterministic.
func Tint(hexColor string) string {
	r, g, b, err := parseHex(hexColor)
	if err != nil {
		return "#ffffff"
	}
	blend := func(c int) int {
		v := int(float64(c)*tintWeight + 255*(1-tintWeight) + 0.5)
		if v > 255 {
			v = 255
		}
		return v
	}
	return fmt.Sprintf("#%02x%02x%02x", blend(r), blend(g), blend(b))
}

func parseHex(s string) (r, g, b int, err error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return int(v >> 16), int(v >> 8 & 0xff), int(v & 0xff), nil
}

// Preset is a named palette offered by the editor's styles step.
type Preset struct {
	Name    string `json:"name"`
	Primary string `json:"primary"`
	Text    string `json:"text"`
}

// Presets returns the built-in palettes, in display order.
func Presets() []Preset {
	return []Preset{
		{Name: "Forest", Primary: "#1b3022", Text: "#ffffff"},
		{Name: "Ocean", Primary: "#1e3a5f", Text: "#ffffff"},
		{Name: "Charcoal", Primary: "#2d2d2d", Text: "#ffffff"},
		{Name: "Plum", Primary: "#4a2c6a", Text: "#ffffff"},
	}
}
