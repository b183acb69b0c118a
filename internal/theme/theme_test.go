package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trekfolio/brochure-backend/internal/projects/domain"
)

func TestDeriveSectionStyles(t *testing.T) {
	styles := DeriveSectionStyles("#1b3022", "#f5f9f6")

	t.Run("covers every section", func(t *testing.T) {
		for _, section := range []string{
			domain.SectionHeader, domain.SectionHero, domain.SectionOverview,
			domain.SectionLeader, domain.SectionItinerary, domain.SectionInclusions,
			domain.SectionThingsToCarry, domain.SectionFAQs, domain.SectionFooter,
		} {
			assert.Contains(t, styles, section)
		}
		assert.Len(t, styles, 9)
	})

	t.Run("banner sections invert primary and text", func(t *testing.T) {
		for _, section := range []string{domain.SectionHeader, domain.SectionLeader, domain.SectionFooter} {
			s := styles[section]
			assert.Equal(t, "#1b3022", s.BackgroundColor, section)
			assert.Equal(t, "#f5f9f6", s.TextColor, section)
		}
	})

	t.Run("plain sections read primary on white", func(t *testing.T) {
		for _, section := range []string{
			domain.SectionHero, domain.SectionOverview,
			domain.SectionItinerary, domain.SectionThingsToCarry,
		} {
			s := styles[section]
			assert.Equal(t, "#ffffff", s.BackgroundColor, section)
			assert.Equal(t, "#1b3022", s.TextColor, section)
		}
	})

	t.Run("tinted sections sit on a faint primary tint", func(t *testing.T) {
		want := Tint("#1b3022")
		assert.NotEqual(t, "#ffffff", want)
		for _, section := range []string{domain.SectionInclusions, domain.SectionFAQs} {
			s := styles[section]
			assert.Equal(t, want, s.BackgroundColor, section)
			assert.Equal(t, "#1b3022", s.TextColor, section)
		}
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		assert.Equal(t, styles, DeriveSectionStyles("#1b3022", "#f5f9f6"))
	})
}

func TestTint(t *testing.T) {
	t.Run("black tints to near-white", func(t *testing.T) {
		assert.Equal(t, "#f5f5f5", Tint("#000000"))
	})

	t.Run("white stays white", func(t *testing.T) {
		assert.Equal(t, "#ffffff", Tint("#ffffff"))
	})

	t.Run("short hex form accepted", func(t *testing.T) {
		assert.Equal(t, Tint("#0000ff"), Tint("#00f"))
	})

	t.Run("unparseable input falls back to white", func(t *testing.T) {
		assert.Equal(t, "#ffffff", Tint("forest"))
		assert.Equal(t, "#ffffff", Tint(""))
		assert.Equal(t, "#ffffff", Tint("#12"))
	})
}

func TestPresets(t *testing.T) {
	presets := Presets()
	require.Len(t, presets, 4)
	assert.Equal(t, "Forest", presets[0].Name)
	assert.Equal(t, "#1b3022", presets[0].Primary)

	for _, p := range presets {
		styles := DeriveSectionStyles(p.Primary, p.Text)
		assert.Len(t, styles, 9, p.Name)
	}
}
