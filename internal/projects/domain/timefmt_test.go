package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTime(t *testing.T) {
	t.Run("matches toISOString output", func(t *testing.T) {
		in := time.Date(2024, 3, 4, 5, 6, 7, 89_000_000, time.UTC)
		assert.Equal(t, "2024-03-04T05:06:07.089Z", FormatTime(in))
	})

	t.Run("converts to UTC", func(t *testing.T) {
		loc := time.FixedZone("IST", 5*3600+1800)
		in := time.Date(2024, 3, 4, 10, 36, 7, 0, loc)
		assert.Equal(t, "2024-03-04T05:06:07.000Z", FormatTime(in))
	})

	t.Run("truncates below milliseconds", func(t *testing.T) {
		in := time.Date(2024, 3, 4, 5, 6, 7, 89_999_999, time.UTC)
		assert.Equal(t, "2024-03-04T05:06:07.089Z", FormatTime(in))
	})
}

func TestParseFormatRoundTrip(t *testing.T) {
	const raw = "2021-11-30T23:59:59.500Z"
	parsed, err := ParseTime(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, FormatTime(parsed))
}

func TestNowISOParses(t *testing.T) {
	_, err := ParseTime(NowISO())
	assert.NoError(t, err)
}
