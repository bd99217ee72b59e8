package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODuration(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Duration
	}{
		{"PT30M", 30 * time.Minute},
		{"PT1H30M", 90 * time.Minute},
		{"PT45S", 45 * time.Second},
		{"P1DT2H", 26 * time.Hour},
		{"PT0S", 0},
		{"pt15m", 15 * time.Minute}, // case-insensitive
	}

	for _, tc := range cases {
		got, err := ParseISODuration(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}
}

func TestParseISODuration_Invalid(t *testing.T) {
	for _, raw := range []string{"", "P", "1H30M", "PT1X", "PT1H30", "P1M"} {
		_, err := ParseISODuration(raw)
		assert.Error(t, err, raw)
	}
}

func TestFormatISODuration(t *testing.T) {
	assert.Equal(t, "PT1H30M", FormatISODuration(90*time.Minute))
	assert.Equal(t, "PT45S", FormatISODuration(45*time.Second))
	assert.Equal(t, "PT0S", FormatISODuration(0))
	assert.Equal(t, "PT26H", FormatISODuration(26*time.Hour))
}

func TestParseFormatRoundTrip(t *testing.T) {
	d, err := ParseISODuration("PT1H30M")
	require.NoError(t, err)

	d2, err := ParseISODuration("PT20M")
	require.NoError(t, err)

	assert.Equal(t, "PT1H50M", FormatISODuration(d+d2))
}
