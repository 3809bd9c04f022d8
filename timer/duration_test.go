package timer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Seconds
	}{
		{"1h30m20s", 5420},
		{"1w2d3h", 7*86400 + 2*86400 + 3*3600},
		{"", 0},
		{"garbage", 0},
		{"45s", 45},
		{"2m", 120},
		{"1W1D1H1M1S", 694861},
		{"90m", 5400},
		{"1h 30m", 3600},
		{"1h30m trailing", 5400},
		{"x1h", 0},
		{"30m1h", 1800},
		{"1s1h", 1},
		{"0s", 0},
		{"99999999999999999999s", 0},
		{"99999999999999999w", math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func TestFormatFull(t *testing.T) {
	tests := []struct {
		in   Seconds
		want string
	}{
		{0, "00s"},
		{5, "05s"},
		{59, "59s"},
		{60, "1m 00s"},
		{5420, "1h 30m 20s"},
		{3600, "1h 0m 00s"},
		{90061, "1d 1h 1m 01s"},
		{Week, "1w 0d 0h 0m 00s"},
		{788400, "1w 2d 3h 0m 00s"},
		{-10, "00s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFull(tt.in), "FormatFull(%d)", tt.in)
	}
}

func TestFormatDominantUnit(t *testing.T) {
	tests := []struct {
		in   Seconds
		want string
	}{
		{0, "<1m"},
		{59, "<1m"},
		{60, "1m"},
		{3600, "1h"},
		{90061, "1h"},
		{Day + 5*Minute, "5m"},
		{2*Week + 3*Hour, "3h"},
		{2 * Week, "2w"},
		{3*Hour + 15*Minute + 9, "15m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDominantUnit(tt.in), "FormatDominantUnit(%d)", tt.in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "02:05", FormatClock(125))
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "00:30", FormatClock(30))
	assert.Equal(t, "150:00", FormatClock(9000))
	assert.Equal(t, "00:00", FormatClock(-3))
}
