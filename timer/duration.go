package timer

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Seconds is a non-negative whole number of seconds. It is the canonical
// representation of every duration handled by this package.
type Seconds int64

// Unit sizes.
const (
	Minute Seconds = 60
	Hour           = 60 * Minute
	Day            = 24 * Hour
	Week           = 7 * Day
)

// Segments must appear in w,d,h,m,s order. The pattern is not anchored at the
// end, so trailing text is ignored, and leading text makes every group empty.
var durationRe = regexp.MustCompile(`(?i)(?:(\d+)w)?(?:(\d+)d)?(?:(\d+)h)?(?:(\d+)m)?(?:(\d+)s)?`)

// Parse converts input such as "1h30m20s" or "1w2d3h" into seconds.
// Malformed or empty input yields 0; Parse never fails.
func Parse(input string) Seconds {
	m := durationRe.FindStringSubmatch(input)
	if m == nil {
		return 0
	}

	var total Seconds
	for i, size := range []Seconds{Week, Day, Hour, Minute, 1} {
		total = addSat(total, mulSat(atoi(m[i+1]), size))
	}
	return total
}

func atoi(s string) Seconds {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return Seconds(n)
}

func mulSat(n, size Seconds) Seconds {
	if n > math.MaxInt64/size {
		return math.MaxInt64
	}
	return n * size
}

func addSat(a, b Seconds) Seconds {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

type components struct {
	weeks, days, hours, minutes, seconds Seconds
}

func split(s Seconds) components {
	if s < 0 {
		s = 0
	}
	return components{
		weeks:   s / Week,
		days:    s % Week / Day,
		hours:   s % Day / Hour,
		minutes: s % Hour / Minute,
		seconds: s % Minute,
	}
}

// FormatFull renders every unit down to seconds, e.g. "1d 1h 1m 01s".
// Leading zero units are skipped; once a unit is shown all smaller ones are.
func FormatFull(s Seconds) string {
	c := split(s)

	parts := make([]string, 0, 5)
	if c.weeks > 0 {
		parts = append(parts, fmt.Sprintf("%dw", c.weeks))
	}
	if c.days > 0 || len(parts) > 0 {
		parts = append(parts, fmt.Sprintf("%dd", c.days))
	}
	if c.hours > 0 || len(parts) > 0 {
		parts = append(parts, fmt.Sprintf("%dh", c.hours))
	}
	if c.minutes > 0 || len(parts) > 0 {
		parts = append(parts, fmt.Sprintf("%dm", c.minutes))
	}
	parts = append(parts, fmt.Sprintf("%02ds", c.seconds))

	return strings.Join(parts, " ")
}

// FormatDominantUnit returns a compact single-unit label. With two or more
// nonzero units among w,d,h,m it returns the second one, not the largest.
func FormatDominantUnit(s Seconds) string {
	c := split(s)
	units := []struct {
		label  string
		amount Seconds
	}{
		{"w", c.weeks},
		{"d", c.days},
		{"h", c.hours},
		{"m", c.minutes},
	}

	var active []int
	for i, u := range units {
		if u.amount > 0 {
			active = append(active, i)
		}
	}

	switch len(active) {
	case 0:
		return "<1m"
	case 1:
		u := units[active[0]]
		return fmt.Sprintf("%d%s", u.amount, u.label)
	default:
		u := units[active[1]]
		return fmt.Sprintf("%d%s", u.amount, u.label)
	}
}

// FormatClock renders MM:SS. Minutes are not wrapped at 60 or 100.
func FormatClock(s Seconds) string {
	if s < 0 {
		s = 0
	}
	return fmt.Sprintf("%02d:%02d", s/Minute, s%Minute)
}
