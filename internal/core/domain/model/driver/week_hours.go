package driver

import (
	"strconv"
	"strings"

	"dispatch/internal/pkg/errs"
)

// weekDays is the fixed length of the past-week hours sequence.
const weekDays = 7

// WeekHours is the ordered sequence of hours a driver worked on each of the
// preceding seven days. Each entry is between 0 and 24.
type WeekHours [weekDays]float64

// NewWeekHours validates and returns a WeekHours sequence.
func NewWeekHours(hours []float64) (WeekHours, error) {
	if len(hours) != weekDays {
		return WeekHours{}, errs.NewValueIsInvalidError("pastWeekHours must contain exactly 7 values")
	}

	var wh WeekHours
	for i, h := range hours {
		if h < 0 || h > 24 {
			return WeekHours{}, errs.NewValueIsOutOfRangeError("pastWeekHours", h, 0, 24)
		}
		wh[i] = h
	}

	return wh, nil
}

// ParseWeekHours parses the stored pipe-separated form, e.g. "8|7.5|0|8|8|6|0".
func ParseWeekHours(s string) (WeekHours, error) {
	if s == "" {
		return WeekHours{}, nil
	}

	parts := strings.Split(s, "|")
	hours := make([]float64, 0, len(parts))
	for _, p := range parts {
		h, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return WeekHours{}, errs.NewValueIsInvalidErrorWithCause("pastWeekHours", err)
		}
		hours = append(hours, h)
	}

	return NewWeekHours(hours)
}

// Total returns the summed hours over the week.
func (wh WeekHours) Total() float64 {
	var total float64
	for _, h := range wh {
		total += h
	}
	return total
}

// Slice returns the hours as a fresh slice for serialization.
func (wh WeekHours) Slice() []float64 {
	out := make([]float64, weekDays)
	copy(out, wh[:])
	return out
}

// String returns the pipe-separated stored form.
func (wh WeekHours) String() string {
	parts := make([]string, weekDays)
	for i, h := range wh {
		parts[i] = strconv.FormatFloat(h, 'f', -1, 64)
	}
	return strings.Join(parts, "|")
}
