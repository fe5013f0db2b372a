package timeutil

import (
	"testing"
	"time"
)

func TestSecsToMinsAndSecs(t *testing.T) {
	cases := []struct {
		secs  float64
		mins  int
		rem   int
	}{
		{0, 0, 0},
		{59, 0, 59},
		{60, 1, 0},
		{90.4, 1, 30},
		{1500, 25, 0},
		{-5, 0, 0},
	}

	for _, tc := range cases {
		m, s := SecsToMinsAndSecs(tc.secs)
		if m != tc.mins || s != tc.rem {
			t.Errorf(
				"SecsToMinsAndSecs(%v) = %d, %d, want %d, %d",
				tc.secs,
				m,
				s,
				tc.mins,
				tc.rem,
			)
		}
	}
}

func TestFormatRemaining(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{9 * time.Second, "00:09"},
		{25 * time.Minute, "25:00"},
		{61 * time.Second, "01:01"},
	}

	for _, tc := range cases {
		if got := FormatRemaining(tc.d); got != tc.want {
			t.Errorf("FormatRemaining(%s) = %q, want %q", tc.d, got, tc.want)
		}
	}
}
