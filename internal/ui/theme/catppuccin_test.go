package theme

import (
	"math"
	"strings"
	"testing"
)

func TestProgressBarFill(t *testing.T) {
	t.Parallel()
	cases := []struct {
		pct          float64
		filled, left int
	}{
		{pct: 0, filled: 0, left: 10},
		{pct: 26, filled: 3, left: 7},
		{pct: 100, filled: 10, left: 0},
		{pct: 250, filled: 10, left: 0},
		{pct: -5, filled: 0, left: 10},
		{pct: math.NaN(), filled: 0, left: 10},
	}
	for _, tc := range cases {
		bar := ProgressBar(tc.pct, 10)
		if got := strings.Count(bar, "█"); got != tc.filled {
			t.Fatalf("pct %v: filled = %d, want %d", tc.pct, got, tc.filled)
		}
		if got := strings.Count(bar, "░"); got != tc.left {
			t.Fatalf("pct %v: empty = %d, want %d", tc.pct, got, tc.left)
		}
	}
	if ProgressBar(50, 0) != "" {
		t.Fatalf("zero width should render nothing")
	}
}

func TestStatusStyles(t *testing.T) {
	t.Parallel()
	if ForStatus("adequate").GetForeground() != Green {
		t.Fatalf("adequate should be green")
	}
	if ForStatus("deficient_severe").GetForeground() != Red {
		t.Fatalf("severe deficiency should be red")
	}
	if ForPercentage(60).GetForeground() != Yellow {
		t.Fatalf("60%% should be yellow")
	}
}
