package slug_test

import (
	"testing"

	"healthtrack/internal/platform/slug"
)

func TestKey(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"Vitamin D":    "vitamin_d",
		"  omega-3 ":   "omega_3",
		"vitamin_b12":  "vitamin_b12",
		"Folate (DFE)": "folate_dfe",
		"***":          "",
	}
	for in, want := range cases {
		if got := slug.Key(in); got != want {
			t.Fatalf("Key(%q) = %q, want %q", in, got, want)
		}
	}
}
