package models

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Choosing Assisted Living in Gurugram", "choosing-assisted-living-in-gurugram"},
		{"  Memory Care: What to Ask?  ", "memory-care-what-to-ask"},
		{"Costs --- and   Deposits", "costs-and-deposits"},
		{"100% Honest Review!", "100-honest-review"},
	}

	for _, tc := range cases {
		if got := Slugify(tc.title); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}
