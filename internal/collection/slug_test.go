package collection

import (
	"regexp"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Summer Sale", "summer-sale"},
		{"  New -- Arrivals!  ", "new-arrivals"},
		{"Deals & Steals 2025", "deals-steals-2025"},
		{"---", ""},
		{"", ""},
		{"already-a-slug", "already-a-slug"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugifyIdempotentAndWellFormed(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9-]*$`)
	inputs := []string{"Summer Sale", "Crème Brûlée!!", "100% OFF", "a", "-x-", "Mixed CASE Words"}
	for _, in := range inputs {
		once := Slugify(in)
		if !valid.MatchString(once) {
			t.Errorf("Slugify(%q) = %q contains invalid characters", in, once)
		}
		if len(once) > 0 && (once[0] == '-' || once[len(once)-1] == '-') {
			t.Errorf("Slugify(%q) = %q has leading/trailing dash", in, once)
		}
		if twice := Slugify(once); twice != once {
			t.Errorf("Slugify not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}
