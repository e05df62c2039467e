package services_test

import (
	"regexp"
	"testing"

	"bagatelle/internal/services"
)

var safeName = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct{ in, want string }{
		{"café.png", "cafe.png"},
		{"sac à main.JPG", "sac_a_main.JPG"},
		{"été-2024 (1).jpeg", "ete-2024__1_.jpeg"},
		{"naïve façade.png", "naive_facade.png"},
		{"plain.png", "plain.png"},
		{"日本語.png", "___.png"},
		{"", "file"},
	}
	for _, c := range cases {
		got := services.SanitizeFilename(c.in)
		if got != c.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", c.in, got, c.want)
		}
		if !safeName.MatchString(got) {
			t.Errorf("SanitizeFilename(%q) = %q contains unsafe characters", c.in, got)
		}
	}
}
