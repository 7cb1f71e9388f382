package lint

import "testing"

func TestHasIgnoreToken(t *testing.T) {
	cases := map[string]bool{
		"x = 1 ' ignore-warning":       true,
		"x = 1 ' IGNORE-WARNING":       true,
		"<!-- Ignore-Warning -->":      true,
		"prefix ignore-warning suffix": true,
		"ignorewarning":                false,
		"plain line":                   false,
		"":                             false,
	}
	for line, want := range cases {
		if got := hasIgnoreToken(line); got != want {
			t.Fatalf("hasIgnoreToken(%q)=%v want %v", line, got, want)
		}
	}
}
