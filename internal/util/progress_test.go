package util

import "testing"

func TestShouldShowProgress(t *testing.T) {
	if ShouldShowProgress(true, true) {
		t.Fatal("no must win over force")
	}
	if !ShouldShowProgress(true, false) {
		t.Fatal("force must enable progress")
	}
}

func TestPercent(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{0, 10, 0},
		{5, 10, 50},
		{10, 10, 100},
		{3, 0, 100},
	}
	for _, c := range cases {
		if got := percent(c.a, c.b); got != c.want {
			t.Fatalf("percent(%d,%d)=%d want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestDisabledProgressIsSilent(t *testing.T) {
	p := NewProgress(3, false)
	p.Advance()
	p.Advance()
	p.Done()
	if got := int(p.done.Load()); got != 2 {
		t.Fatalf("counter=%d want 2", got)
	}
}
