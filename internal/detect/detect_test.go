package detect

import "testing"

func TestForPath(t *testing.T) {
	cases := map[string]Dialect{
		"source/main.brs":      DialectScripting,
		"components/Task.BRS":  DialectScripting,
		"components/scene.xml": DialectMarkup,
		"components/Scene.XML": DialectMarkup,
		"manifest":             DialectNone,
		"images/logo.png":      DialectNone,
		"main.brs.bak":         DialectNone,
	}
	for path, want := range cases {
		if got := ForPath(path); got != want {
			t.Fatalf("ForPath(%q)=%v want %v", path, got, want)
		}
	}
}

func TestCandidate(t *testing.T) {
	if !Candidate("a.brs", false) || !Candidate("a.xml", false) {
		t.Fatal("recognized extensions must be candidates")
	}
	if Candidate("manifest", false) {
		t.Fatal("unknown extension must not be a candidate by default")
	}
	if !Candidate("manifest", true) {
		t.Fatal("allFiles must admit any path")
	}
}

func TestDialectString(t *testing.T) {
	if DialectScripting.String() != "brightscript" {
		t.Fatalf("unexpected name: %s", DialectScripting)
	}
	if DialectMarkup.String() != "scenegraph" {
		t.Fatalf("unexpected name: %s", DialectMarkup)
	}
	if DialectNone.String() != "none" {
		t.Fatalf("unexpected name: %s", DialectNone)
	}
}
