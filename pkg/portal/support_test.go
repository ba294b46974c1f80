package portal

import "testing"

func TestFilterNonEmpty(t *testing.T) {
	got := FilterNonEmpty([]string{" go ", "", "  ", "sql"})

	if len(got) != 2 || got[0] != "go" || got[1] != "sql" {
		t.Fatalf("FilterNonEmpty = %v", got)
	}
}

func TestExcerpt(t *testing.T) {
	if got := Excerpt("short", 200); got != "short" {
		t.Fatalf("short content must pass through, got %q", got)
	}

	long := "héllo wörld, this is a long sentence"
	got := Excerpt(long, 5)

	if got != "héllo" {
		t.Fatalf("Excerpt must cut on runes, got %q", got)
	}
}
