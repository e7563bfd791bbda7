package words

import (
	"testing"
	"unicode/utf8"
)

func TestListSourcePick(t *testing.T) {
	src := NewListSource([]string{"LABAS", "NAMAS", "SODAS"})
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		w, err := src.Pick()
		if err != nil {
			t.Fatalf("Pick returned error: %v", err)
		}
		if w != "LABAS" && w != "NAMAS" && w != "SODAS" {
			t.Fatalf("Pick returned word outside the list: %q", w)
		}
		seen[w] = true
	}
	if len(seen) < 2 {
		t.Errorf("expected Pick to vary over 100 draws, only saw %v", seen)
	}
}

func TestListSourceEmpty(t *testing.T) {
	src := NewListSource(nil)
	if _, err := src.Pick(); err != ErrNoWords {
		t.Errorf("expected ErrNoWords for empty source, got %v", err)
	}
}

func TestDefaultSourcePick(t *testing.T) {
	src := NewDefaultSource()
	w, err := src.Pick()
	if err != nil {
		t.Fatalf("Pick returned error: %v", err)
	}
	if utf8.RuneCountInString(w) != 5 {
		t.Errorf("default source picked %q, want a 5-letter word", w)
	}
}

func TestDictionaryEntries(t *testing.T) {
	entries := Dictionary()
	if len(entries) == 0 {
		t.Fatal("dictionary is empty")
	}
	seen := make(map[string]bool)
	for _, e := range entries {
		if utf8.RuneCountInString(e.Text) != 5 {
			t.Errorf("entry %q is not 5 letters", e.Text)
		}
		if e.Complexity < 1 || e.Complexity > 3 {
			t.Errorf("entry %q has complexity %d, want 1..3", e.Text, e.Complexity)
		}
		if e.Category == "" {
			t.Errorf("entry %q has empty category", e.Text)
		}
		if seen[e.Text] {
			t.Errorf("duplicate dictionary entry %q", e.Text)
		}
		seen[e.Text] = true
	}
}
