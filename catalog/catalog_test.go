package catalog

import (
	"errors"
	"slices"
	"testing"
)

func song(code, title string) Song {
	return Song{Title: title, ItemCode: code, Description: "d", Artist: "a", Album: "al", Price: 1}
}

func TestLoadOrdersByCodeAndReportsOverwrites(t *testing.T) {
	c := New()
	overwritten := c.Load([]Song{
		song("C3", "Third"),
		song("A1", "First"),
		song("B2", "Second"),
		song("A1", "First again"),
	})

	if !slices.Equal(overwritten, []string{"A1"}) {
		t.Fatalf("unexpected overwritten codes: %v", overwritten)
	}
	if c.Len() != 3 {
		t.Fatalf("expected 3 songs, got %d", c.Len())
	}
	want := []string{"First again", "Second", "Third"}
	if got := Titles(c); !slices.Equal(got, want) {
		t.Fatalf("titles: got %v want %v", got, want)
	}
}

func TestInsertAddsExactlyOne(t *testing.T) {
	c := New()
	c.Load([]Song{song("B1", "Yesterday")})

	added := song("A9", "Help!")
	if err := c.Insert(added); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected size 2, got %d", c.Len())
	}

	count := 0
	for _, s := range c.All() {
		if s.ItemCode == "A9" {
			count++
			if s != added {
				t.Fatalf("stored song differs: %+v", s)
			}
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one record at A9, got %d", count)
	}
}

func TestInsertDuplicateLeavesCatalogUnchanged(t *testing.T) {
	c := New()
	c.Load([]Song{song("B1", "Yesterday")})

	err := c.Insert(song("B1", "Other"))
	var dup *DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateKeyError, got %v", err)
	}
	if dup.Code != "B1" {
		t.Fatalf("unexpected code in error: %q", dup.Code)
	}
	s, _ := c.Get("B1")
	if s.Title != "Yesterday" || c.Len() != 1 {
		t.Fatalf("catalog mutated: %+v len=%d", s, c.Len())
	}
}

func TestReplaceKeepsKey(t *testing.T) {
	c := New()
	c.Load([]Song{song("B1", "Yesterday")})

	repl := song("ZZ", "Yesterday (Remastered)")
	if err := c.Replace("B1", repl); err != nil {
		t.Fatalf("replace: %v", err)
	}
	s, ok := c.Get("B1")
	if !ok || s.Title != "Yesterday (Remastered)" || s.ItemCode != "B1" {
		t.Fatalf("unexpected record after replace: %+v", s)
	}
	if c.Has("ZZ") {
		t.Fatal("replace must not create a new key")
	}

	var nf *NotFoundError
	if err := c.Replace("nope", repl); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	c := New()
	c.Load([]Song{song("A1", "One"), song("B2", "Two")})

	if err := c.Remove("A1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if c.Has("A1") || c.Len() != 1 {
		t.Fatalf("A1 still present or wrong size: %d", c.Len())
	}

	var nf *NotFoundError
	if err := c.Remove("A1"); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError on second remove, got %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("failed remove must not mutate, size %d", c.Len())
	}
}

func TestTitlesTracksAll(t *testing.T) {
	c := New()
	if got := Titles(c); len(got) != 0 {
		t.Fatalf("expected empty projection, got %v", got)
	}

	c.Load([]Song{song("B", "Bee"), song("A", "Ay")})
	_ = c.Insert(song("C", "Cee"))
	_ = c.Remove("A")

	all := c.All()
	titles := Titles(c)
	if len(all) != len(titles) {
		t.Fatalf("length mismatch: %d vs %d", len(all), len(titles))
	}
	for i := range all {
		if all[i].Title != titles[i] {
			t.Fatalf("index %d: %q vs %q", i, all[i].Title, titles[i])
		}
	}
}
