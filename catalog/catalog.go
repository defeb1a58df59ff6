// Package catalog holds the in-memory song catalog keyed by item code.
package catalog

import (
	"maps"
	"slices"
)

// Song is a single catalog record.
type Song struct {
	Title       string
	ItemCode    string
	Description string
	Artist      string
	Album       string
	Price       float64
}

// Catalog maps item codes to songs. Iteration is always in ascending
// lexical item-code order.
type Catalog struct {
	songs map[string]Song
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{songs: make(map[string]Song)}
}

// Load inserts each song keyed by its item code. A later song with the same
// code replaces an earlier one; the replaced codes are returned in the order
// they were overwritten.
func (c *Catalog) Load(songs []Song) []string {
	var overwritten []string
	for _, s := range songs {
		if _, ok := c.songs[s.ItemCode]; ok {
			overwritten = append(overwritten, s.ItemCode)
		}
		c.songs[s.ItemCode] = s
	}
	return overwritten
}

// Insert adds a new song. It fails if the item code is already present.
func (c *Catalog) Insert(s Song) error {
	if _, ok := c.songs[s.ItemCode]; ok {
		return &DuplicateKeyError{Code: s.ItemCode}
	}
	c.songs[s.ItemCode] = s
	return nil
}

// Replace overwrites the song stored at code. The stored record always keeps
// code as its item code.
func (c *Catalog) Replace(code string, s Song) error {
	if _, ok := c.songs[code]; !ok {
		return &NotFoundError{Code: code}
	}
	s.ItemCode = code
	c.songs[code] = s
	return nil
}

// Remove deletes the song stored at code.
func (c *Catalog) Remove(code string) error {
	if _, ok := c.songs[code]; !ok {
		return &NotFoundError{Code: code}
	}
	delete(c.songs, code)
	return nil
}

// Get returns the song stored at code.
func (c *Catalog) Get(code string) (Song, bool) {
	s, ok := c.songs[code]
	return s, ok
}

// Has reports whether code is present.
func (c *Catalog) Has(code string) bool {
	_, ok := c.songs[code]
	return ok
}

// Len returns the number of songs.
func (c *Catalog) Len() int {
	return len(c.songs)
}

// Codes returns every item code in key order.
func (c *Catalog) Codes() []string {
	return slices.Sorted(maps.Keys(c.songs))
}

// All returns every song in key order.
func (c *Catalog) All() []Song {
	codes := c.Codes()
	out := make([]Song, 0, len(codes))
	for _, code := range codes {
		out = append(out, c.songs[code])
	}
	return out
}

// Titles derives the display projection: one title per song, in key order.
func Titles(c *Catalog) []string {
	all := c.All()
	titles := make([]string, len(all))
	for i, s := range all {
		titles[i] = s.Title
	}
	return titles
}
