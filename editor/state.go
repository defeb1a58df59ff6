// Package editor implements the edit-mode workflow over a song catalog as a
// reducer: Reduce takes the current State and an Action and returns the next
// State plus the Effects the caller must apply. Session owns the catalog and
// applies those effects.
package editor

import (
	"strings"

	"github.com/user/songdb/catalog"
	"github.com/user/songdb/pkg/pricefmt"
)

// Mode is the current edit-workflow state.
type Mode int

const (
	// ModeView shows the selected song read-only.
	ModeView Mode = iota
	// ModeAdd collects a new song.
	ModeAdd
	// ModeEdit changes the selected song; its item code is fixed.
	ModeEdit
	// ModeDelete awaits confirmation to remove the selected song.
	ModeDelete
)

func (m Mode) String() string {
	switch m {
	case ModeView:
		return "View"
	case ModeAdd:
		return "Add"
	case ModeEdit:
		return "Edit"
	case ModeDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// Field identifies one input field of a song.
type Field int

const (
	FieldTitle Field = iota
	FieldItemCode
	FieldDescription
	FieldArtist
	FieldAlbum
	FieldPrice

	fieldCount
)

// AllFields lists the fields in display and validation order.
var AllFields = []Field{FieldTitle, FieldItemCode, FieldDescription, FieldArtist, FieldAlbum, FieldPrice}

// Label returns the field's display label.
func (f Field) Label() string {
	switch f {
	case FieldTitle:
		return "Title"
	case FieldItemCode:
		return "Item Code"
	case FieldDescription:
		return "Description"
	case FieldArtist:
		return "Artist"
	case FieldAlbum:
		return "Album"
	case FieldPrice:
		return "Price"
	default:
		return ""
	}
}

// noun is how validation messages refer to the field.
func (f Field) noun() string {
	switch f {
	case FieldTitle:
		return "song title"
	case FieldItemCode:
		return "item code"
	case FieldDescription:
		return "song description"
	case FieldArtist:
		return "artist name"
	case FieldAlbum:
		return "album name"
	case FieldPrice:
		return "song price"
	default:
		return "field"
	}
}

// Fields holds the raw text of every input field, indexed by Field.
type Fields [fieldCount]string

// FieldsFromSong fills the fields with a stored song's values.
func FieldsFromSong(s catalog.Song) Fields {
	var f Fields
	f[FieldTitle] = s.Title
	f[FieldItemCode] = s.ItemCode
	f[FieldDescription] = s.Description
	f[FieldArtist] = s.Artist
	f[FieldAlbum] = s.Album
	f[FieldPrice] = pricefmt.Format(s.Price)
	return f
}

// HasData reports whether any field has a non-blank value.
func (f Fields) HasData() bool {
	for _, v := range f {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// State is the edit-mode state held between actions.
type State struct {
	Mode   Mode
	Fields Fields
	// Selected is the item code of the selected song, or "" when the
	// catalog is empty.
	Selected string
	// Message is the single human-readable status or error line.
	Message string
	// AcceptBlocked is set in Add mode while the item code matches an
	// existing song.
	AcceptBlocked bool
}

// Editable reports whether f may be changed in the current mode.
func (s State) Editable(f Field) bool {
	switch s.Mode {
	case ModeAdd:
		return true
	case ModeEdit:
		return f != FieldItemCode
	default:
		return false
	}
}

// Lookup is the read-only catalog view the reducer needs.
type Lookup interface {
	Get(code string) (catalog.Song, bool)
	Codes() []string
}

// Settle refreshes a View-mode state against the catalog: a missing
// selection falls back to the first song, and the fields show the selected
// song. Other modes are returned unchanged.
func Settle(s State, cat Lookup) State {
	if s.Mode != ModeView {
		return s
	}
	if _, ok := cat.Get(s.Selected); !ok {
		s.Selected = ""
		if codes := cat.Codes(); len(codes) > 0 {
			s.Selected = codes[0]
		}
	}
	if song, ok := cat.Get(s.Selected); ok {
		s.Fields = FieldsFromSong(song)
	} else {
		s.Fields = Fields{}
	}
	return s
}
