package editor

import (
	"errors"
	"strings"

	"github.com/user/songdb/catalog"
	"github.com/user/songdb/pkg/pricefmt"
)

// Action is a user intent fed to Reduce.
type Action interface {
	action()
}

// Select makes the song with Code the current selection. View mode only.
type Select struct{ Code string }

// BeginAdd enters Add mode with cleared fields.
type BeginAdd struct{}

// BeginEdit enters Edit mode on the selected song.
type BeginEdit struct{}

// BeginDelete enters Delete mode on the selected song.
type BeginDelete struct{}

// SetField changes one field's text.
type SetField struct {
	Field Field
	Value string
}

// Accept commits the pending Add, Edit or Delete.
type Accept struct{}

// Cancel discards the pending change.
type Cancel struct{}

// Save writes the catalog to storage. View mode only.
type Save struct{}

// Exit saves the catalog and ends the session. View mode only.
type Exit struct{}

func (Select) action()      {}
func (BeginAdd) action()    {}
func (BeginEdit) action()   {}
func (BeginDelete) action() {}
func (SetField) action()    {}
func (Accept) action()      {}
func (Cancel) action()      {}
func (Save) action()        {}
func (Exit) action()        {}

// Effect is a side effect requested by Reduce.
type Effect interface {
	effect()
}

// InsertEffect adds Song to the catalog.
type InsertEffect struct{ Song catalog.Song }

// ReplaceEffect overwrites the song at Code.
type ReplaceEffect struct {
	Code string
	Song catalog.Song
}

// RemoveEffect deletes the song at Code.
type RemoveEffect struct{ Code string }

// SaveEffect writes the whole catalog to storage.
type SaveEffect struct{}

// QuitEffect ends the session. It only runs if every earlier effect succeeded.
type QuitEffect struct{}

func (InsertEffect) effect()  {}
func (ReplaceEffect) effect() {}
func (RemoveEffect) effect()  {}
func (SaveEffect) effect()    {}
func (QuitEffect) effect()    {}

// Reduce applies a to s. On error the returned state keeps the mode of s and
// carries the error's message; no effects are returned.
func Reduce(s State, a Action, cat Lookup) (State, []Effect, error) {
	switch a := a.(type) {
	case Select:
		if s.Mode != ModeView {
			return fail(s, ErrIllegalTransition)
		}
		song, ok := cat.Get(a.Code)
		if !ok {
			return fail(s, &catalog.NotFoundError{Code: a.Code})
		}
		s.Selected = a.Code
		s.Fields = FieldsFromSong(song)
		s.Message = ""
		return s, nil, nil

	case BeginAdd:
		if s.Mode != ModeView {
			return fail(s, ErrIllegalTransition)
		}
		s.Mode = ModeAdd
		s.Fields = Fields{}
		s.Message = ""
		s.AcceptBlocked = false
		return s, nil, nil

	case BeginEdit, BeginDelete:
		if s.Mode != ModeView {
			return fail(s, ErrIllegalTransition)
		}
		song, ok := cat.Get(s.Selected)
		if !ok {
			return fail(s, ErrNoSelection)
		}
		s.Fields = FieldsFromSong(song)
		s.AcceptBlocked = false
		if _, isEdit := a.(BeginEdit); isEdit {
			s.Mode = ModeEdit
			s.Message = ""
		} else {
			s.Mode = ModeDelete
			s.Message = deletePrompt
		}
		return s, nil, nil

	case SetField:
		if a.Field < 0 || a.Field >= fieldCount || !s.Editable(a.Field) {
			return fail(s, &ReadOnlyError{Field: a.Field, Mode: s.Mode})
		}
		s.Fields[a.Field] = a.Value
		if s.Mode == ModeAdd && a.Field == FieldItemCode {
			_, exists := cat.Get(strings.TrimSpace(a.Value))
			s.AcceptBlocked = exists
			if exists {
				s.Message = duplicateMessage
			} else {
				s.Message = ""
			}
		}
		return s, nil, nil

	case Accept:
		return accept(s, cat)

	case Cancel:
		if s.Mode == ModeView {
			return fail(s, ErrIllegalTransition)
		}
		s.Mode = ModeView
		s.Message = ""
		s.AcceptBlocked = false
		return Settle(s, cat), nil, nil

	case Save:
		if s.Mode != ModeView {
			return fail(s, ErrIllegalTransition)
		}
		s.Message = savedMessage
		return s, []Effect{SaveEffect{}}, nil

	case Exit:
		if s.Mode != ModeView {
			return fail(s, ErrIllegalTransition)
		}
		return s, []Effect{SaveEffect{}, QuitEffect{}}, nil
	}

	return fail(s, ErrIllegalTransition)
}

func accept(s State, cat Lookup) (State, []Effect, error) {
	switch s.Mode {
	case ModeAdd:
		code := strings.TrimSpace(s.Fields[FieldItemCode])
		if _, exists := cat.Get(code); exists && code != "" {
			s.AcceptBlocked = true
			return failWith(s, &catalog.DuplicateKeyError{Code: code}, duplicateMessage)
		}
		song, err := songFromFields(s.Fields)
		if err != nil {
			return fail(s, err)
		}
		s.Mode = ModeView
		s.Selected = song.ItemCode
		s.Message = ""
		s.AcceptBlocked = false
		return s, []Effect{InsertEffect{Song: song}}, nil

	case ModeEdit:
		fields := s.Fields
		fields[FieldItemCode] = s.Selected
		song, err := songFromFields(fields)
		if err != nil {
			return fail(s, err)
		}
		s.Mode = ModeView
		s.Message = ""
		return s, []Effect{ReplaceEffect{Code: s.Selected, Song: song}}, nil

	case ModeDelete:
		code := s.Selected
		s.Mode = ModeView
		s.Selected = ""
		s.Message = ""
		return s, []Effect{RemoveEffect{Code: code}}, nil
	}

	return fail(s, ErrIllegalTransition)
}

// songFromFields validates the fields and builds a song. The first missing
// field in AllFields order is reported, then commas, then the price.
func songFromFields(f Fields) (catalog.Song, error) {
	var trimmed Fields
	for _, field := range AllFields {
		trimmed[field] = strings.TrimSpace(f[field])
		if trimmed[field] == "" {
			return catalog.Song{}, missingField(field)
		}
	}
	for _, field := range AllFields {
		if strings.Contains(trimmed[field], ",") {
			return catalog.Song{}, commaInField(field)
		}
	}
	price, err := pricefmt.Parse(trimmed[FieldPrice])
	if err != nil {
		return catalog.Song{}, &PriceFormatError{Input: f[FieldPrice], Err: err}
	}
	return catalog.Song{
		Title:       trimmed[FieldTitle],
		ItemCode:    trimmed[FieldItemCode],
		Description: trimmed[FieldDescription],
		Artist:      trimmed[FieldArtist],
		Album:       trimmed[FieldAlbum],
		Price:       price,
	}, nil
}

func fail(s State, err error) (State, []Effect, error) {
	return failWith(s, err, err.Error())
}

func failWith(s State, err error, msg string) (State, []Effect, error) {
	if !errors.Is(err, ErrIllegalTransition) {
		s.Message = msg
	}
	return s, nil, err
}
