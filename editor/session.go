package editor

import (
	"log/slog"
	"slices"

	"github.com/user/songdb/catalog"
)

// Store persists the whole catalog.
type Store interface {
	Save(songs []catalog.Song) error
}

// Session is the application state: the catalog, the edit-mode state and the
// derived title list. It is not safe for concurrent use.
type Session struct {
	cat      *catalog.Catalog
	store    Store
	log      *slog.Logger
	state    State
	titles   []string
	quitting bool
}

// NewSession starts a View-mode session over cat. A nil logger discards logs.
func NewSession(cat *catalog.Catalog, store Store, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Session{
		cat:   cat,
		store: store,
		log:   logger,
	}
	s.state = Settle(State{Mode: ModeView}, cat)
	s.titles = catalog.Titles(cat)
	return s
}

// Dispatch reduces action against the current state and applies the
// resulting effects in order. On failure the state reflects the error message
// and the catalog is left as it was before the failing effect.
func (s *Session) Dispatch(action Action) error {
	prev := s.state
	next, effects, err := Reduce(s.state, action, s.cat)
	s.state = next
	if err != nil {
		s.log.Debug("action rejected", "action", actionName(action), "mode", prev.Mode.String(), "error", err)
		return err
	}

	for _, e := range effects {
		if err := s.apply(e); err != nil {
			if _, isSave := e.(SaveEffect); isSave {
				s.state.Message = saveFailedMessage
				s.log.Error("save failed", "error", err)
			} else {
				prev.Message = err.Error()
				s.state = prev
				s.log.Error("apply effect failed", "action", actionName(action), "error", err)
			}
			s.refresh()
			return err
		}
	}

	if prev.Mode != s.state.Mode {
		s.log.Debug("mode changed", "from", prev.Mode.String(), "to", s.state.Mode.String())
	}
	s.refresh()
	return nil
}

func (s *Session) apply(e Effect) error {
	switch e := e.(type) {
	case InsertEffect:
		if err := s.cat.Insert(e.Song); err != nil {
			return err
		}
		s.log.Info("song added", "item_code", e.Song.ItemCode, "title", e.Song.Title)
	case ReplaceEffect:
		if err := s.cat.Replace(e.Code, e.Song); err != nil {
			return err
		}
		s.log.Info("song updated", "item_code", e.Code)
	case RemoveEffect:
		if err := s.cat.Remove(e.Code); err != nil {
			return err
		}
		s.log.Info("song deleted", "item_code", e.Code)
	case SaveEffect:
		if err := s.store.Save(s.cat.All()); err != nil {
			return err
		}
		s.log.Info("catalog saved", "songs", s.cat.Len())
	case QuitEffect:
		s.quitting = true
	}
	return nil
}

// refresh re-derives the title projection and the View-mode fields.
func (s *Session) refresh() {
	s.titles = catalog.Titles(s.cat)
	s.state = Settle(s.state, s.cat)
}

// State returns the current edit-mode state.
func (s *Session) State() State {
	return s.state
}

// Titles returns the display projection.
func (s *Session) Titles() []string {
	return slices.Clone(s.titles)
}

// Songs returns every song in display order.
func (s *Session) Songs() []catalog.Song {
	return s.cat.All()
}

// Catalog returns the underlying catalog.
func (s *Session) Catalog() *catalog.Catalog {
	return s.cat
}

// SelectedIndex returns the display index of the selected song, or -1.
func (s *Session) SelectedIndex() int {
	return slices.Index(s.cat.Codes(), s.state.Selected)
}

// SelectIndex selects the song at display index i.
func (s *Session) SelectIndex(i int) error {
	codes := s.cat.Codes()
	if i < 0 || i >= len(codes) {
		return ErrNoSelection
	}
	return s.Dispatch(Select{Code: codes[i]})
}

// Quitting reports whether an Exit completed successfully.
func (s *Session) Quitting() bool {
	return s.quitting
}

func actionName(a Action) string {
	switch a.(type) {
	case Select:
		return "select"
	case BeginAdd:
		return "add"
	case BeginEdit:
		return "edit"
	case BeginDelete:
		return "delete"
	case SetField:
		return "set_field"
	case Accept:
		return "accept"
	case Cancel:
		return "cancel"
	case Save:
		return "save"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}
