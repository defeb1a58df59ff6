package editor

import (
	"errors"
	"testing"

	"github.com/user/songdb/catalog"
)

func newCatalog(songs ...catalog.Song) *catalog.Catalog {
	c := catalog.New()
	c.Load(songs)
	return c
}

var help = catalog.Song{Title: "Help!", ItemCode: "A001", Description: "Title track", Artist: "The Beatles", Album: "Help!", Price: 0.99}

func fill(t *testing.T, s State, cat Lookup, values map[Field]string) State {
	t.Helper()
	for _, f := range AllFields {
		v, ok := values[f]
		if !ok {
			continue
		}
		next, _, err := Reduce(s, SetField{Field: f, Value: v}, cat)
		if err != nil {
			t.Fatalf("set %s: %v", f.Label(), err)
		}
		s = next
	}
	return s
}

func completeFields(code string) map[Field]string {
	return map[Field]string{
		FieldTitle:       "Yesterday",
		FieldItemCode:    code,
		FieldDescription: "Classic ballad",
		FieldArtist:      "The Beatles",
		FieldAlbum:       "Help!",
		FieldPrice:       "1.29",
	}
}

func TestBeginAddClearsFieldsAndAllowsEveryField(t *testing.T) {
	cat := newCatalog(help)
	s := Settle(State{}, cat)
	if s.Fields[FieldTitle] != "Help!" {
		t.Fatalf("expected view fields to show selection, got %v", s.Fields)
	}

	s, effects, err := Reduce(s, BeginAdd{}, cat)
	if err != nil || effects != nil {
		t.Fatalf("begin add: %v %v", effects, err)
	}
	if s.Mode != ModeAdd || s.Fields.HasData() {
		t.Fatalf("unexpected add state: %+v", s)
	}
	for _, f := range AllFields {
		if !s.Editable(f) {
			t.Fatalf("%s should be editable in add mode", f.Label())
		}
	}
}

func TestAcceptAddEmitsInsert(t *testing.T) {
	cat := newCatalog(help)
	s, _, _ := Reduce(Settle(State{}, cat), BeginAdd{}, cat)
	s = fill(t, s, cat, completeFields("B001"))

	s, effects, err := Reduce(s, Accept{}, cat)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if s.Mode != ModeView || s.Selected != "B001" {
		t.Fatalf("unexpected state after accept: %+v", s)
	}
	if len(effects) != 1 {
		t.Fatalf("expected one effect, got %v", effects)
	}
	ins, ok := effects[0].(InsertEffect)
	if !ok {
		t.Fatalf("expected InsertEffect, got %T", effects[0])
	}
	want := catalog.Song{Title: "Yesterday", ItemCode: "B001", Description: "Classic ballad", Artist: "The Beatles", Album: "Help!", Price: 1.29}
	if ins.Song != want {
		t.Fatalf("inserted %+v want %+v", ins.Song, want)
	}
}

func TestAddValidationOrder(t *testing.T) {
	cat := newCatalog()
	cases := []struct {
		name    string
		missing []Field
		field   Field
		message string
	}{
		{"all missing", AllFields, FieldTitle, "You must enter the song title."},
		{"code missing", []Field{FieldItemCode, FieldArtist}, FieldItemCode, "You must enter the item code."},
		{"description missing", []Field{FieldDescription, FieldPrice}, FieldDescription, "You must enter the song description."},
		{"artist missing", []Field{FieldArtist}, FieldArtist, "You must enter the artist name."},
		{"album missing", []Field{FieldAlbum, FieldPrice}, FieldAlbum, "You must enter the album name."},
		{"price missing", []Field{FieldPrice}, FieldPrice, "You must enter the song price."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			values := completeFields("B001")
			for _, f := range tc.missing {
				values[f] = "  "
			}
			s, _, _ := Reduce(State{}, BeginAdd{}, cat)
			s = fill(t, s, cat, values)

			next, effects, err := Reduce(s, Accept{}, cat)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tc.field || next.Message != tc.message {
				t.Fatalf("got field %s message %q", ve.Field.Label(), next.Message)
			}
			if next.Mode != ModeAdd || effects != nil {
				t.Fatalf("validation failure must not transition: %+v %v", next, effects)
			}
		})
	}
}

func TestAcceptRejectsNonNumericPrice(t *testing.T) {
	cat := newCatalog(help)
	s, _, _ := Reduce(Settle(State{}, cat), BeginAdd{}, cat)
	values := completeFields("B001")
	values[FieldPrice] = "abc"
	s = fill(t, s, cat, values)

	next, effects, err := Reduce(s, Accept{}, cat)
	var pe *PriceFormatError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PriceFormatError, got %v", err)
	}
	if pe.Input != "abc" {
		t.Fatalf("unexpected input: %q", pe.Input)
	}
	if next.Mode != ModeAdd || effects != nil {
		t.Fatalf("mode changed or effects emitted: %+v %v", next, effects)
	}
	if next.Message != "The price must be a number." {
		t.Fatalf("unexpected message %q", next.Message)
	}
}

func TestAcceptRejectsComma(t *testing.T) {
	cat := newCatalog()
	s, _, _ := Reduce(State{}, BeginAdd{}, cat)
	values := completeFields("B001")
	values[FieldDescription] = "Ballad, classic"
	s = fill(t, s, cat, values)

	_, _, err := Reduce(s, Accept{}, cat)
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != FieldDescription {
		t.Fatalf("expected comma validation error on description, got %v", err)
	}
}

func TestDuplicateCodeBlocksAccept(t *testing.T) {
	cat := newCatalog(help)
	s, _, _ := Reduce(Settle(State{}, cat), BeginAdd{}, cat)
	s = fill(t, s, cat, completeFields("A001"))
	if !s.AcceptBlocked || s.Message != duplicateMessage {
		t.Fatalf("expected duplicate block, got %+v", s)
	}

	next, effects, err := Reduce(s, Accept{}, cat)
	var dup *catalog.DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateKeyError, got %v", err)
	}
	if next.Mode != ModeAdd || effects != nil {
		t.Fatalf("duplicate must not commit: %+v %v", next, effects)
	}

	next, _, err = Reduce(next, SetField{Field: FieldItemCode, Value: "B001"}, cat)
	if err != nil {
		t.Fatal(err)
	}
	if next.AcceptBlocked || next.Message != "" {
		t.Fatalf("changing the code should unblock accept: %+v", next)
	}
}

func TestEditKeepsItemCodeReadOnly(t *testing.T) {
	cat := newCatalog(help)
	s, _, err := Reduce(Settle(State{}, cat), BeginEdit{}, cat)
	if err != nil {
		t.Fatal(err)
	}
	if s.Mode != ModeEdit || s.Fields[FieldTitle] != "Help!" || s.Fields[FieldPrice] != "0.99" {
		t.Fatalf("edit not pre-filled: %+v", s)
	}

	_, _, err = Reduce(s, SetField{Field: FieldItemCode, Value: "Z"}, cat)
	var ro *ReadOnlyError
	if !errors.As(err, &ro) {
		t.Fatalf("expected ReadOnlyError, got %v", err)
	}

	s, _, _ = Reduce(s, SetField{Field: FieldPrice, Value: "1.49"}, cat)
	s, effects, err := Reduce(s, Accept{}, cat)
	if err != nil {
		t.Fatal(err)
	}
	rep, ok := effects[0].(ReplaceEffect)
	if !ok || rep.Code != "A001" || rep.Song.Price != 1.49 || rep.Song.ItemCode != "A001" {
		t.Fatalf("unexpected effect: %+v", effects)
	}
	if s.Mode != ModeView {
		t.Fatalf("expected view mode, got %s", s.Mode)
	}
}

func TestEditAndDeleteRequireSelection(t *testing.T) {
	cat := newCatalog()
	for _, a := range []Action{BeginEdit{}, BeginDelete{}} {
		s, _, err := Reduce(State{}, a, cat)
		if !errors.Is(err, ErrNoSelection) {
			t.Fatalf("%T: expected ErrNoSelection, got %v", a, err)
		}
		if s.Mode != ModeView {
			t.Fatalf("%T: mode changed to %s", a, s.Mode)
		}
	}
}

func TestDeleteFlow(t *testing.T) {
	cat := newCatalog(help)
	s, _, err := Reduce(Settle(State{}, cat), BeginDelete{}, cat)
	if err != nil {
		t.Fatal(err)
	}
	if s.Mode != ModeDelete || s.Message != deletePrompt {
		t.Fatalf("unexpected delete state: %+v", s)
	}
	for _, f := range AllFields {
		if s.Editable(f) {
			t.Fatalf("%s editable in delete mode", f.Label())
		}
	}

	s, effects, err := Reduce(s, Accept{}, cat)
	if err != nil {
		t.Fatal(err)
	}
	if rm, ok := effects[0].(RemoveEffect); !ok || rm.Code != "A001" {
		t.Fatalf("unexpected effects %v", effects)
	}
	if s.Mode != ModeView {
		t.Fatalf("expected view, got %s", s.Mode)
	}
}

func TestCancelDiscards(t *testing.T) {
	cat := newCatalog(help)
	start := Settle(State{}, cat)
	for _, begin := range []Action{BeginAdd{}, BeginEdit{}, BeginDelete{}} {
		s, _, err := Reduce(start, begin, cat)
		if err != nil {
			t.Fatal(err)
		}
		if s.Editable(FieldTitle) {
			s, _, _ = Reduce(s, SetField{Field: FieldTitle, Value: "changed"}, cat)
		}
		s, effects, err := Reduce(s, Cancel{}, cat)
		if err != nil || effects != nil {
			t.Fatalf("%T cancel: %v %v", begin, effects, err)
		}
		if s != start {
			t.Fatalf("%T cancel: got %+v want %+v", begin, s, start)
		}
	}
}

func TestIllegalTransitions(t *testing.T) {
	cat := newCatalog(help)
	view := Settle(State{}, cat)
	add, _, _ := Reduce(view, BeginAdd{}, cat)

	cases := []struct {
		state  State
		action Action
	}{
		{view, Accept{}},
		{view, Cancel{}},
		{add, BeginAdd{}},
		{add, BeginEdit{}},
		{add, Exit{}},
		{add, Save{}},
		{add, Select{Code: "A001"}},
	}
	for _, tc := range cases {
		next, effects, err := Reduce(tc.state, tc.action, cat)
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("%s + %T: expected ErrIllegalTransition, got %v", tc.state.Mode, tc.action, err)
		}
		if next != tc.state || effects != nil {
			t.Fatalf("%s + %T: state changed", tc.state.Mode, tc.action)
		}
	}

	if _, _, err := Reduce(view, SetField{Field: FieldTitle, Value: "x"}, cat); err == nil {
		t.Fatal("expected view-mode field edit to fail")
	}
}

func TestExitEmitsSaveThenQuit(t *testing.T) {
	cat := newCatalog()
	_, effects, err := Reduce(State{}, Exit{}, cat)
	if err != nil {
		t.Fatal(err)
	}
	if len(effects) != 2 {
		t.Fatalf("expected 2 effects, got %v", effects)
	}
	if _, ok := effects[0].(SaveEffect); !ok {
		t.Fatalf("first effect %T", effects[0])
	}
	if _, ok := effects[1].(QuitEffect); !ok {
		t.Fatalf("second effect %T", effects[1])
	}
}
