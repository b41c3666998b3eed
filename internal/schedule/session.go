package schedule

import (
	"time"

	"github.com/wiw0411-bot/tennisforum/internal/ledger"
	"github.com/wiw0411-bot/tennisforum/internal/lessons"
	"github.com/wiw0411-bot/tennisforum/internal/types"
)

// Overlay identifies the modal workflow layered over the calendar.
// At most one overlay is open at a time, opening one closes the others.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayLocationPicker
	OverlayRateSetup
	OverlayRevenueEntry
)

// NoteDraft is the note form state while a note is being added or edited.
type NoteDraft struct {
	ID   string // empty for a new note
	Type lessons.NoteType
	Memo string
}

// Session is the in-memory view state of one schedule screen: the
// displayed month, the selected day and the modal overlays. It performs
// no I/O, the caller persists through the Controller and reports back.
type Session struct {
	month       types.Month
	selectedDay int // 0 when no day is selected

	overlay       Overlay
	returnOverlay Overlay // overlay to restore when rate setup closes
	editingNote   bool
	noteDraft     NoteDraft

	entryLocationID string // location chosen for revenue entry
	editedProfileID string // profile being edited in rate setup, empty for new

	now func() time.Time
}

// NewSession returns a session showing the current month with today
// pre-selected.
func NewSession() *Session {
	return NewSessionAt(time.Now)
}

// NewSessionAt is NewSession with an explicit clock.
func NewSessionAt(now func() time.Time) *Session {
	s := &Session{now: now}
	s.month = types.MonthOf(now())
	s.selectedDay = types.DateOf(now()).Day()
	return s
}

// Month returns the displayed month.
func (s *Session) Month() types.Month {
	return s.month
}

// SelectedDay returns the selected day of the month, 0 if none.
func (s *Session) SelectedDay() int {
	return s.selectedDay
}

// SelectedDate returns the selected date, false if no day is selected.
func (s *Session) SelectedDate() (types.Date, bool) {
	if s.selectedDay == 0 {
		return types.Date{}, false
	}
	return s.month.Date(s.selectedDay), true
}

// Overlay returns the open overlay.
func (s *Session) Overlay() Overlay {
	return s.overlay
}

// EditingNote reports whether the note form is open.
func (s *Session) EditingNote() bool {
	return s.editingNote
}

// NoteDraft returns the current note form state.
func (s *Session) NoteDraft() NoteDraft {
	return s.noteDraft
}

// EntryLocationID returns the location the revenue entry form is open for.
func (s *Session) EntryLocationID() string {
	return s.entryLocationID
}

// EditedProfileID returns the profile the rate setup form edits, empty
// when it creates a new one.
func (s *Session) EditedProfileID() string {
	return s.editedProfileID
}

// ChangeMonth shifts the displayed month by delta months and clears the
// day selection. When the new month is the real current month and no
// day is selected, today is selected again.
func (s *Session) ChangeMonth(delta int) {
	s.month = s.month.AddDate(0, delta)
	s.selectedDay = 0
	s.editingNote = false

	current := types.MonthOf(s.now())
	if s.month.Equal(current) && s.selectedDay == 0 {
		s.selectedDay = types.DateOf(s.now()).Day()
	}
}

// SelectDay selects a day in the displayed month and closes an open
// note form. Days outside the month are ignored.
func (s *Session) SelectDay(day int) {
	if day < 1 || day > s.month.Days() {
		return
	}
	s.selectedDay = day
	s.editingNote = false
}

// OpenLocationPicker opens the location picker. Requires a selected day.
func (s *Session) OpenLocationPicker() {
	if s.selectedDay == 0 {
		return
	}
	s.setOverlay(OverlayLocationPicker)
}

// ChooseLocation picks an existing location in the picker and opens the
// revenue entry form for it.
func (s *Session) ChooseLocation(locationID string) {
	s.entryLocationID = locationID
	s.setOverlay(OverlayRevenueEntry)
}

// OpenRateSetup opens the tariff form. With a profile it edits in
// place, without one it creates a new profile. Closing returns to the
// overlay that invoked it.
func (s *Session) OpenRateSetup(profile *ledger.RateProfile) {
	s.editedProfileID = ""
	if profile != nil {
		s.editedProfileID = profile.ID
	}

	s.returnOverlay = OverlayNone
	if s.overlay == OverlayLocationPicker {
		s.returnOverlay = OverlayLocationPicker
	}
	s.setOverlay(OverlayRateSetup)
}

// CloseOverlay closes the open overlay after a save or cancel. Rate
// setup returns to the overlay that invoked it, everything else returns
// to the day view.
func (s *Session) CloseOverlay() {
	if s.overlay == OverlayRateSetup && s.returnOverlay != OverlayNone {
		s.setOverlay(s.returnOverlay)
		s.returnOverlay = OverlayNone
		return
	}

	s.entryLocationID = ""
	s.editedProfileID = ""
	s.setOverlay(OverlayNone)
}

// AddNote opens the note form with a blank draft.
func (s *Session) AddNote() {
	if s.selectedDay == 0 {
		return
	}
	s.noteDraft = NoteDraft{Type: lessons.NoteTypeWork}
	s.editingNote = true
}

// EditNote opens the note form prefilled with an existing note.
func (s *Session) EditNote(note ledger.Note) {
	if s.selectedDay == 0 {
		return
	}
	s.noteDraft = NoteDraft{ID: note.ID, Type: note.Type, Memo: note.Memo}
	s.editingNote = true
}

// SetNoteDraft updates the note form state.
func (s *Session) SetNoteDraft(draft NoteDraft) {
	s.noteDraft = draft
}

// CloseNote closes the note form after a save or cancel.
func (s *Session) CloseNote() {
	s.editingNote = false
	s.noteDraft = NoteDraft{}
}

// setOverlay opens one overlay and closes everything else, keeping the
// overlays mutually exclusive by construction.
func (s *Session) setOverlay(overlay Overlay) {
	s.overlay = overlay
	s.editingNote = false
}
