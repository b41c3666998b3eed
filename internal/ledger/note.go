package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/wiw0411-bot/tennisforum/internal/docstore"
	"github.com/wiw0411-bot/tennisforum/internal/lessons"
	"github.com/wiw0411-bot/tennisforum/internal/types"
)

// Note is a free-text annotation on one calendar date.
type Note struct {
	ID   string           `json:"id"`
	Type lessons.NoteType `json:"type" example:"work"`
	Memo string           `json:"memo" example:"Court 3 closed for maintenance"`
}

// Notes stores the daily notes of one user, one document per date
// holding the list of notes in insertion order.
type Notes struct {
	store  docstore.Store
	userID string
}

// NewNotes returns the note ledger for a user.
func NewNotes(store docstore.Store, userID string) *Notes {
	return &Notes{store: store, userID: userID}
}

type noteDocument struct {
	Entries []Note `json:"entries"`
}

// ForDate returns the notes for a date in stored order.
func (n *Notes) ForDate(ctx context.Context, date types.Date) ([]Note, error) {
	if n.userID == "" {
		return []Note{}, nil
	}

	data, err := n.store.Get(ctx, n.userID, docstore.CollectionNotes, date.String())
	if errors.Is(err, docstore.ErrNotFound) {
		return []Note{}, nil
	}
	if err != nil {
		return nil, err
	}

	var doc noteDocument
	err = json.Unmarshal(data, &doc)
	if err != nil {
		return nil, err
	}

	return doc.Entries, nil
}

// Append validates and adds a new note to the date.
func (n *Notes) Append(ctx context.Context, date types.Date, noteType lessons.NoteType, memo string) (Note, error) {
	if n.userID == "" {
		return Note{}, ErrNoIdentity
	}

	note := Note{
		ID:   uuid.NewString(),
		Type: noteType,
		Memo: strings.TrimSpace(memo),
	}

	err := validateNote(note)
	if err != nil {
		return Note{}, err
	}

	existing, err := n.ForDate(ctx, date)
	if err != nil {
		return Note{}, err
	}

	err = n.write(ctx, date, append(existing, note))
	if err != nil {
		return Note{}, err
	}

	return note, nil
}

// Update replaces the type and memo of an existing note.
func (n *Notes) Update(ctx context.Context, date types.Date, noteID string, noteType lessons.NoteType, memo string) (Note, error) {
	if n.userID == "" {
		return Note{}, ErrNoIdentity
	}

	note := Note{
		ID:   noteID,
		Type: noteType,
		Memo: strings.TrimSpace(memo),
	}

	err := validateNote(note)
	if err != nil {
		return Note{}, err
	}

	existing, err := n.ForDate(ctx, date)
	if err != nil {
		return Note{}, err
	}

	found := false
	for i, e := range existing {
		if e.ID == noteID {
			existing[i] = note
			found = true
			break
		}
	}
	if !found {
		return Note{}, ErrNoteNotFound
	}

	err = n.write(ctx, date, existing)
	if err != nil {
		return Note{}, err
	}

	return note, nil
}

// Delete removes one note. If it was the last note of the date, the
// date document itself is removed.
func (n *Notes) Delete(ctx context.Context, date types.Date, noteID string) error {
	if n.userID == "" {
		return ErrNoIdentity
	}

	existing, err := n.ForDate(ctx, date)
	if err != nil {
		return err
	}

	remaining := make([]Note, 0, len(existing))
	found := false
	for _, e := range existing {
		if e.ID == noteID {
			found = true
			continue
		}
		remaining = append(remaining, e)
	}
	if !found {
		return ErrNoteNotFound
	}

	if len(remaining) == 0 {
		return n.store.Delete(ctx, n.userID, docstore.CollectionNotes, date.String())
	}

	return n.write(ctx, date, remaining)
}

// DatesWithNotes returns every date in the month that has at least one
// note. Used for the note markers in the calendar grid.
func (n *Notes) DatesWithNotes(ctx context.Context, month types.Month) (map[types.Date]struct{}, error) {
	dates := make(map[types.Date]struct{})
	if n.userID == "" {
		return dates, nil
	}

	keys, err := n.store.Keys(ctx, n.userID, docstore.CollectionNotes, month.KeyPattern())
	if err != nil {
		return nil, err
	}

	for _, key := range keys {
		date, err := types.ParseDate(key)
		if err != nil {
			continue
		}
		dates[date] = struct{}{}
	}

	return dates, nil
}

func validateNote(note Note) error {
	if note.Memo == "" {
		return ErrNoteMemoEmpty
	}
	if !note.Type.Valid() {
		return ErrNoteTypeInvalid
	}
	return nil
}

func (n *Notes) write(ctx context.Context, date types.Date, notes []Note) error {
	data, err := json.Marshal(noteDocument{Entries: notes})
	if err != nil {
		return err
	}

	return n.store.Set(ctx, n.userID, docstore.CollectionNotes, date.String(), data)
}
