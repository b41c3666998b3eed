// Package ledger implements the three user-scoped stores of the schedule
// feature: rate profiles, daily revenue entries and daily notes.
//
// Every store takes the persistence port and the owning user id at
// construction. A store built without an identity is inert: reads return
// empty collections, writes fail with ErrNoIdentity.
package ledger

import "errors"

var (
	ErrNoIdentity       = errors.New("no user identity, sign in to save schedule data")
	ErrProfileNameEmpty = errors.New("the location name must not be empty")
	ErrProfileNotFound  = errors.New("there is no location with the specified ID")
	ErrNoteMemoEmpty    = errors.New("the note memo must not be empty")
	ErrNoteTypeInvalid  = errors.New("the note type is not valid")
	ErrNoteNotFound     = errors.New("there is no note with the specified ID on this date")
)
