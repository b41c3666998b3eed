// Package lessons implements the lesson tariff domain and the revenue
// computation over it.
package lessons

// Type is the kind of lesson offered.
type Type string

const (
	TypePrivate Type = "private"
	TypeDuet    Type = "duet"
	TypeMagic   Type = "magic"
	TypeGroup   Type = "group"
	TypeOther   Type = "other"
)

// Types returns all lesson types. The computation engine and rate
// normalization iterate over exactly this list, keeping the enum closed.
func Types() []Type {
	return []Type{TypePrivate, TypeDuet, TypeMagic, TypeGroup, TypeOther}
}

// Valid reports whether t is a known lesson type.
func (t Type) Valid() bool {
	switch t {
	case TypePrivate, TypeDuet, TypeMagic, TypeGroup, TypeOther:
		return true
	}
	return false
}

// NoteType is the category of a daily note.
type NoteType string

const (
	NoteTypeWork        NoteType = "work"
	NoteTypeNoShow      NoteType = "noShow"
	NoteTypeMakeupClass NoteType = "makeupClass"
	NoteTypeSpecialNote NoteType = "specialNote"
)

// Valid reports whether n is a known note type.
func (n NoteType) Valid() bool {
	switch n {
	case NoteTypeWork, NoteTypeNoShow, NoteTypeMakeupClass, NoteTypeSpecialNote:
		return true
	}
	return false
}

// IncomeType is how a rate is charged. The forms only produce hourly
// rates today, split rates round-trip through the store unchanged.
type IncomeType string

const (
	IncomeHourly IncomeType = "hourly"
	IncomeSplit  IncomeType = "split"
)

// Duration is the length of a single lesson in minutes.
type Duration int

const (
	Duration20 Duration = 20
	Duration30 Duration = 30
	Duration60 Duration = 60
)

// Durations returns the selectable lesson durations.
func Durations() []Duration {
	return []Duration{Duration20, Duration30, Duration60}
}

// Valid reports whether d is a selectable duration.
func (d Duration) Valid() bool {
	switch d {
	case Duration20, Duration30, Duration60:
		return true
	}
	return false
}

// Counts holds the number of lessons taught per type on one day.
type Counts map[Type]int64

// Total returns the overall number of lessons.
func (c Counts) Total() int64 {
	var total int64
	for _, t := range Types() {
		total += c[t]
	}
	return total
}
