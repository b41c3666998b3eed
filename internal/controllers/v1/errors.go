package v1

import (
	"errors"
	"net/http"

	"github.com/wiw0411-bot/tennisforum/internal/httputil"
	"github.com/wiw0411-bot/tennisforum/internal/ledger"
	"github.com/wiw0411-bot/tennisforum/internal/schedule"
)

type httpError struct {
	Error string `json:"error" example:"there is no rate profile matching the ID"`
}

var errDateInvalid = errors.New("the date must be in YYYY-MM-DD format")

// status returns the HTTP status matching an error from the ledgers or
// the request parsing.
func status(err error) int {
	switch {
	case errors.Is(err, ledger.ErrProfileNotFound),
		errors.Is(err, ledger.ErrNoteNotFound):
		return http.StatusNotFound

	case errors.Is(err, ledger.ErrNoIdentity):
		return http.StatusUnauthorized

	case errors.Is(err, ledger.ErrProfileNameEmpty),
		errors.Is(err, ledger.ErrNoteMemoEmpty),
		errors.Is(err, ledger.ErrNoteTypeInvalid),
		errors.Is(err, schedule.ErrDurationInvalid),
		errors.Is(err, schedule.ErrLessonTypeInvalid),
		errors.Is(err, schedule.ErrCountNegative),
		errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, httputil.ErrInvalidUUID),
		errors.Is(err, errDateInvalid):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
