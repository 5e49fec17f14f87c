package models

import "errors"

// Validation errors: caller mistakes, rejected before any state mutation.
var (
	ErrNoActiveSession    = errors.New("no active assessment session")
	ErrSessionComplete    = errors.New("assessment session is already complete")
	ErrSessionNotComplete = errors.New("assessment session is not complete yet")
	ErrUnknownScenario    = errors.New("unknown scenario id")
	ErrUnknownOption      = errors.New("unknown option id")
	ErrWrongScenario      = errors.New("answer targets a scenario other than the current one")
	ErrSelectionCount     = errors.New("selection count outside the scenario's bounds")
	ErrDuplicateSelection = errors.New("duplicate option id in selections")
	ErrNothingToRewind    = errors.New("no answer to rewind")
	ErrSubmissionInFlight = errors.New("a previous submission is still being applied")
)

// Catalog integrity errors: data problems that are fatal to the session.
var (
	ErrCatalogIntegrity = errors.New("catalog integrity violation")
	ErrEmptyCatalog     = errors.New("catalog has no usable entries")
)

// IsValidationError reports whether err is a caller error rather than a data
// or environment failure, so the API layer can map it to a 4xx status.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrNoActiveSession,
		ErrSessionComplete,
		ErrSessionNotComplete,
		ErrUnknownScenario,
		ErrUnknownOption,
		ErrWrongScenario,
		ErrSelectionCount,
		ErrDuplicateSelection,
		ErrNothingToRewind,
		ErrSubmissionInFlight,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
