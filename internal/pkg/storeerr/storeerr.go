// Package storeerr defines the typed failure taxonomy every store operation
// reports through. Callers branch on the sentinel values with errors.Is; the
// web layer decides how each category is rendered.
package storeerr

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var (
	// ErrValidation marks a required field missing or malformed before the
	// row ever reached the store.
	ErrValidation = errors.New("validation failed")
	// ErrConflict marks a unique-constraint violation (duplicate email,
	// slug, or engagement pair).
	ErrConflict = errors.New("conflict")
	// ErrReference marks a foreign-key violation: the referenced user or
	// article does not exist.
	ErrReference = errors.New("reference not found")
	// ErrNotFound marks an operation targeting a non-existent row.
	ErrNotFound = errors.New("not found")
	// ErrTransient marks a connection or transaction failure. Retrying is
	// the caller's call; the store itself never retries.
	ErrTransient = errors.New("transient store failure")
)

func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func Conflict(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func Reference(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrReference, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// classified reports whether err already carries one of the taxonomy
// sentinels, so From never double-wraps.
func classified(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrReference) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrTransient)
}

// From folds a low-level error into the taxonomy. GORM's translated driver
// errors map onto Conflict/Reference/NotFound; validator errors onto
// Validation; everything else is treated as transient.
func From(err error) error {
	if err == nil {
		return nil
	}
	if classified(err) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrReference, err)
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return fmt.Errorf("%w: %v", ErrTransient, err)
}
