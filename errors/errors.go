// Package errors provides the error helpers shared by the uuidx packages.
// It builds on the standard errors package and adds multi-error support via go-multierror.
package errors

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// New creates a new error with the given message.
// Returns nil if msg is empty, following errors.New behavior.
func New(msg string) error {
	if msg == "" {
		return nil
	}
	return errors.New(msg)
}

// Errorf creates a formatted error with the given message and arguments.
// Use %w in the format string to wrap another error.
func Errorf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// Wrap wraps an error with a message, preserving the original as a cause.
// If err is nil, returns nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Reclassify reports err under kind. The cause is kept in the message only,
// so errors.Is matches kind but no longer matches the original error.
func Reclassify(kind, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", kind, err)
}

// Append combines multiple errors into a single multi-error.
// Returns nil if all errors are nil.
func Append(err error, errs ...error) error {
	var merr *multierror.Error
	merr = multierror.Append(merr, err)
	merr = multierror.Append(merr, errs...)
	merr.ErrorFormat = listFormat
	return merr.ErrorOrNil()
}

// Len returns the number of errors aggregated in err.
func Len(err error) int {
	if err == nil {
		return 0
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		return merr.Len()
	}
	return 1
}

// Is reports whether err or any error in its chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

func listFormat(errs []error) string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	msg := fmt.Sprintf("%d problems:", len(errs))
	for _, err := range errs {
		msg += " " + err.Error() + ";"
	}
	return msg[:len(msg)-1]
}
