package errs

import (
	cr "github.com/cockroachdb/errors"
)

// New returns an error with a captured stack trace.
func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Wrap annotates err with msg, preserving the original cause.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark associates err with a sentinel without losing the underlying
// cause. Marks are visible only to Is below, not to stdlib errors.Is,
// so every sentinel check on a marked error must go through Is.
func Mark(err error, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return cr.Mark(err, sentinel)
}

// Is reports whether err matches target anywhere in its chain,
// including sentinels attached via Mark.
func Is(err, target error) bool {
	return cr.Is(err, target)
}
