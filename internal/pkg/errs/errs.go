package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err matches reference. Unlike the standard library it
// also sees marks applied with Mark, so callers matching usecase sentinels
// must use this instead of errors.Is.
func Is(err error, reference error) bool {
	return cr.Is(err, reference)
}
