// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package consensus

import "errors"

// ValidationError marks a request rejected before any store access:
// missing task identity, missing solution payload, or missing user
// identifier.
type ValidationError struct {
	msg string
}

func (e ValidationError) Error() string {
	return e.msg
}

func errMissing(field string) error {
	return ValidationError{msg: "missing " + field}
}

// IsValidation reports whether err is a ValidationError anywhere in its
// chain.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}
