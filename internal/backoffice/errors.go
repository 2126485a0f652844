// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package backoffice

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed validation attempt. A rejected credential pair is
// not an error and has no kind.
type ErrorKind int

const (
	// InvalidInput means neither a username nor a password was supplied.
	InvalidInput ErrorKind = iota + 1
	// MalformedTarget means the configured back-office URL does not parse.
	MalformedTarget
	// Unreachable means the request never produced a response (DNS, refused, TLS, timeout).
	Unreachable
	// MalformedUpstreamResponse means the back office answered 200 with a body that is not a JSON object.
	MalformedUpstreamResponse
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case MalformedTarget:
		return "malformed target"
	case Unreachable:
		return "unreachable"
	case MalformedUpstreamResponse:
		return "malformed upstream response"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Sentinels for errors.Is comparisons; only the kind is compared.
var (
	ErrInvalidInput              = &ValidationError{Kind: InvalidInput}
	ErrMalformedTarget           = &ValidationError{Kind: MalformedTarget}
	ErrUnreachable               = &ValidationError{Kind: Unreachable}
	ErrMalformedUpstreamResponse = &ValidationError{Kind: MalformedUpstreamResponse}
)

// ValidationError is returned for every failure of Validate. Target and Body are
// already redacted and safe to log.
type ValidationError struct {
	Kind   ErrorKind
	Target string
	Body   string
	Err    error
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case InvalidInput:
		return "invalid username and/or password: both are absent"
	case MalformedTarget:
		return fmt.Sprintf("URL is malformed: %s (%v)", e.Target, e.Err)
	case Unreachable:
		return fmt.Sprintf("cannot connect to back office at %s (%v)", e.Target, e.Err)
	case MalformedUpstreamResponse:
		return fmt.Sprintf("error parsing back office response from %s: %v; body: %q", e.Target, e.Err, RedactSecrets(e.Body))
	default:
		return fmt.Sprintf("credential validation failed: %v", e.Err)
	}
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Is reports whether target is a ValidationError of the same kind.
func (e *ValidationError) Is(target error) bool {
	var t *ValidationError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first ValidationError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind, true
	}
	return 0, false
}
