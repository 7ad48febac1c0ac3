package sender

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Kind is a stable category for programmatic error handling.
// Callers should branch on Kind/RuleID rather than matching error strings.
type Kind string

const (
	// KindAuthorization: the signer is not the authority the claimed program would hold.
	KindAuthorization Kind = "Authorization"
	// KindOrigin: the call origin is missing or not one of Direct/Relayed.
	KindOrigin Kind = "Origin"
	// KindDerivation: the address deriver failed.
	KindDerivation Kind = "Derivation"
)

const (
	RuleAuthorization = "SENDER-AUTH-001"
	RuleOrigin        = "SENDER-ORIGIN-001"
	RuleDerivation    = "SENDER-DERIVE-001"
)

// Error is the package's structured error type.
//
// For KindAuthorization, Caller, Program and Expected describe the rejected
// claim. Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
	Cause   error

	Caller   solana.PublicKey
	Program  solana.PublicKey
	Expected solana.PublicKey
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

func wrapError(kind Kind, ruleID, msg string, cause error) error {
	if cause == nil {
		return newError(kind, ruleID, msg)
	}
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
}

func authorizationError(caller, program, expected solana.PublicKey) error {
	return &Error{
		Kind:     KindAuthorization,
		RuleID:   RuleAuthorization,
		Message:  fmt.Sprintf("sender %s is not the sender authority %s of program %s", caller, expected, program),
		Caller:   caller,
		Program:  program,
		Expected: expected,
	}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// IsAuthorization reports whether err rejects a program identity claim.
func IsAuthorization(err error) bool { return IsKind(err, KindAuthorization) }

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}
