package scaleargs

import (
	"errors"
	"fmt"
)

// ErrorKind identifies why an argument list could not be classified.
type ErrorKind int

const (
	// MissingName means a bare "deployment" or "statefulset" keyword was not
	// followed by a resource name.
	MissingName ErrorKind = iota + 1
	// MissingFlagValue means a flag requiring a value was the last argument.
	MissingFlagValue
	// InvalidReplicas means the value given to --replicas is not an integer.
	InvalidReplicas
	// MissingTarget means no deployment or statefulset has been named.
	MissingTarget
	// MissingScaleOperation means neither a scaling expression nor
	// --replicas has been given.
	MissingScaleOperation
)

// Error is returned by Parse. Token holds the keyword, flag or value the
// error refers to, if any.
type Error struct {
	Kind  ErrorKind
	Token string
}

func (e *Error) Error() string {
	switch e.Kind {
	case MissingName:
		return fmt.Sprintf("expected name for %s", e.Token)
	case MissingFlagValue:
		return fmt.Sprintf("expected value for %s", e.Token)
	case InvalidReplicas:
		return fmt.Sprintf("invalid value for %s %s", replicasFlag, e.Token)
	case MissingTarget:
		return "missing target (deployment or statefulset)"
	case MissingScaleOperation:
		return "scaling operation was not specified"
	}
	return fmt.Sprintf("unknown argument error %d", int(e.Kind))
}

func kindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Kind
	}
	return 0
}

// IsMissingName asserts MissingName.
func IsMissingName(err error) bool {
	return kindOf(err) == MissingName
}

// IsMissingFlagValue asserts MissingFlagValue.
func IsMissingFlagValue(err error) bool {
	return kindOf(err) == MissingFlagValue
}

// IsInvalidReplicas asserts InvalidReplicas.
func IsInvalidReplicas(err error) bool {
	return kindOf(err) == InvalidReplicas
}

// IsMissingTarget asserts MissingTarget.
func IsMissingTarget(err error) bool {
	return kindOf(err) == MissingTarget
}

// IsMissingScaleOperation asserts MissingScaleOperation.
func IsMissingScaleOperation(err error) bool {
	return kindOf(err) == MissingScaleOperation
}
