package kubectl

import "github.com/giantswarm/microerror"

var invalidConfigError = &microerror.Error{
	Kind: "invalidConfigError",
}

// IsInvalidConfig asserts invalidConfigError.
func IsInvalidConfig(err error) bool {
	return microerror.Cause(err) == invalidConfigError
}

// NotFoundError means the kubectl binary could not be found.
var NotFoundError = &microerror.Error{
	Kind: "NotFoundError",
}

// IsNotFoundError asserts NotFoundError.
func IsNotFoundError(err error) bool {
	return microerror.Cause(err) == NotFoundError
}

// CommandFailedError means kubectl could not be started or exited with a
// non-zero status.
var CommandFailedError = &microerror.Error{
	Kind: "CommandFailedError",
}

// IsCommandFailedError asserts CommandFailedError.
func IsCommandFailedError(err error) bool {
	return microerror.Cause(err) == CommandFailedError
}

// MalformedOutputError means kubectl printed something we cannot read a
// replica count from.
var MalformedOutputError = &microerror.Error{
	Kind: "MalformedOutputError",
}

// IsMalformedOutputError asserts MalformedOutputError.
func IsMalformedOutputError(err error) bool {
	return microerror.Cause(err) == MalformedOutputError
}
