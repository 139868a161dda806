// Package errors defines errors that can occur in command/input validation and
// execution and ways to handle those.
package errors

import (
	"github.com/giantswarm/microerror"
)

// HelpShownError means the usage text has been printed instead of doing
// anything. The process must exit with a non-zero status, but no further
// message is printed.
var HelpShownError = &microerror.Error{
	Kind: "HelpShownError",
}

// IsHelpShownError asserts HelpShownError.
func IsHelpShownError(err error) bool {
	return microerror.Cause(err) == HelpShownError
}

// NegativeReplicasError means the scaling expression would result in a
// replica count below zero.
var NegativeReplicasError = &microerror.Error{
	Kind: "NegativeReplicasError",
}

// IsNegativeReplicasError asserts NegativeReplicasError.
func IsNegativeReplicasError(err error) bool {
	return microerror.Cause(err) == NegativeReplicasError
}
