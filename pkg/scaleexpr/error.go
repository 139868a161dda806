package scaleexpr

import (
	"github.com/giantswarm/microerror"
)

// OutOfRangeError means applying an expression gives a replica count that
// does not fit the int32 replica field of a Kubernetes workload.
var OutOfRangeError = &microerror.Error{
	Kind: "OutOfRangeError",
}

// IsOutOfRange asserts OutOfRangeError.
func IsOutOfRange(err error) bool {
	return microerror.Cause(err) == OutOfRangeError
}
