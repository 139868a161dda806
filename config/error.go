package config

import "github.com/giantswarm/microerror"

// invalidConfigFileError means the config file exists but cannot be parsed.
var invalidConfigFileError = &microerror.Error{
	Kind: "invalidConfigFileError",
}

// IsInvalidConfigFileError asserts invalidConfigFileError.
func IsInvalidConfigFileError(err error) bool {
	return microerror.Cause(err) == invalidConfigFileError
}

// invalidEnvironmentError means an environment variable has a value we
// cannot interpret.
var invalidEnvironmentError = &microerror.Error{
	Kind: "invalidEnvironmentError",
}

// IsInvalidEnvironmentError asserts invalidEnvironmentError.
func IsInvalidEnvironmentError(err error) bool {
	return microerror.Cause(err) == invalidEnvironmentError
}
