package errors

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/giantswarm/microerror"

	"github.com/giantswarm/kubectl-scalex/config"
	"github.com/giantswarm/kubectl-scalex/kubectl"
	"github.com/giantswarm/kubectl-scalex/pkg/scaleargs"
	"github.com/giantswarm/kubectl-scalex/pkg/scaleexpr"
)

// Headline returns the single line describing err to the end user.
func Headline(err error) string {
	switch {
	case scaleargs.IsMissingName(err),
		scaleargs.IsMissingFlagValue(err),
		scaleargs.IsInvalidReplicas(err),
		scaleargs.IsMissingTarget(err),
		scaleargs.IsMissingScaleOperation(err):
		// These messages are part of the command line interface.
		return err.Error()
	case kubectl.IsNotFoundError(err):
		return "kubectl does not appear to be installed, see https://kubernetes.io/docs/tasks/tools/ for installation instructions"
	case kubectl.IsMalformedOutputError(err):
		return "failed to get number of replicas: " + details(err)
	case kubectl.IsCommandFailedError(err):
		return "kubectl command failed: " + details(err)
	case config.IsInvalidConfigFileError(err):
		return "could not read configuration file " + config.ConfigFilePath + ": " + details(err)
	case config.IsInvalidEnvironmentError(err):
		return "invalid environment variable: " + details(err)
	case scaleexpr.IsOutOfRange(err):
		return "replica count out of range: " + details(err)
	case IsNegativeReplicasError(err):
		return "cannot scale below zero replicas: " + details(err)
	}

	return err.Error()
}

// details returns the annotation given to err when it was masked, without
// the text of the underlying error kind.
func details(err error) string {
	message := err.Error()
	kindMessage := microerror.Cause(err).Error()

	if message == kindMessage {
		return message
	}
	return strings.TrimPrefix(message, kindMessage+": ")
}

// HandleError prints the headline for err to stderr and exits the process
// with status 1. Nothing is printed if the usage text has already been shown.
func HandleError(err error) {
	if err == nil {
		return
	}

	if !IsHelpShownError(err) {
		fmt.Fprintln(os.Stderr, color.RedString(Headline(err)))
	}
	os.Exit(1)
}
