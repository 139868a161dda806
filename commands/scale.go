package commands

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	"github.com/spf13/cobra"

	"github.com/giantswarm/kubectl-scalex/buildinfo"
	"github.com/giantswarm/kubectl-scalex/commands/errors"
	"github.com/giantswarm/kubectl-scalex/config"
	"github.com/giantswarm/kubectl-scalex/kubectl"
	"github.com/giantswarm/kubectl-scalex/pkg/scaleargs"
	"github.com/giantswarm/kubectl-scalex/pkg/scaleexpr"
)

// Arguments contains all arguments that influence the business function.
type Arguments struct {
	dryRun           bool
	expression       scaleexpr.Expression
	helpRequested    bool
	ignored          []string
	kubectlBinary    string
	passthroughFlags []string
	target           string
	verbose          bool
}

// Result is the resulting data we get from our business function.
type Result struct {
	// command is the kubectl invocation setting the new replica count.
	command        string
	dryRun         bool
	replicasAfter  int
	replicasBefore int
}

// collectArguments classifies the raw command line and combines it with
// the configuration.
func collectArguments(rawArgs []string) (Arguments, error) {
	parsed, err := scaleargs.Parse(rawArgs)
	if err != nil {
		return Arguments{}, err
	}

	args := Arguments{
		dryRun:           parsed.DryRun,
		helpRequested:    parsed.HelpRequested,
		ignored:          parsed.Ignored,
		kubectlBinary:    config.Config.Kubectl,
		passthroughFlags: parsed.PassthroughFlags,
		target:           parsed.Target,
		verbose:          config.Config.Verbose,
	}
	if parsed.Expression != nil {
		args.expression = *parsed.Expression
	}

	return args, nil
}

func newLogger(verbose bool) (micrologger.Logger, error) {
	c := micrologger.Config{
		IOWriter: ioutil.Discard,
	}
	if verbose {
		c.IOWriter = os.Stderr
	}

	logger, err := micrologger.New(c)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	return logger, nil
}

func newKubectl(args Arguments) (*kubectl.Kubectl, micrologger.Logger, error) {
	logger, err := newLogger(args.verbose)
	if err != nil {
		return nil, nil, microerror.Mask(err)
	}

	k, err := kubectl.New(kubectl.Config{
		Binary: args.kubectlBinary,
		Logger: logger,
	})
	if err != nil {
		return nil, nil, microerror.Mask(err)
	}

	return k, logger, nil
}

// verifyPreconditions checks that kubectl can be executed.
func verifyPreconditions(args Arguments) error {
	k, _, err := newKubectl(args)
	if err != nil {
		return microerror.Mask(err)
	}

	err = k.CheckBinary()
	if err != nil {
		return microerror.Mask(err)
	}

	return nil
}

// scale reads the current replica count, applies the scaling expression and,
// unless in dry-run mode, sets the new replica count.
func scale(ctx context.Context, args Arguments) (*Result, error) {
	k, logger, err := newKubectl(args)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	logger.LogCtx(ctx, "level", "debug", "message", buildinfo.Summary())
	for _, a := range args.ignored {
		logger.LogCtx(ctx, "level", "debug", "message", fmt.Sprintf("ignoring unrecognized argument %q", a))
	}

	current, err := k.GetReplicas(ctx, args.passthroughFlags, args.target)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	desired, err := args.expression.Apply(current)
	if err != nil {
		return nil, microerror.Mask(err)
	}
	logger.LogCtx(ctx, "level", "debug", "message", fmt.Sprintf("applied %s to %d replicas", args.expression, current), "result", desired)

	if desired < 0 {
		return nil, microerror.Maskf(errors.NegativeReplicasError, "%s would scale %s from %d to %d", args.expression, args.target, current, desired)
	}

	result := &Result{
		command:        k.CommandLine(kubectl.ScaleArgs(args.passthroughFlags, args.target, desired)),
		dryRun:         args.dryRun,
		replicasAfter:  desired,
		replicasBefore: current,
	}

	if args.dryRun {
		return result, nil
	}

	err = k.Scale(ctx, args.passthroughFlags, args.target, desired)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	return result, nil
}

// runScale is the business function of the root command. Errors are
// returned to the caller, which prints them and sets the exit code.
func runScale(cmd *cobra.Command, rawArgs []string) error {
	args, err := collectArguments(rawArgs)
	if err != nil {
		return err
	}

	if args.helpRequested {
		fmt.Fprint(os.Stderr, usage())
		return microerror.Mask(errors.HelpShownError)
	}

	err = verifyPreconditions(args)
	if err != nil {
		return microerror.Mask(err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := scale(ctx, args)
	if err != nil {
		return microerror.Mask(err)
	}

	printResult(result)

	return nil
}

// printResult prints the dry-run report. A real run prints nothing.
func printResult(result *Result) {
	if !result.dryRun {
		return
	}

	fmt.Fprintf(os.Stderr, "would scale from %d to %d\n", result.replicasBefore, result.replicasAfter)
	fmt.Fprintln(os.Stderr, result.command)
}

func usage() string {
	return scaleargs.Usage() + "\n" + buildinfo.Summary() + "\n"
}
