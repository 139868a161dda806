// Package kubectl runs the kubectl binary to read and change the replica
// count of a workload.
package kubectl

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
)

const (
	// DefaultBinary is the name of the kubectl executable looked up in PATH.
	DefaultBinary = "kubectl"

	// replicasColumns makes "kubectl get" print nothing but .spec.replicas.
	replicasColumns = "custom-columns=REPLICAS:.spec.replicas"
)

// Config configures a Kubectl.
type Config struct {
	// Binary is the kubectl executable. Defaults to DefaultBinary.
	Binary string
	Logger micrologger.Logger
}

// Kubectl executes kubectl commands. Global kubectl flags like --namespace
// are given per call and placed in front of the subcommand.
type Kubectl struct {
	binary string
	logger micrologger.Logger
}

// New creates a Kubectl.
func New(config Config) (*Kubectl, error) {
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}
	if config.Binary == "" {
		config.Binary = DefaultBinary
	}

	k := &Kubectl{
		binary: config.Binary,
		logger: config.Logger,
	}

	return k, nil
}

// CheckBinary returns NotFoundError if the kubectl binary cannot be found.
func (k *Kubectl) CheckBinary() error {
	_, err := exec.LookPath(k.binary)
	if err != nil {
		return microerror.Maskf(NotFoundError, "%s does not appear to be installed", k.binary)
	}
	return nil
}

// GetArgs returns the kubectl arguments used to read the replica count of
// target.
func GetArgs(flags []string, target string) []string {
	args := append([]string{}, flags...)
	return append(args, "get", target, "-o", replicasColumns, "--no-headers")
}

// ScaleArgs returns the kubectl arguments used to set the replica count of
// target.
func ScaleArgs(flags []string, target string, replicas int) []string {
	args := append([]string{}, flags...)
	return append(args, "scale", target, "--replicas", strconv.Itoa(replicas))
}

// CommandLine renders args as a kubectl invocation that can be pasted into a
// POSIX shell, e.g. for dry runs.
func (k *Kubectl) CommandLine(args []string) string {
	return shellescape.QuoteCommand(append([]string{k.binary}, args...))
}

// GetReplicas returns the number of replicas target is configured with.
func (k *Kubectl) GetReplicas(ctx context.Context, flags []string, target string) (int, error) {
	out, err := k.run(ctx, GetArgs(flags, target))
	if err != nil {
		return 0, microerror.Mask(err)
	}

	trimmed := strings.TrimSpace(out)
	replicas, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, microerror.Maskf(MalformedOutputError, "cannot read replica count of %s from %q", target, trimmed)
	}

	k.logger.LogCtx(ctx, "level", "debug", "message", "found current replica count", "target", target, "replicas", replicas)

	return replicas, nil
}

// Scale sets the replica count of target.
func (k *Kubectl) Scale(ctx context.Context, flags []string, target string, replicas int) error {
	_, err := k.run(ctx, ScaleArgs(flags, target, replicas))
	if err != nil {
		return microerror.Mask(err)
	}

	k.logger.LogCtx(ctx, "level", "debug", "message", "scaled", "target", target, "replicas", replicas)

	return nil
}

// run executes kubectl and returns its standard output.
func (k *Kubectl) run(ctx context.Context, args []string) (string, error) {
	k.logger.LogCtx(ctx, "level", "debug", "message", "executing "+k.CommandLine(args))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, k.binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		details := strings.TrimSpace(stderr.String())
		if details == "" {
			details = err.Error()
		}
		return "", microerror.Maskf(CommandFailedError, "'%s' failed: %s", k.CommandLine(args), firstLine(details))
	}

	return stdout.String(), nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
