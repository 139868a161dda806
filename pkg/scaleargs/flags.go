package scaleargs

import (
	"strings"

	"github.com/spf13/pflag"
)

const (
	dryRunFlag   = "--dry-run"
	helpFlag     = "--help"
	replicasFlag = "--replicas"

	deploymentKind  = "deployment"
	statefulSetKind = "statefulset"
)

// shortKubeFlags are kubectl flags in short form that take a value as the
// following argument.
var shortKubeFlags = []string{
	"-n", // namespace
	"-c", // context
}

// longKubeFlags are the kubectl global flags forwarded to kubectl, either as
// "--flag value" or as "--flag=value".
var longKubeFlags = []string{
	"--as",
	"--as-group",
	"--cache-dir",
	"--certificate-authority",
	"--client-certificate",
	"--client-key",
	"--cluster",
	"--context",
	"--disable-compression",
	"--insecure-skip-tls-verify",
	"--kubeconfig",
	"--log-flush-frequency",
	"--match-server-version",
	"--namespace",
	"--password",
	"--profile",
	"--profile-output",
	"--server",
	"--tls-server-name",
	"--token",
	"--user",
	"--username",
	"--v",
	"--vmodule",
	"--warnings-as-errors",
}

// isInlineKubeFlag reports whether s is a known long flag with its value
// attached, like "--namespace=foo".
func isInlineKubeFlag(s string) bool {
	for _, f := range longKubeFlags {
		if strings.HasPrefix(s, f+"=") {
			return true
		}
	}
	return false
}

// isValuedKubeFlag reports whether s is exactly a known flag whose value
// follows as the next argument.
func isValuedKubeFlag(s string) bool {
	for _, f := range shortKubeFlags {
		if s == f {
			return true
		}
	}
	for _, f := range longKubeFlags {
		if s == f {
			return true
		}
	}
	return false
}

// targetKind returns the resource kind if s is a "kind/name" target with a
// non-empty name.
func targetKind(s string) (string, bool) {
	for _, kind := range []string{deploymentKind, statefulSetKind} {
		if strings.HasPrefix(s, kind+"/") && len(s) > len(kind)+1 {
			return kind, true
		}
	}
	return "", false
}

// KubeFlagSet returns a flag set describing the kubectl flags that are
// forwarded unchanged. It is used for documentation only, Parse does not
// use it to parse arguments.
func KubeFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("kubectl", pflag.ContinueOnError)
	fs.SortFlags = false

	shorthands := map[string]string{
		"--namespace": "n",
		"--context":   "c",
	}

	for _, f := range longKubeFlags {
		name := strings.TrimPrefix(f, "--")
		fs.StringP(name, shorthands[f], "", "passed to kubectl")
	}

	return fs
}
