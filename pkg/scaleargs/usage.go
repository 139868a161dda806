package scaleargs

import (
	"strings"

	"github.com/giantswarm/columnize"
)

const usageIntro = `kubectl scalex is a wrapper around kubectl scale, with the added functionality
of expressing how much you want to scale by instead of specifying a specific
number.

For example, use the following to scale up by 50%:

  kubectl scalex deployment/mything +50%

Or the following to scale down by two replicas:

  kubectl scalex deployment/mything -2

The kubectl flags listed below are passed through to kubectl, both when
reading the current replica count and when scaling. Any other argument is
ignored. Use kubectl scale --help for more information on the flags.
`

// Usage returns the text printed for --help.
func Usage() string {
	var b strings.Builder

	b.WriteString(usageIntro)

	b.WriteString("\nScaling expressions:\n\n")
	rows := []string{
		"+N | add N replicas",
		"-N | remove N replicas",
		"+P% | grow by P percent, rounded down",
		"-P% | shrink by P percent, rounded down",
		"--replicas N | set the replica count to N",
		"--dry-run | print the kubectl command instead of running it",
	}
	columnizeConfig := columnize.DefaultConfig()
	columnizeConfig.Glue = "   "
	b.WriteString(columnize.Format(rows, columnizeConfig))
	b.WriteString("\n")

	b.WriteString("\nkubectl flags passed through:\n\n")
	b.WriteString(KubeFlagSet().FlagUsages())

	return b.String()
}
