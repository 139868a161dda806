package main

import (
	"strings"
	"testing"

	"github.com/giantswarm/kubectl-scalex/commands"
	"github.com/giantswarm/kubectl-scalex/commands/errors"
	"github.com/giantswarm/kubectl-scalex/config"
	"github.com/giantswarm/kubectl-scalex/testutils"
)

func Test_Main(t *testing.T) {
	t.Setenv(config.EnvConfigDir, t.TempDir())

	var err error
	output := testutils.CaptureStderr(func() {
		commands.RootCommand.SetArgs([]string{"--help"})
		err = commands.RootCommand.Execute()
	})

	if !errors.IsHelpShownError(err) {
		t.Errorf("error == %#v, want HelpShownError", err)
	}
	if !strings.HasPrefix(output, "kubectl scalex is a wrapper around kubectl scale") {
		t.Errorf("usage not printed, got %q", output)
	}
}
