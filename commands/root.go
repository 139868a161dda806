package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/giantswarm/kubectl-scalex/config"
)

// RootCommand is the main command of the CLI. Flag parsing is disabled, as
// all arguments are classified by the scaleargs package, including the
// kubectl flags passed through.
var RootCommand = &cobra.Command{
	Use:   config.ProgramName + " (deployment NAME | statefulset NAME | TYPE/NAME) (+N | -N | +P% | -P% | --replicas N) [--dry-run]",
	Short: "Scale deployments and statefulsets by a relative amount",

	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,

	PersistentPreRunE: initConfig,
	RunE:              runScale,
}

// initConfig initializes the configuration before any command is executed.
func initConfig(cmd *cobra.Command, args []string) error {
	err := config.Initialize(afero.NewOsFs(), "")
	if err != nil {
		return err
	}

	if config.Config.DisableColors {
		color.NoColor = true
	}

	return nil
}
