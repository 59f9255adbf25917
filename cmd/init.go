package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twinops/twinctl/pkg/config"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config file",
	Long: `Write a starter config file at $HOME/.twinctl/config.json (or the
path given with --config). Refuses to overwrite an existing file.`,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	err = config.InitConfig(getConfigFile())
	if err != nil {
		return err
	}

	fmt.Println("Config file created.")
	fmt.Println("Edit it to point at your backend, then run 'twinctl login'.")
	return err
}
