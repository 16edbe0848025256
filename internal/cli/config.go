package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/glamgen/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective glamgen settings",
	Long: `Print the settings glamgen runs with, after reading glamgen.yaml, .env and
GLAMGEN_* environment variables, in glamgen.yaml format.

Use --env to list the environment variables instead.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var configFlags struct {
	env bool
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVar(&configFlags.env, "env", false, "List the environment variables glamgen reads")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if configFlags.env {
		text, err := config.Describe()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
		return err
	}

	env, err := loadEnvironment(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer env.sync()

	data, err := yaml.Marshal(env.settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
