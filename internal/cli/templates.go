package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect query templates",
	Long: `List the query templates available to render.

Templates are grouped in sets; a shape names its template as <set>/<name>.
The built-in set is glam. Set templates_dir in glamgen.yaml (or
$GLAMGEN_TEMPLATES_DIR) to use a directory of template sets instead.`,
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available templates",
	Args:  cobra.NoArgs,
	RunE:  runTemplatesList,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.AddCommand(templatesListCmd)
}

func runTemplatesList(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer env.sync()

	refs, err := env.templateStore().List()
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}
	for _, ref := range refs {
		fmt.Fprintln(cmd.OutOrStdout(), ref.String())
	}
	return nil
}
