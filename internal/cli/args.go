package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireShapeName validates that exactly one shape name argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireShapeName(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <shape_name>

Usage: %s

Example:
  %s telemetry

Use 'glamgen shapes list' to see available shapes.`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
