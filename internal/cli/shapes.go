package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/glamgen/internal/config"
	"github.com/vvka-141/glamgen/internal/tui"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List and describe query shapes",
	Long: `A shape is a named set of render parameters: the payload type, the
payload and dimension attributes, the extraction and join fragments and the
source and destination tables. telemetry and glean are built in; a shapes
file adds more or replaces them.`,
}

var shapesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available shapes",
	Args:  cobra.NoArgs,
	RunE:  runShapesList,
}

var shapesDescribeCmd = &cobra.Command{
	Use:               "describe <shape_name>",
	Short:             "Print a shape as YAML",
	Long:              `Print a shape in shapes-file format, ready to copy into a shapes file and edit.`,
	Args:              RequireShapeName,
	ValidArgsFunction: completeShapeNames,
	RunE:              runShapesDescribe,
}

var shapesFlags struct {
	shapesFile string
}

func init() {
	rootCmd.AddCommand(shapesCmd)
	shapesCmd.AddCommand(shapesListCmd)
	shapesCmd.AddCommand(shapesDescribeCmd)

	shapesCmd.PersistentFlags().StringVar(&shapesFlags.shapesFile, "shapes-file", "",
		"YAML file with additional shapes (default: shapes_file setting)")
}

func runShapesList(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer env.sync()

	catalog, err := env.catalog(shapesFlags.shapesFile)
	if err != nil {
		return err
	}

	paint := tui.NewPainter(tui.IsStyled(stdoutFile(cmd)))
	rows := [][]string{{paint.Title("NAME"), paint.Title("DATASET"), paint.Title("DESTINATION"), paint.Title("ORIGIN")}}
	for _, e := range catalog.Entries() {
		rows = append(rows, []string{
			e.Shape.Name,
			e.Shape.Dataset,
			e.Shape.DestinationTable,
			paint.Muted(e.Origin),
		})
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), tui.Columns(rows))
	return err
}

func runShapesDescribe(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer env.sync()

	catalog, err := env.catalog(shapesFlags.shapesFile)
	if err != nil {
		return err
	}
	shape, err := catalog.Lookup(args[0])
	if err != nil {
		return err
	}

	data, err := config.MarshalShape(shape)
	if err != nil {
		return fmt.Errorf("failed to encode shape %s: %w", shape.Name, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# origin: %s\n", catalog.Origin(shape.Name))
	if shape.Description != "" {
		fmt.Fprintf(out, "# %s\n", strings.TrimSpace(shape.Description))
	}
	_, err = out.Write(data)
	return err
}

// stdoutFile returns the command's output as a file when it is one, for
// terminal detection.
func stdoutFile(cmd *cobra.Command) *os.File {
	f, _ := cmd.OutOrStdout().(*os.File)
	return f
}
