package cli

import (
	"bytes"
	"fmt"
	"maps"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/glamgen/internal/output"
	"github.com/vvka-141/glamgen/internal/params"
	"github.com/vvka-141/glamgen/internal/render"
	"github.com/vvka-141/glamgen/internal/sqlfmt"
	"github.com/vvka-141/glamgen/pkg/glamgen"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the incremental scalar aggregation query for a shape",
	Long: `Render substitutes a shape into its template, formats the result and
prints the SQL to stdout exactly as generated.

With --write the query is stored at <output-root>/<dataset>/<table>/query.sql
instead. With --check the stored query is compared with freshly generated
text and the command fails with exit code 13 when it is missing or differs.

Examples:
  glamgen render > query.sql
  glamgen render --shape glean --write
  glamgen render --set source_table=clients_daily_scalar_aggregates_v2
  glamgen render --set-file overrides.env --strict
  glamgen render --check`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

type renderFlagValues struct {
	shape      string
	shapesFile string
	set        []string
	setFiles   []string
	strict     bool
	write      bool
	check      bool
	outputRoot string
}

var renderFlags renderFlagValues

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderFlags.shape, "shape", "s", "",
		"Shape to render (default: $GLAMGEN_SHAPE, default_shape or telemetry)")
	renderCmd.Flags().StringVar(&renderFlags.shapesFile, "shapes-file", "",
		"YAML file with additional shapes (default: shapes_file setting)")
	renderCmd.Flags().StringArrayVar(&renderFlags.set, "set", nil,
		"Override a shape field as key=value (can be specified multiple times)\n"+
			"List fields take comma-separated values: --set attributes=client_id,os,channel")
	renderCmd.Flags().StringSliceVar(&renderFlags.setFiles, "set-file", nil,
		"Load overrides from .env files (can be specified multiple times)\n"+
			"Later files override earlier ones, --set overrides all")
	renderCmd.Flags().BoolVar(&renderFlags.strict, "strict", false,
		"Require every user_data_attributes entry to be a field of user_data_type")
	renderCmd.Flags().BoolVar(&renderFlags.write, "write", false,
		"Write the query to <output-root>/<dataset>/<table>/query.sql instead of stdout")
	renderCmd.Flags().BoolVar(&renderFlags.check, "check", false,
		"Fail if the stored query is missing or differs from the generated one")
	renderCmd.Flags().StringVar(&renderFlags.outputRoot, "output-root", "",
		"Root of the query layout (default: output_root setting or sql)")

	renderCmd.MarkFlagsMutuallyExclusive("write", "check")
	_ = renderCmd.RegisterFlagCompletionFunc("shape", completeShapeNames)
	_ = renderCmd.RegisterFlagCompletionFunc("set", completeOverrideKeys)
}

func runRender(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer env.sync()

	shape, err := resolveShape(env)
	if err != nil {
		return err
	}

	p, err := params.Assemble(shape)
	if err != nil {
		return err
	}
	if renderFlags.strict {
		if err := params.ValidateUserDataAttributes(p); err != nil {
			return err
		}
	}

	pipeline := render.NewPipeline(env.templateStore(), sqlfmt.New(), env.logger)
	sql, err := pipeline.Render(p)
	if err != nil {
		return fmt.Errorf("render shape %s: %w", shape.Name, err)
	}

	if !renderFlags.write && !renderFlags.check {
		_, err := fmt.Fprint(cmd.OutOrStdout(), sql)
		return err
	}

	root := renderFlags.outputRoot
	if root == "" {
		root = env.settings.OutputRoot
	}
	path, err := output.Path(root, shape.Dataset, tableDirName(p.DestinationTable()))
	if err != nil {
		return fmt.Errorf("shape %s: %w", shape.Name, err)
	}
	writer := output.NewWriter(env.files)

	if renderFlags.write {
		if err := writer.Write(path, sql); err != nil {
			return err
		}
		env.logger.Info("Wrote %s", path)
		return nil
	}

	status, err := writer.Check(path, sql)
	if err != nil {
		return err
	}
	if status != output.StatusUpToDate {
		return fmt.Errorf("%w: %s: %s (run 'glamgen render --shape %s --write')", glamgen.ErrStaleOutput, path, status, shape.Name)
	}
	env.logger.Info("%s is up to date", path)
	return nil
}

// resolveShape looks up the requested shape and applies --set-file and --set
// overrides, in that order.
func resolveShape(env *environment) (params.Shape, error) {
	catalog, err := env.catalog(renderFlags.shapesFile)
	if err != nil {
		return params.Shape{}, err
	}

	name := renderFlags.shape
	if name == "" {
		name = env.settings.DefaultShape
	}
	shape, err := catalog.Lookup(name)
	if err != nil {
		return params.Shape{}, err
	}
	env.logger.Verbose("Shape %s from %s", name, catalog.Origin(name))

	overrides := map[string]string{}
	for _, path := range renderFlags.setFiles {
		data, err := env.files.ReadFile(path)
		if err != nil {
			return params.Shape{}, fmt.Errorf("%w: failed to read override file %s: %v", glamgen.ErrInvalidParameters, path, err)
		}
		fileOverrides, err := params.ParseOverrideFile(bytes.NewReader(data))
		if err != nil {
			return params.Shape{}, fmt.Errorf("%s: %w", path, err)
		}
		maps.Copy(overrides, fileOverrides)
	}

	cliOverrides, err := params.ParseKeyValuePairs(renderFlags.set)
	if err != nil {
		return params.Shape{}, err
	}
	maps.Copy(overrides, cliOverrides)

	if len(overrides) > 0 {
		env.logger.Verbose("Applying %d override(s)", len(overrides))
	}
	return params.ApplyOverrides(shape, overrides)
}

// tableDirName returns the table part of a possibly qualified, possibly
// backtick-quoted table identifier.
func tableDirName(table string) string {
	table = strings.Trim(table, "`")
	if i := strings.LastIndex(table, "."); i >= 0 {
		table = table[i+1:]
	}
	return strings.Trim(table, "`")
}
