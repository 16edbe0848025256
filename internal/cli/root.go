package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/glamgen/internal/config"
	"github.com/vvka-141/glamgen/internal/files/filesystem"
	"github.com/vvka-141/glamgen/internal/logging"
	"github.com/vvka-141/glamgen/internal/templates"
	"github.com/vvka-141/glamgen/pkg/glamgen"
)

var rootCmd = &cobra.Command{
	Use:   "glamgen",
	Short: "Generate GLAM incremental aggregation queries",
	Long: `glamgen renders the BigQuery query that incrementally merges daily scalar
aggregates into the clients_scalar_aggregates table.

A shape names the payload type, dimension columns, SQL fragments and tables;
glamgen substitutes it into a template and prints canonically formatted SQL.
The SQL goes to stdout, logs go to stderr.

Exit Codes:
  0  - Success
  1  - General error (template execution failed)
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  11 - Template not found
  12 - Generated text is not valid SQL
  13 - Checked-in query is out of date (--check)`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

type rootFlagValues struct {
	verbose   bool
	logFormat string
	dir       string
}

var rootFlags rootFlagValues

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&rootFlags.logFormat, "log-format", "",
		"Log format: console|json (default: $GLAMGEN_LOG_FORMAT or console)")
	rootCmd.PersistentFlags().StringVarP(&rootFlags.dir, "dir", "C", ".",
		"Project directory holding glamgen.yaml; relative paths resolve against it")

	_ = rootCmd.RegisterFlagCompletionFunc("log-format", completeLogFormats)
}

// environment is what every command needs from settings: the project files,
// the logger and the template store.
type environment struct {
	settings *config.Settings
	files    *filesystem.OSFileSystem
	logger   glamgen.Logger
}

func loadEnvironment(stderr io.Writer) (*environment, error) {
	dir := rootFlags.dir
	if dir == "" {
		dir = "."
	}

	settings, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	if rootFlags.logFormat != "" {
		settings.LogFormat = rootFlags.logFormat
	}

	logger, err := logging.New(stderr, settings.LogFormat, rootFlags.verbose)
	if err != nil {
		return nil, err
	}

	logger.Verbose("Project directory: %s", dir)
	return &environment{
		settings: settings,
		files:    filesystem.NewOSFileSystem(dir),
		logger:   logger,
	}, nil
}

// templateStore returns the store configured by templates_dir, or the
// built-in templates.
func (e *environment) templateStore() *templates.Store {
	if e.settings.TemplatesDir == "" {
		return templates.NewEmbeddedStore()
	}
	dir := e.settings.TemplatesDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(e.files.Root(), dir)
	}
	e.logger.Verbose("Using templates from %s", dir)
	return templates.NewStore(filesystem.NewOSFileSystem(dir))
}

func (e *environment) catalog(shapesFile string) (*config.Catalog, error) {
	if shapesFile == "" {
		shapesFile = e.settings.ShapesFile
	}
	if shapesFile != "" {
		e.logger.Verbose("Loading shapes from %s", shapesFile)
	}
	return config.LoadCatalog(e.files, shapesFile)
}

func (e *environment) sync() {
	if z, ok := e.logger.(*logging.ZapLogger); ok {
		_ = z.Sync()
	}
}
