package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/glamgen/internal/checksum"
	"github.com/vvka-141/glamgen/internal/files/filesystem"
	"github.com/vvka-141/glamgen/internal/files/scanner"
	"github.com/vvka-141/glamgen/internal/sqlfmt"
	"github.com/vvka-141/glamgen/pkg/glamgen"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [paths...]",
	Short: "Format BigQuery SQL files in place",
	Long: `Format rewrites SQL files in the canonical layout glamgen generates.
A directory argument formats every .sql file below it. Without arguments
fmt reads stdin and writes the formatted SQL to stdout.

With --check no file is changed; the command lists files that are not
formatted and exits with code 13 if there are any.

Examples:
  glamgen fmt sql/telemetry_derived/clients_scalar_aggregates_v1/query.sql
  cat query.sql | glamgen fmt
  glamgen fmt --check sql`,
	RunE: runFmt,
}

var fmtFlags struct {
	check bool
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVar(&fmtFlags.check, "check", false, "Report unformatted files instead of rewriting them")
}

func runFmt(cmd *cobra.Command, args []string) error {
	env, err := loadEnvironment(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer env.sync()

	formatter := sqlfmt.New()

	if len(args) == 0 {
		input, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		out, err := formatter.Reformat(string(input))
		if err != nil {
			return fmt.Errorf("<stdin>: %w", err)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}

	calc := checksum.New()
	files, err := scanner.NewScanner(calc, env.files).Scan(args...)
	if err != nil {
		return err
	}
	env.logger.Verbose("Found %d SQL file(s)", len(files))

	var stale []string
	for _, f := range files {
		changed, err := formatFile(env.files, formatter, calc, f, !fmtFlags.check)
		if err != nil {
			return err
		}
		if !changed {
			env.logger.Verbose("%s already formatted", f.Path)
			continue
		}
		if fmtFlags.check {
			fmt.Fprintln(cmd.OutOrStdout(), f.Path)
			stale = append(stale, f.Path)
		} else {
			env.logger.Info("Formatted %s", f.Path)
		}
	}

	if len(stale) > 0 {
		return fmt.Errorf("%w: %d file(s) not formatted", glamgen.ErrStaleOutput, len(stale))
	}
	return nil
}

// formatFile formats one file and reports whether its content differs from
// the canonical form. When write is set, changed files are replaced. The
// formatted text must carry the same tokens as the original.
func formatFile(fs filesystem.WritableFileSystem, formatter glamgen.Formatter, calc checksum.Calculator, f scanner.File, write bool) (bool, error) {
	out, err := formatter.Reformat(string(f.Content))
	if err != nil {
		return false, fmt.Errorf("%s: %w", f.Path, err)
	}
	if calc.CalculateRaw([]byte(out)) == f.ChecksumRaw {
		return false, nil
	}
	if calc.CalculateNormalized([]byte(out)) != f.Checksum {
		return false, fmt.Errorf("%w: %s: formatted text does not match the original tokens", glamgen.ErrFormatting, f.Path)
	}

	if write {
		if err := fs.WriteFile(f.Path, []byte(out)); err != nil {
			return false, fmt.Errorf("failed to write %s: %w", f.Path, err)
		}
	}
	return true, nil
}
