package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func resetFlags() {
	rootFlags = rootFlagValues{dir: "."}
	renderFlags = renderFlagValues{}
	shapesFlags.shapesFile = ""
	fmtFlags.check = false
	configFlags.env = false

	var clear func(c *cobra.Command)
	clear = func(c *cobra.Command) {
		unset := func(f *pflag.Flag) { f.Changed = false }
		c.Flags().VisitAll(unset)
		c.PersistentFlags().VisitAll(unset)
		for _, sub := range c.Commands() {
			clear(sub)
		}
	}
	clear(rootCmd)
}

// runCLI executes the root command in dir and returns what it wrote to
// stdout and stderr.
func runCLI(t *testing.T, dir, stdin string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()
	for _, env := range []string{"GLAMGEN_TEMPLATES_DIR", "GLAMGEN_SHAPES_FILE", "GLAMGEN_OUTPUT_ROOT", "GLAMGEN_SHAPE", "GLAMGEN_LOG_FORMAT"} {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--dir", dir}, args...))
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeProjectFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
