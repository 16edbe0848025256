package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/glamgen/internal/config"
	"github.com/vvka-141/glamgen/internal/files/filesystem"
	"github.com/vvka-141/glamgen/internal/logging"
	"github.com/vvka-141/glamgen/internal/params"
)

// completeShapeNames provides shell completion for built-in shape names.
func completeShapeNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	catalog, err := config.LoadCatalog(filesystem.NewOSFileSystem(rootFlags.dir), "")
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return filterPrefix(catalog.Names(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeOverrideKeys completes the key part of --set key=value.
func completeOverrideKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	keys := params.OverrideKeys()
	for i, k := range keys {
		keys[i] = k + "="
	}
	return filterPrefix(keys, toComplete), cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

// completeLogFormats provides shell completion for --log-format.
func completeLogFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return filterPrefix([]string{logging.FormatConsole, logging.FormatJSON}, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func filterPrefix(candidates []string, prefix string) []string {
	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			matches = append(matches, c)
		}
	}
	return matches
}
