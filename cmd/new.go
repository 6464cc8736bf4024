package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tesselslate/xwin/internal/cfg"
	"github.com/tesselslate/xwin/internal/log"
	"github.com/tesselslate/xwin/internal/res"
)

var profileFormat string

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new <profile>",
	Short: "Create a profile with the default settings",
	Long: `Create a profile with the default settings in the xwin configuration
directory ($XDG_CONFIG_HOME/xwin). The profile can then be used with
"xwin run <profile>".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := cfg.MakeProfile(args[0], profileFormat)
		if err != nil {
			return fmt.Errorf("make profile: %w", err)
		}
		log.Info("Created profile %s.", path)
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&profileFormat, "format", "f", res.FormatTOML, "profile format: toml or yml")
}
