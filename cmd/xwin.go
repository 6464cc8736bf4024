// Package cmd implements the xwin command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tesselslate/xwin/internal/log"
)

// Version is the version of xwin. It can be set at build time with LDFLAGS.
var Version = "0.1.0"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "xwin",
	Short: "Open an X window and inspect its input events",
	Long: `xwin opens a window on an X server and translates the raw keyboard,
pointer and window manager events it receives into a small, layout-independent
event model. Use it to check how keys, modifiers and window state changes are
reported on your setup.`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	log.Default().Close()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("display", "", "X display to connect to (default is $DISPLAY)")
	flags.String("log-level", "", "log level: error, warn, info, debug or verbose")
	flags.String("log-file", "", "file to write logs to, in addition to the console")
	cobra.CheckErr(viper.BindPFlags(flags))

	// Flags can also be given as XWIN_DISPLAY, XWIN_LOG_LEVEL, and so on.
	viper.SetEnvPrefix("xwin")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// setup installs the default logger from the command line flags.
func setup(cmd *cobra.Command, _ []string) error {
	if err := useLogger(log.LogConf{Level: "warn"}); err != nil {
		return err
	}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		log.Debug("Flag --%s set to %q", f.Name, f.Value)
	})
	return nil
}

// logConf applies the logging flags on top of a profile's settings.
func logConf(conf log.LogConf) log.LogConf {
	if level := viper.GetString("log-level"); level != "" {
		conf.Level = level
	}
	if path := viper.GetString("log-file"); path != "" {
		conf.Path = path
	}
	return conf
}

// useLogger replaces the default logger, closing the previous one.
func useLogger(conf log.LogConf) error {
	logger, err := logConf(conf).Logger(false)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	swapLogger(logger)
	return nil
}

// swapLogger replaces the default logger, closing the previous one.
func swapLogger(logger *log.Logger) {
	old := log.Default()
	log.SetDefault(logger)
	old.Close()
}
