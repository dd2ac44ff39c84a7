// Package commands implements the CLI commands for mineral.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/mineral/internal/config"
	"github.com/jmylchreest/mineral/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "mineral",
	Short: "Shrink rendered HTML by collapsing whitespace and pruning markup",
	Long: `Mineral minifies HTML output: it collapses whitespace, strips comments
and can optionally drop inline style attributes, <style> blocks and the
bodies of inline scripts.

Examples:
  # Minify a file to stdout
  mineral prune page.html

  # Read stdin, drop styles and inline scripts
  cat page.html | mineral prune --style --script

  # Fetch a JavaScript-rendered page and report what was removed
  mineral prune https://example.com --fetch-mode dynamic --stats`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{
			Debug: viper.GetBool("debug"),
			Quiet: viper.GetBool("quiet"),
			JSON:  viper.GetBool("log_json"),
		})
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default $HOME/.mineral.yaml)")
	flags.Bool("debug", false, "enable debug logging")
	flags.BoolP("quiet", "q", false, "only log errors")
	flags.Bool("log-json", false, "log as JSON")

	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("debug", flags.Lookup("debug"))
	_ = viper.BindPFlag("quiet", flags.Lookup("quiet"))
	_ = viper.BindPFlag("log_json", flags.Lookup("log-json"))

	config.SetDefaults(viper.GetViper())
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".mineral")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("MINERAL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing default config is fine; an explicit one must load.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && viper.GetString("config") != "" {
			logError("reading config: %v", err)
		}
	}
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		logError("%v", err)
		return err
	}
	return nil
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
