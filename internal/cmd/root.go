// Package cmd implements the iocap command line interface.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nevermoreT/io-capture/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "iocap",
	Short: "Capture the process's standard output streams",
	Long: `iocap demonstrates in-process capture of stdout and stderr.

A capture session redirects both standard streams into in-memory
buffers; scoped capture brackets a unit of work and hands back exactly
what it printed, while output outside a scope passes through to the
real console.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/iocap/config.yaml)")
	rootCmd.PersistentFlags().String("log-dir", "", "directory for the capture debug log (empty disables logging)")
	rootCmd.PersistentFlags().String("log-level", "", "debug log level (debug/info/warn/error)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("logging.dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/iocap")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("IOCAP")
	// Replace dots with underscores for nested keys in env vars
	// e.g., IOCAP_LOGGING_LEVEL for logging.level
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
