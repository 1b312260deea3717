package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avoronov/waymark/internal/logging"
	"github.com/avoronov/waymark/internal/model"
)

var (
	cfgFile  string
	verbose  bool
	logLevel string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "waymark",
	Short: "Waymark - turn coordinate lists with travel dates into GeoJSON",
	Long: `Waymark converts latitude/longitude lists with optional travel dates
into GeoJSON FeatureCollections ready for QGIS or any other GIS viewer.

Each record carries a name, optional arrival and departure dates in
compact ddmmyyyy form, and derives a stay duration in whole days plus a
visit status usable for graduated map styling.

Records come from comma-delimited text files or an interactive prompt;
every run writes one standalone .geojson document.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for Waymark.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("waymark v0.3.1")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.waymark/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.waymark")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Register defaults so a partial config file keeps the rest
	defaults := model.DefaultConfig()
	viper.SetDefault("input.name_prefix", defaults.Input.NamePrefix)
	viper.SetDefault("input.strict", defaults.Input.Strict)
	viper.SetDefault("output.compact", defaults.Output.Compact)
	viper.SetDefault("output.include_footer", defaults.Output.IncludeFooter)
	viper.SetDefault("log.level", defaults.Log.Level)

	// Read in environment variables that match WAYMARK_*
	viper.SetEnvPrefix("WAYMARK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}

	logging.Setup(viper.GetString("log.level"))
}

// loadConfig merges defaults, the config file, environment variables,
// and bound flags into one Config.
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
