// Package cli wires the geotool commands together with cobra and viper.
// Each subcommand is a thin shell around one of the internal packages:
// parse flags, call the operation, print the result.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "geotool",
	Short: "Convert, clip and inspect GeoTIFF rasters",
	Long: `geotool works with georeferenced raster imagery.

It converts GeoTIFFs to web-friendly PNGs with an automatic contrast
stretch, clips pixel regions into new GeoTIFFs with corrected
georeferencing, and reports detailed raster metadata.

Examples:
  # Convert a 16-bit satellite scene to PNG with a 2% contrast stretch
  geotool convert scene.tif scene.png --truncate 2

  # Quarter-resolution preview with a heat colormap
  geotool convert dem.tif dem.png --downsample 4 --colormap heat

  # Clip a 512x512 region starting at pixel (1000, 2000)
  geotool clip scene.tif chip.tif 1000 2000 512 512

  # Inspect metadata
  geotool info scene.tif --json

  # Start the HTTP API
  geotool serve --port 8080`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute(version string) {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.geotool.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".geotool")
	}

	viper.SetEnvPrefix("GEOTOOL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
