// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the nuclide-data CLI, a one-shot
// acquisition tool for the scientific reference datasets used by dosimetry
// calculations: ICRP Publication 107 nuclear decay data and the NIST X-ray
// mass attenuation coefficient tables.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the nuclide-data CLI.
var rootCmd = &cobra.Command{
	Use:   "nuclide-data",
	Short: "Acquire scientific reference datasets for dosimetry calculations",
	Long: `nuclide-data downloads, verifies, and extracts scientific reference datasets
into a local directory layout. Downloads are checksum-gated: archives already
on disk with a matching SHA-1 digest are never re-fetched, and interrupted
downloads resume from where they stopped on the next run.

Datasets:
  icrp107                            ICRP Publication 107 nuclear decay data
                                     (with the corrigenda index applied)
  nist_mass_attenuation_coefficient  NIST X-ray mass attenuation coefficients`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./nuclide-data.yaml or ~/.config/nuclide-data/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("nuclide-data")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "nuclide-data"))
		}
	}

	viper.SetEnvPrefix("NUCLIDE_DATA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
