package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/spacetime/frw"
	"github.com/katalvlaran/spacetime/render"
)

var rootCmd = &cobra.Command{
	Use:   "spacetime",
	Short: "Symbolic FRW metric construction and display",
	Long: `Spacetime builds the Friedmann-Robertson-Walker metric tensor for a
chosen spatial topology (flat, closed or open) and renders it as plain
text, LaTeX or a styled terminal table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .spacetime.yaml)")
	rootCmd.PersistentFlags().StringP("format", "f", "", "output format: plain, latex or term")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".spacetime")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetDefault("topology", frw.Flat.String())
	viper.SetDefault("format", render.FormatPlain.String())

	viper.SetEnvPrefix("SPACETIME")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
