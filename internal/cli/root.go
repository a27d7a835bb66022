// Package cli provides the command-line interface for the
// colors-of-paintings tool.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vimaki/colors-of-paintings/internal/version"
)

// configName is the basename of the optional config file,
// ~/.colors-of-paintings.yaml, which can provide defaults for the
// extract flags (colours, output, max-size, index).
const configName = ".colors-of-paintings"

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "colors-of-paintings",
		Short: "Extract the primary colours of an image",
		Long: `colors-of-paintings extracts a small set of representative colours from
an image and can render an infographic of the result: the original
image, a proportional colour bar, and a legend naming every colour.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	cobra.OnInitialize(func() { initConfig(cfgFile) })

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/"+configName+".yaml)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newExtractCmd())

	return rootCmd
}

// initConfig loads the optional config file into viper. A missing file
// is not an error; a malformed one is reported and ignored.
func initConfig(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(configName)
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("COLORS_OF_PAINTINGS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		if os.IsNotExist(err) {
			return
		}
		fmt.Fprintf(os.Stderr, "warning: ignoring config file: %v\n", err)
	}
}

// newLogger builds the CLI logger. The core pipeline does no logging of
// its own; everything observable happens here.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level := hclog.Warn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "colors-of-paintings",
		Level:  level,
		Output: os.Stderr,
	})
}

// newVersionCmd builds the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}
}
