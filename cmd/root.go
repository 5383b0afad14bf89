package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bgraf/exifview/config"
	"github.com/bgraf/exifview/images"
	"github.com/bgraf/exifview/logging"
	"github.com/bgraf/exifview/render"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "exifview",
	Short: "Inspect EXIF metadata and capture locations of images",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Setup(config.LogLevel(), config.LogConsole()); err != nil {
			return err
		}

		images.Init()
		render.InitMarkerIcon(render.MarkerIcon{
			IconURL:       config.MapIconURL(),
			IconRetinaURL: config.MapIconRetinaURL(),
			ShadowURL:     config.MapShadowURL(),
		})

		if used := viper.ConfigFileUsed(); used != "" {
			log.Debug().Str("path", used).Msg("using config file")
		}

		return nil
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.exifview.yaml)")

	rootCmd.PersistentFlags().String("log-level", "", "Log level (trace, debug, info, warn, error)")
	bindFlag(rootCmd, config.KeyLogLevel, "log-level")
}

func bindFlag(cmd *cobra.Command, key string, flag string) {
	f := cmd.PersistentFlags().Lookup(flag)
	if f == nil {
		f = cmd.Flags().Lookup(flag)
	}

	if err := viper.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.SetDefaults()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in the working directory and home with name ".exifview" (without extension).
		if dir, err := os.Getwd(); err == nil {
			viper.AddConfigPath(dir)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".exifview")
	}

	viper.SetEnvPrefix("exifview")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			fmt.Fprintln(os.Stderr, "reading config:", err)
			os.Exit(1)
		}
	}
}
