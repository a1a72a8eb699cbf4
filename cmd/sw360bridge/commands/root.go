// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/l3montree-dev/sw360bridge/cmd/sw360bridge/config"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

// Version information - set via ldflags during build
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const (
	defaultConfigFilename = ".sw360bridge"
)

var RootCmd = &cobra.Command{
	SilenceUsage:      true,
	Use:               "sw360bridge",
	Short:             "Bring your dependencies into SW360",
	Version:           version,
	DisableAutoGenTag: true,
	Long: `Bring your dependencies into SW360

sw360bridge downloads the jars of maven dependencies and synchronizes the
licenses, releases and projects of a CycloneDX SBOM into an SW360 instance.
Configuration can be provided via a ./.sw360bridge config file or environment
variables (prefix SW360BRIDGE_).`,
	Example: `  # Download the sources jar of a maven artifact
  sw360bridge fetch pkg:maven/org.apache.commons/commons-lang3@3.14.0 --sources

  # Synchronize an SBOM into SW360
  sw360bridge sync bom.json --projectName my-product --projectVersion 1.0.0`,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// init the logger - get the level
		level, err := cmd.Flags().GetString("logLevel")
		if err != nil {
			return err
		}

		switch level {
		case "debug":
			initLogger(slog.LevelDebug)
		case "info":
			initLogger(slog.LevelInfo)
		case "warn":
			initLogger(slog.LevelWarn)
		case "error":
			initLogger(slog.LevelError)
		default:
			initLogger(slog.LevelInfo)
		}

		return initializeConfig(cmd)
	},
}

func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sw360bridge\n")
			fmt.Printf("Version:    %s\n", version)
			fmt.Printf("Commit:     %s\n", commit)
			fmt.Printf("Built:      %s\n", date)
		},
	}

	RootCmd.AddCommand(
		versionCmd,
		NewFetchCommand(),
		NewSyncCommand(),
		NewLoginCommand(),
	)

	RootCmd.PersistentFlags().StringP("logLevel", "l", "info", "Set the log level. Options: debug, info, warn, error")
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a config file. Defaults to ./.sw360bridge")
}

// initLogger installs a tint handler as the default logger.
func initLogger(level slog.Leveler) {
	w := os.Stderr

	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}),
	))
}

func initializeConfig(cmd *cobra.Command) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(defaultConfigFilename)
	}

	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/sw360bridge/")

	// a missing config file is fine, a broken one is not
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		slog.Debug("no config file found")
	}

	viper.SetEnvPrefix("SW360BRIDGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	bindFlags(cmd)

	return config.ParseBaseConfig()
}

// bindFlags binds each cobra flag to its viper key. Values from the config
// file or the environment are applied to flags which were not set.
func bindFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		configName := f.Name

		if !f.Changed && viper.IsSet(configName) {
			val := viper.Get(configName)
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)) // nolint: errcheck
		}

		if err := viper.BindPFlag(configName, f); err != nil {
			slog.Error("could not bind flag to viper", "err", err)
		}
	})
}
