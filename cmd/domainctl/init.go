package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version string
	root    = &cobra.Command{
		Use:     "domainctl [command]",
		Short:   "domainctl inspects host[:port] strings against the embedded TLD registry",
		Version: version,
	}

	parseCmd = &cobra.Command{
		Use:   "parse <host[:port]> [...]",
		Short: "parse hosts into subdomains, sld, and tld",
		Args:  cobra.MinimumNArgs(1),
		Run:   parseExec,
	}

	validateCmd = &cobra.Command{
		Use:   "validate <host[:port]> [...]",
		Short: "report whether hosts parse cleanly",
		Args:  cobra.MinimumNArgs(1),
		Run:   validateExec,
	}

	tldCmd = &cobra.Command{
		Use:   "tld <code> [...]",
		Short: "resolve codes against the TLD registry",
		Args:  cobra.MinimumNArgs(1),
		Run:   tldExec,
	}
)

func init() {
	root.PersistentFlags().BoolP(
		"verbose",
		"v",
		false,
		"verbose output",
	)
	viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	parseCmd.Flags().StringP(
		"port",
		"p",
		"",
		"render parsed hosts with this port attached",
	)
	viper.BindPFlag("parse.port", parseCmd.Flags().Lookup("port"))

	root.AddCommand(parseCmd, validateCmd, tldCmd)

	viper.SetEnvPrefix("DOMAINS")
	viper.AutomaticEnv()
	viper.SetConfigName("domainctl")

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(home, ".domainctl"))
	}

	wd, err := os.Getwd()
	if err == nil {
		viper.AddConfigPath(wd)
	}

	// Config is optional for an inspection tool.
	err = viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(err)
		}
	}
}
