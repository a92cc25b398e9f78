// SPDX-License-Identifier: MIT

// Command lvmat runs the lvmat statistics and geometric data analysis
// routines on matrices stored as CSV or lvmat binary files.
//
//	lvmat cov data.csv
//	lvmat pca --components 2 --standardize --plot scores.png data.csv
//	lvmat ca table.csv
//	lvmat mds --distances dist.csv
//	lvmat convert data.csv data.lvmt
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/lvmat/internal/logging"
	"github.com/katalvlaran/lvmat/matrix"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg    Config
	log    *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	logJSON    bool
}

func main() {
	a := &app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	if err := a.rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvmat:", err)
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lvmat",
		Short:         "Matrix statistics, PCA, CA and MDS from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	pf.BoolVar(&a.logJSON, "log-json", false, "emit logs as JSON")

	root.AddCommand(
		a.covCmd(),
		a.corrCmd(),
		a.quantileCmd(),
		a.pcaCmd(),
		a.caCmd(),
		a.mdsCmd(),
		a.convertCmd(),
	)

	return root
}

// setup resolves configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("log-json") {
		cfg.LogJSON = a.logJSON
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(logging.Config{Level: level, JSON: cfg.LogJSON, Output: a.stderr})
	matrix.SetLogger(a.log)
	a.log.Debug("configuration resolved", "config", a.configPath, "level", level.String())

	return nil
}
