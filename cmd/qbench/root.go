package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yxzwayne/amazon-q-developer-cli/amazonq"
	"github.com/yxzwayne/amazon-q-developer-cli/runlog"
)

// app carries state shared by all subcommands: the adapter under
// inspection, the resolved configuration, and the run log.
type app struct {
	configPath string
	auditDB    string
	debug      bool

	agent  *amazonq.Agent
	runLog *runlog.Logger
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{agent: amazonq.New()}

	root := &cobra.Command{
		Use:           "qbench",
		Short:         "Inspect the Amazon Q CLI terminal-bench adapter",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to qbench config file")
	root.PersistentFlags().StringVar(&a.auditDB, "audit-db", "", "SQLite file for the run log (overrides config)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(newDescribeCmd(a))
	root.AddCommand(newEnvCmd(a))
	root.AddCommand(newCommandCmd(a))
	root.AddCommand(newScriptCmd(a))
	root.AddCommand(newDoctorCmd(a))
	root.AddCommand(newTaskCmd(a))
	root.AddCommand(newLogCmd(a))

	return root
}

// setup resolves configuration and prepares logging. It runs once before
// any subcommand.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}

	// Flag wins over environment wins over config file.
	if a.auditDB == "" {
		a.auditDB = os.Getenv(envAuditDB)
	}
	if a.auditDB == "" {
		a.auditDB = cfg.AuditDB
	}
	a.runLog = runlog.NewLogger(a.auditDB)

	if !cmd.Root().PersistentFlags().Changed("debug") {
		a.debug = cfg.Debug
	}

	level := zerolog.InfoLevel
	if a.debug {
		level = zerolog.DebugLevel
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).
		With().
		Timestamp().
		Logger()

	return nil
}
