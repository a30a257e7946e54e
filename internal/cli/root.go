package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"os-scheduler/config"
	"os-scheduler/internal/logging"
	"os-scheduler/internal/schedulers"
)

var (
	flagConfig    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	cfg    *config.SchedulerConfig
	logger *slog.Logger
)

// NewRootCmd creates the root cobra command for the scheduler CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "os-scheduler",
		Short: "CPU scheduling simulator",
		Long:  "Simulates FCFS, SJF, Priority, Round Robin and MLFQ scheduling over a known set of processes.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(flagConfig)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = flagLogLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = flagLogFormat
			}
			if flagDebug {
				cfg.LogLevel = "debug"
			}
			logger = logging.NewLoggerWithWriter(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ./config.yaml)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newSimulateCmd(),
		newServeCmd(),
		newInteractiveCmd(),
	)

	return root
}

func newRunner() *schedulers.Runner {
	return schedulers.NewRunner(schedulers.Options{
		TimeQuantum:       cfg.RoundRobinTimeQuantum,
		LevelsTimeQuantum: cfg.MultilevelFeedbackQueueLevelsTimeQuantum,
	}, logger)
}

func policyList() string {
	return fmt.Sprint(schedulers.Policies())
}
