package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"schedsim/internal/api"
	"schedsim/internal/job"
	slogx "schedsim/internal/log"
	"schedsim/internal/report"
	"schedsim/internal/sched"
	"schedsim/internal/ui"
)

var (
	flagConfig    string
	flagLogLevel  string
	flagLogJSON   bool
	flagNoColor   bool
	flagFile      string
	flagAlgorithm string
	flagQuantum   int
	flagTrace     string
	flagAddr      string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "schedsim",
		Short: "Simulate FCFS, SJF, Priority and Round Robin CPU scheduling",
		Long: `schedsim reads process definitions (id,priority,burst per line) and computes
per-process waiting and turnaround times under a classic scheduling discipline.
All processes arrive at time zero; the simulation is deterministic.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "config.yml", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagLogJSON, "log-json", false, "Log as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Process file (default from config, schedule.txt)")
	rootCmd.PersistentFlags().IntVarP(&flagQuantum, "quantum", "q", 0, "Round robin time quantum")

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(compareCmd())
	rootCmd.AddCommand(serveCmd())

	return rootCmd
}

// settings loads the config file and lets explicitly set flags override it.
func settings(cmd *cobra.Command) (sched.Config, *slog.Logger, error) {
	cfg, err := sched.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.Input = flagFile
	}
	if flags.Changed("quantum") {
		cfg.Quantum = flagQuantum
	}
	if flags.Changed("algorithm") {
		cfg.Algorithm = flagAlgorithm
	}
	if flags.Changed("trace") {
		cfg.Trace = flagTrace
	}
	if flags.Changed("addr") {
		cfg.Addr = flagAddr
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagLogJSON {
		cfg.LogJSON = true
	}
	if flagNoColor {
		ui.SetEnabled(false)
	}

	return cfg, slogx.BuildLogger(cfg.LogLevel, cfg.LogJSON), nil
}

func runCmd() *cobra.Command {
	var asJSON, plain, gantt bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one scheduling algorithm (asks interactively when none is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := settings(cmd)
			if err != nil {
				return err
			}

			specs, err := job.LoadFile(cfg.Input)
			if err != nil {
				logger.Error("load processes", slogx.ErrAttr(err))
				return err
			}

			out := cmd.OutOrStdout()
			var alg sched.Algorithm
			if cfg.Algorithm == "" {
				alg, cfg.Quantum, err = promptMenu(cmd.InOrStdin(), out, cfg.Quantum)
				if err != nil {
					return err
				}
			} else {
				if err := cfg.Validate(); err != nil {
					return err
				}
				alg, _ = sched.ParseAlgorithm(cfg.Algorithm)
			}

			result, err := sched.New(cfg, logger).Run(alg, job.Processes(specs))
			if err != nil {
				logger.Error("simulation failed", slog.String("algorithm", alg.String()), slogx.ErrAttr(err))
				return err
			}

			if cfg.Trace != "" {
				if err := writeTrace(cfg.Trace, result.Trace); err != nil {
					return err
				}
				logger.Info("trace written", slog.String("path", cfg.Trace), slog.Int("slices", len(result.Trace)))
			}

			switch {
			case asJSON:
				return outputJSON(out, result)
			case plain:
				report.Plain(out, result)
			default:
				report.Table(out, result)
			}
			if gantt {
				report.Gantt(out, result.Trace)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagAlgorithm, "algorithm", "a", "", "fcfs, sjf, priority, rr (or 1-4)")
	cmd.Flags().StringVar(&flagTrace, "trace", "", "Write the execution trace as CSV to this path")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Machine-readable JSON output")
	cmd.Flags().BoolVar(&plain, "plain", false, "Line-per-process output instead of a table")
	cmd.Flags().BoolVar(&gantt, "gantt", false, "Print a Gantt chart of the run")

	return cmd
}

func compareCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every algorithm on the same input and compare averages",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := settings(cmd)
			if err != nil {
				return err
			}

			specs, err := job.LoadFile(cfg.Input)
			if err != nil {
				return err
			}

			s := sched.New(cfg, logger)
			results := make([]*sched.Result, 0, len(sched.Algorithms))
			for _, alg := range sched.Algorithms {
				// each algorithm gets its own fresh process list
				r, err := s.Run(alg, job.Processes(specs))
				if err != nil {
					return fmt.Errorf("%s: %w", alg, err)
				}
				results = append(results, r)
			}

			if asJSON {
				return outputJSON(cmd.OutOrStdout(), results)
			}
			report.Comparison(cmd.OutOrStdout(), results)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Machine-readable JSON output")
	return cmd
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulator over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := settings(cmd)
			if err != nil {
				return err
			}

			app := api.NewApp(api.NewSchedulerHandlerImpl(cfg, logger))
			logger.Info("listening", slog.String("addr", cfg.Addr))
			return app.Listen(cfg.Addr)
		},
	}

	cmd.Flags().StringVar(&flagAddr, "addr", ":9095", "Listen address")
	return cmd
}

func writeTrace(path string, trace []sched.Slice) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trace file: %w", err)
	}
	defer f.Close()

	return sched.WriteTraceCSV(f, trace)
}

func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
