package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/linsim/internal/config"
	"github.com/san-kum/linsim/internal/dynamo"
	"github.com/san-kum/linsim/internal/export"
	"github.com/san-kum/linsim/internal/linalg"
	"github.com/san-kum/linsim/internal/logging"
	"github.com/san-kum/linsim/internal/metrics"
	"github.com/san-kum/linsim/internal/viz"
)

var (
	logLevel   string
	configFile string
	preset     string
	cycles     int
	places     int
	noRound    bool
	stochastic bool
	tolerance  float64
	window     int
	format     string
	plot       bool
	plotHeight int
	plotWidth  int

	logger *slog.Logger
)

// main builds the linsim command tree and exits with status 1 if the
// selected command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "linsim",
		Short:        "linear dynamical system and markov chain simulator",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewLogger(logLevel, cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (error, warn, info, debug, trace)")

	runCmd := &cobra.Command{
		Use:   "run [system]",
		Short: "simulate a preset system or a config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)
	runCmd.Flags().StringVar(&format, "format", "table", "output format (table, json, csv)")
	runCmd.Flags().BoolVar(&plot, "plot", false, "draw an ascii chart of every state entry")
	runCmd.Flags().IntVar(&plotHeight, "height", 12, "chart height")
	runCmd.Flags().IntVar(&plotWidth, "width", 70, "chart width")

	sweepCmd := &cobra.Command{
		Use:   "sweep [system]",
		Short: "simulate from every pure initial state in parallel",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	addRunFlags(sweepCmd)

	validateCmd := &cobra.Command{
		Use:   "validate [system]",
		Short: "check that a system is a valid markov chain",
		Args:  cobra.MaximumNArgs(1),
		RunE:  validateSystem,
	}
	validateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	validateCmd.Flags().StringVar(&preset, "preset", "", "preset name")

	presetsCmd := &cobra.Command{
		Use:   "presets [system]",
		Short: "list systems, or the presets of one system",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, sweepCmd, validateCmd, presetsCmd)
	return rootCmd
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "preset name (default: first preset of the system)")
	cmd.Flags().IntVar(&cycles, "cycles", config.DefaultCycles, "number of steps")
	cmd.Flags().IntVar(&places, "round", config.DefaultPlaces, "decimal places for display")
	cmd.Flags().BoolVar(&noRound, "no-round", false, "print full precision values")
	cmd.Flags().BoolVar(&stochastic, "stochastic", false, "validate as a markov chain before running")
	cmd.Flags().Float64Var(&tolerance, "tol", 0, "equilibrium tolerance (0 disables detection)")
	cmd.Flags().IntVar(&window, "window", config.DefaultWindow, "consecutive steps below tolerance")
}

// loadConfig resolves the run description: preset first, then the config
// file, then any flags the user set explicitly.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	var cfg *config.Config

	if len(args) == 1 {
		system := args[0]
		name := preset
		if name == "" {
			names := config.ListPresets(system)
			if len(names) == 0 {
				return nil, fmt.Errorf("unknown system: %s (available: %v)", system, config.ListSystems())
			}
			name = names[0]
		}
		cfg = config.GetPreset(system, name)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets(system))
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cfg == nil {
		return nil, fmt.Errorf("a system name or --config is required")
	}

	flags := cmd.Flags()
	if flags.Changed("cycles") {
		cfg.Cycles = cycles
	}
	if flags.Changed("round") {
		cfg.Display.Round = true
		cfg.Display.Places = places
	}
	if flags.Changed("no-round") && noRound {
		cfg.Display.Round = false
	}
	if flags.Changed("stochastic") {
		cfg.Stochastic = stochastic
	}
	if flags.Changed("tol") {
		cfg.Convergence.Tolerance = tolerance
	}
	if flags.Changed("window") {
		cfg.Convergence.Window = window
	}

	return cfg, nil
}

// stepTracer logs every state at trace level.
type stepTracer struct {
	logger *slog.Logger
}

func (s stepTracer) OnStep(step int, x linalg.Vector) {
	s.logger.Log(context.Background(), logging.LevelTrace, "step", "k", step, "state", fmt.Sprint(x))
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	logger.Debug("starting run", "system", cfg.System, "dim", len(cfg.Initial), "cycles", cfg.Cycles, "stochastic", cfg.Stochastic)

	s := dynamo.New(cfg.Matrix(), cfg.Options())
	for _, m := range metrics.Defaults() {
		s.AddMetric(m)
	}
	if logger.Enabled(context.Background(), logging.LevelTrace) {
		s.AddObserver(stepTracer{logger: logger})
	}

	result, err := s.Run(cfg.InitState(), cfg.Cycles)
	if err != nil {
		logger.Error("run failed", "system", cfg.System, "err", err)
		return err
	}

	if result.Converged {
		logger.Info("equilibrium detected", "system", cfg.System, "step", result.Equilibrium)
	}

	out := cmd.OutOrStdout()
	labels := make([]string, len(cfg.Initial))
	for i := range labels {
		labels[i] = cfg.Label(i)
	}

	shown := result.Trajectory
	digits := -1
	if result.Display != nil {
		shown = result.Display
		digits = cfg.Display.Places
	}

	switch format {
	case "json":
		return export.WriteJSON(out, cfg.System, labels, result)
	case "csv":
		return export.WriteCSV(out, labels, shown, digits)
	case "table":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	equilibrium := "not reached"
	if result.Converged {
		equilibrium = strconv.Itoa(result.Equilibrium)
	}
	summary := [][2]string{
		{"system", cfg.System},
		{"dimension", strconv.Itoa(len(cfg.Initial))},
		{"steps", strconv.Itoa(result.Steps)},
		{"equilibrium", equilibrium},
	}
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		summary = append(summary, [2]string{name, strconv.FormatFloat(result.Metrics[name], 'g', 6, 64)})
	}
	fmt.Fprint(out, viz.Summary(summary...))
	fmt.Fprintln(out)
	fmt.Fprint(out, viz.Table(shown, labels, digits, result.Equilibrium))

	if plot {
		fmt.Fprintln(out)
		fmt.Fprintln(out, viz.Chart(shown, labels, cfg.System, plotHeight, plotWidth))
	}

	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	n := len(cfg.Initial)
	initials := make([]linalg.Vector, 0, n+1)
	initials = append(initials, cfg.InitState())
	for i := 0; i < n; i++ {
		e := make(linalg.Vector, n)
		e[i] = 1
		initials = append(initials, e)
	}

	logger.Debug("starting sweep", "system", cfg.System, "runs", len(initials), "cycles", cfg.Cycles)

	results, err := dynamo.SimulateEach(cmd.Context(), cfg.Matrix(), initials, cfg.Cycles, cfg.Options())
	if err != nil {
		logger.Error("sweep failed", "system", cfg.System, "err", err)
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INITIAL\tFINAL\tEQUILIBRIUM")
	for i, res := range results {
		final := res.Trajectory.Final()
		if res.Display != nil {
			final = res.Display.Final()
		}
		eq := "-"
		if res.Converged {
			eq = strconv.Itoa(res.Equilibrium)
		}
		fmt.Fprintf(w, "%v\t%v\t%s\n", initials[i], final, eq)
	}
	return w.Flush()
}

func validateSystem(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	op := cfg.Matrix()
	out := cmd.OutOrStdout()
	if op.IsSquare() {
		fmt.Fprintf(out, "column sums: %v\n", op.ColumnSums())
	}
	fmt.Fprintf(out, "initial sum: %v\n", cfg.InitState().Sum())

	if err := dynamo.ValidateStochastic(op, cfg.InitState(), dynamo.DefaultEpsilon); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: valid markov chain\n", cfg.System)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		fmt.Fprintln(out, "systems:")
		for _, s := range config.ListSystems() {
			fmt.Fprintf(out, "  %s\n", s)
		}
		return nil
	}

	presets := config.ListPresets(args[0])
	if len(presets) == 0 {
		fmt.Fprintf(out, "no presets for system: %s\n", args[0])
		return nil
	}
	fmt.Fprintf(out, "presets for %s:\n", args[0])
	for _, p := range presets {
		fmt.Fprintf(out, "  %s\n", p)
	}
	return nil
}
