package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/armchain/internal/automation"
	"github.com/san-kum/armchain/internal/config"
	"github.com/san-kum/armchain/internal/ebitenui"
	"github.com/san-kum/armchain/internal/export"
	"github.com/san-kum/armchain/internal/gui"
	"github.com/san-kum/armchain/internal/metrics"
	"github.com/san-kum/armchain/internal/sim"
	"github.com/san-kum/armchain/internal/storage"
	"github.com/san-kum/armchain/internal/viz"
)

var (
	dataDir      string
	configFile   string
	preset       string
	backend      string
	clockT       int64
	asJSON       bool
	svgOut       string
	traceOut     string
	traceFrames  int
	recordFrames int
	sweepFrames  int
	sweepParam   string
	sweepMin     float64
	sweepMax     float64
	sweepSteps   int
)

var errUnknownPreset = errors.New("unknown preset")

// main runs the armchain CLI and exits with status 1 on error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers the armchain commands. The root command runs the
// configured window backend when no subcommand is given.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "armchain",
		Short:        "rotating arm chain animation",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if backend != "" {
				cfg.Backend = backend
			}
			return runBackend(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".armchain", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.Flags().StringVar(&backend, "backend", "", "override configured backend (raylib, ebiten, tui)")

	runCmd := &cobra.Command{
		Use:   "run [backend]",
		Short: "open the animation with a backend",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Backend = args[0]
			}
			return runBackend(cfg)
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return viz.Run(cfg)
		},
	}

	posesCmd := &cobra.Command{
		Use:   "poses",
		Short: "print arm poses at a clock value",
		RunE:  printPoses,
	}
	posesCmd.Flags().Int64Var(&clockT, "t", 0, "clock value")
	posesCmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "render one frame to SVG",
		RunE:  renderSVG,
	}
	svgCmd.Flags().Int64Var(&clockT, "t", 0, "clock value")
	svgCmd.Flags().StringVarP(&svgOut, "output", "o", "frame.svg", "output file")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "trace the outermost tip to SVG",
		RunE:  traceTip,
	}
	traceCmd.Flags().Int64Var(&clockT, "t", 0, "starting clock value")
	traceCmd.Flags().IntVar(&traceFrames, "frames", 2000, "number of frames")
	traceCmd.Flags().StringVarP(&traceOut, "output", "o", "trace.svg", "output file")

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "record a pose series to the data directory",
		RunE:  recordRun,
	}
	recordCmd.Flags().Int64Var(&clockT, "t", 0, "starting clock value")
	recordCmd.Flags().IntVar(&recordFrames, "frames", 600, "number of frames")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "replay scripted input and record the result",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "compare metrics across a range of one arm parameter",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "param", "speed_exponent", "arm parameter to vary")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 1.0, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 2.0, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 5, "number of values")
	sweepCmd.Flags().IntVar(&sweepFrames, "frames", 600, "frames per value")

	statsCmd := &cobra.Command{
		Use:   "stats [run_id]",
		Short: "summarise a recording",
		Args:  cobra.ExactArgs(1),
		RunE:  statsRun,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recordings",
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("available presets:")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("  %-12s %2d arms, %s\n", name, len(cfg.Arms.Colors), cfg.Mode)
			}
			return nil
		},
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default config to a yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "armchain.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Printf("config written to %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, tuiCmd, posesCmd, svgCmd, traceCmd, recordCmd, scenarioCmd, sweepCmd, statsCmd, listCmd, presetsCmd, initConfigCmd)

	return rootCmd
}

// loadConfig returns the config file if one is given, else the named preset,
// else the defaults.
func loadConfig() (*config.Config, error) {
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		return cfg, nil
	}
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("%w: %s (available: %v)", errUnknownPreset, preset, config.ListPresets())
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}

func runBackend(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	switch cfg.Backend {
	case "ebiten":
		return ebitenui.Run(cfg)
	case "tui":
		return viz.Run(cfg)
	default:
		return gui.Run(cfg)
	}
}

// newDriver builds a headless driver with its clock set to clockT.
func newDriver() (*config.Config, *sim.Driver, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	d, err := sim.FromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	d.Clock.T = clockT
	return cfg, d, nil
}

func printPoses(cmd *cobra.Command, args []string) error {
	cfg, d, err := newDriver()
	if err != nil {
		return err
	}
	poses := d.Poses(cfg.CanvasSize())

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(poses)
	}

	fmt.Printf("t=%d  mode=%s  arms=%d\n\n", d.Clock.T, d.Mode(), len(poses))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ARM\tBASE\tTIP\tWIDTH\tCOLOR")
	for i, p := range poses {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.1f\t#%02x%02x%02x\n",
			i, p.Base, p.Tip, p.Width, p.Color.R, p.Color.G, p.Color.B)
	}
	return w.Flush()
}

func renderSVG(cmd *cobra.Command, args []string) error {
	cfg, d, err := newDriver()
	if err != nil {
		return err
	}
	size := cfg.CanvasSize()
	svg := export.CommandsToSVG(d.Frame(size, 0), size, d.Background())
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	fmt.Printf("frame t=%d written to %s\n", d.Clock.T, svgOut)
	return nil
}

func traceTip(cmd *cobra.Command, args []string) error {
	cfg, d, err := newDriver()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := sim.Run(ctx, d, cfg.CanvasSize(), traceFrames)
	if err != nil {
		return err
	}
	tips := result.Tips()
	if len(tips) < 2 {
		return fmt.Errorf("trace needs at least 2 frames with arms, got %d", len(tips))
	}

	svg := export.TrajectoryToSVG(tips, cfg.Window.Width, cfg.Window.Height, cfg.Arms.Colors[len(cfg.Arms.Colors)-1])
	if err := os.WriteFile(traceOut, []byte(svg), 0644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	fmt.Printf("traced %d frames to %s\n", len(tips), traceOut)
	return nil
}

func recordRun(cmd *cobra.Command, args []string) error {
	cfg, d, err := newDriver()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	size := cfg.CanvasSize()
	ms := metrics.Default(math.Min(size.W, size.H) / 2)
	observers := make([]sim.Observer, len(ms))
	for i, m := range ms {
		observers[i] = m
	}

	result, err := sim.Run(ctx, d, size, recordFrames, observers...)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	name := preset
	if name == "" {
		name = "custom"
	}
	runID, err := st.Save(storage.RunMetadata{
		Preset: name,
		Mode:   d.Mode().String(),
		Width:  float64(cfg.Window.Width),
		Height: float64(cfg.Window.Height),
	}, result)
	if err != nil {
		return fmt.Errorf("save recording: %w", err)
	}

	fmt.Printf("recorded %d frames: %s\n", len(result.Times), runID)
	printMetrics(ms)
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}
	if sc.Preset != "" && preset == "" && configFile == "" {
		preset = sc.Preset
	}

	cfg, d, err := newDriver()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("scenario %s: %d frames, %d steps\n", sc.Name, sc.Frames, len(sc.Steps))
	res, err := automation.RunScenario(ctx, sc, d, cfg.CanvasSize())
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if res.QuitFrame >= 0 {
		fmt.Printf("quit at frame %d\n", res.QuitFrame)
	}
	if len(res.Times) == 0 {
		fmt.Println("no frames recorded")
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	name := sc.Name
	if name == "" {
		name = "scenario"
	}
	runID, err := st.Save(storage.RunMetadata{
		Preset: name,
		Mode:   d.Mode().String(),
		Width:  float64(cfg.Window.Width),
		Height: float64(cfg.Window.Height),
	}, res.Result)
	if err != nil {
		return fmt.Errorf("save recording: %w", err)
	}

	fmt.Printf("recorded %d frames: %s (final %s)\n", len(res.Times), runID, d.Clock)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := automation.RunSweep(ctx, &automation.ParameterSweep{
		ParamName: sweepParam,
		ParamMin:  sweepMin,
		ParamMax:  sweepMax,
		NumSteps:  sweepSteps,
		Frames:    sweepFrames,
	}, cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tMAX_REACH\tTIP_PATH\tCONTAINMENT\n", strings.ToUpper(sweepParam))
	for _, r := range results {
		fmt.Fprintf(w, "%.4f\t%.2f\t%.2f\t%.3f\n",
			r.ParamValue,
			r.Metrics["max_reach"],
			r.Metrics["tip_path"],
			r.Metrics["containment"],
		)
	}
	return w.Flush()
}

func statsRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return fmt.Errorf("load recording: %w", err)
	}
	times, frames, err := st.LoadPoses(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s (%s, %s mode)\n", meta.ID, meta.Preset, meta.Mode)
	fmt.Println(describeRange(times))

	ms := metrics.Default(math.Min(meta.Width, meta.Height) / 2)
	metrics.Observe(times, frames, ms...)
	printMetrics(ms)
	return nil
}

// describeRange reports the recorded clock span. Pauses and nudges mean the
// clock need not step by one per frame.
func describeRange(times []int64) string {
	if len(times) == 0 {
		return "frames: 0"
	}
	return fmt.Sprintf("frames: %d, t=%d..%d", len(times), times[0], times[len(times)-1])
}

func printMetrics(ms []metrics.Metric) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, m := range ms {
		fmt.Fprintf(w, "%s\t%.3f\n", m.Name(), m.Value())
	}
	w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no recordings found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tMODE\tTIME\tARMS\tFRAMES\tSTART")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\n",
			run.ID,
			run.Preset,
			run.Mode,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Arms,
			run.Frames,
			run.StartT,
		)
	}

	return w.Flush()
}
