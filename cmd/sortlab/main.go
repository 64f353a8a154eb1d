package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/sortlab/internal/app"
	"github.com/san-kum/sortlab/internal/config"
	"github.com/san-kum/sortlab/internal/experiment"
	"github.com/san-kum/sortlab/internal/sequence"
	"github.com/san-kum/sortlab/internal/sorting"
	"github.com/san-kum/sortlab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	verbose    bool
	scriptFile string
	mode       string
	speed      float64
	preset     string
	count      int
	sizes      []int
	frameLimit int
)

// main registers the sortlab commands. Without a subcommand it starts the
// interactive prompt.
func main() {
	rootCmd := &cobra.Command{
		Use:          "sortlab",
		Short:        "watch sorting algorithms work in the terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runREPL,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	rootCmd.Flags().StringVar(&scriptFile, "script", "", "read commands from a file instead of stdin")

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "sort once with live visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runSort,
	}
	runCmd.Flags().StringVar(&mode, "mode", "", "render mode: list or graph")
	runCmd.Flags().Float64Var(&speed, "speed", 0, "playback speed multiplier")

	compareCmd := &cobra.Command{
		Use:   "compare [algorithm1] [algorithm2]",
		Short: "measure two algorithms on the same input",
		Args:  cobra.ExactArgs(2),
		RunE:  compareAlgorithms,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [algorithm]...",
		Short: "measure algorithms over growing input sizes",
		Args:  cobra.MinimumNArgs(1),
		RunE:  benchAlgorithms,
	}
	benchCmd.Flags().IntSliceVar(&sizes, "sizes", nil, "input sizes (default from config)")

	playCmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "record a run and replay it interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  playSort,
	}
	playCmd.Flags().StringVar(&mode, "mode", "", "render mode: list or graph")
	playCmd.Flags().IntVar(&frameLimit, "frames", viz.DefaultFrameLimit, "maximum recorded frames")

	for _, c := range []*cobra.Command{runCmd, compareCmd, playCmd} {
		c.Flags().StringVar(&preset, "preset", "", "input shape instead of the configured sequence")
		c.Flags().IntVar(&count, "count", 0, "number of elements for --preset")
	}

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list available algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range sorting.All() {
				stable := ""
				if a.Stable() {
					stable = " (stable)"
				}
				fmt.Printf("  %-10s %s%s\n", a, a.Summary(), stable)
			}
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available input shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range sequence.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, compareCmd, benchCmd, playCmd, algorithmsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup() (*config.Config, *slog.Logger, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if configFile == "" {
		return config.DefaultConfig(), logger, nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("config loaded", "path", configFile)
	return cfg, logger, nil
}

// input is the configured sequence, or the --preset shape when given.
func input(cfg *config.Config, gen *sequence.Generator) ([]int, error) {
	if preset == "" {
		return slices.Clone(cfg.Sequence), nil
	}
	n := count
	if n == 0 {
		n = cfg.Generate.Count
	}
	if n == 0 {
		n = cfg.Generate.Max - cfg.Generate.Min + 1
	}
	return gen.Preset(preset, n)
}

func runREPL(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	screen := viz.NewTerminal(os.Stdout)
	ctrl, err := app.New(app.Options{
		Config: cfg,
		Screen: screen,
		Logger: logger,
		Prompt: scriptFile == "" && viz.IsTerminal(os.Stdin),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return ctrl.Run(ctx, in)
}

func runSort(cmd *cobra.Command, args []string) error {
	alg, err := sorting.Parse(args[0])
	if err != nil {
		return err
	}
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	if mode != "" {
		cfg.Mode = mode
	}
	if cmd.Flags().Changed("speed") {
		cfg.Speed = speed
	}

	gen := sequence.NewGenerator(cfg.Seed)
	data, err := input(cfg, gen)
	if err != nil {
		return err
	}

	screen := viz.NewTerminal(os.Stdout)
	ctrl, err := app.New(app.Options{
		Config:    cfg,
		Screen:    screen,
		Logger:    logger,
		Generator: gen,
	})
	if err != nil {
		return err
	}
	ctrl.SetSequence(data)

	if err := screen.HideCursor(); err != nil {
		return err
	}
	defer screen.ShowCursor()
	return ctrl.Sort(alg)
}

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	a, err := sorting.Parse(args[0])
	if err != nil {
		return err
	}
	b, err := sorting.Parse(args[1])
	if err != nil {
		return err
	}
	cfg, _, err := setup()
	if err != nil {
		return err
	}
	data, err := input(cfg, sequence.NewGenerator(cfg.Seed))
	if err != nil {
		return err
	}

	report, err := experiment.NewHarness().Compare(a, b, data)
	if err != nil {
		return err
	}
	return report.Write(os.Stdout)
}

func benchAlgorithms(cmd *cobra.Command, args []string) error {
	algs := make([]sorting.Algorithm, 0, len(args))
	for _, name := range args {
		a, err := sorting.Parse(name)
		if err != nil {
			return err
		}
		algs = append(algs, a)
	}
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	if len(sizes) == 0 {
		sizes = cfg.Bench.Sizes
	}

	// Values stay within the counting sort table so every algorithm
	// accepts the same input.
	gen := sequence.NewGenerator(cfg.Seed)
	newInput := func(n int) ([]int, error) {
		hi := min(max(4*n, 2), sorting.MaxCountingValue)
		return gen.Generate(n, sequence.Range{Min: 0, Max: hi}, false)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("benchmarking %d algorithm(s) over sizes %v\n\n", len(algs), sizes)
	rows, err := experiment.NewHarness().Bench(ctx, algs, sizes, newInput)
	if err != nil {
		return err
	}
	logger.Debug("bench finished", "rows", len(rows))

	if err := experiment.WriteBench(os.Stdout, rows); err != nil {
		return err
	}
	fmt.Println()
	for _, a := range algs {
		if graph := experiment.PlotComparisons(rows, a); graph != "" {
			fmt.Println(graph)
			fmt.Println()
		}
	}
	return nil
}

func playSort(cmd *cobra.Command, args []string) error {
	alg, err := sorting.Parse(args[0])
	if err != nil {
		return err
	}
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	if mode != "" {
		cfg.Mode = mode
	}
	m, err := viz.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}
	theme, err := viz.ThemeByName(cfg.Theme)
	if err != nil {
		return err
	}

	data, err := input(cfg, sequence.NewGenerator(cfg.Seed))
	if err != nil {
		return err
	}
	rec := viz.NewRecorder(data, frameLimit)
	if err := sorting.Run(alg, data, rec); err != nil {
		return err
	}
	trace := rec.Trace(alg.String(), data)
	logger.Debug("recorded", "algorithm", alg, "frames", len(trace.Frames), "truncated", trace.Truncated)

	player := viz.NewPlayer(trace, m, viz.Options{Theme: theme, GraphHeight: cfg.GraphHeight})
	p := tea.NewProgram(player, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
