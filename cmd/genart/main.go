package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"os/signal"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/genart/internal/batch"
	"github.com/san-kum/genart/internal/config"
	"github.com/san-kum/genart/internal/gallery"
	"github.com/san-kum/genart/internal/logging"
	"github.com/san-kum/genart/internal/parse"
	"github.com/san-kum/genart/internal/progress"
	"github.com/san-kum/genart/internal/report"
	"github.com/san-kum/genart/internal/sketch"
	"github.com/san-kum/genart/internal/storage"
)

var (
	configFile string
	outputDir  string
	logLevel   string
	logFormat  string

	size         string
	seed         int64
	preset       string
	plot         bool
	text         string
	count        int
	workers      int
	showProgress bool

	cfg      *config.Config
	logger   = zap.NewNop()
	registry = gallery.NewRegistry()
)

// sketches that take their text from --text
var textSketches = map[string]bool{"cloudscript": true, "colorhoney": true}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "genart",
		Short:             "generative art sketches rendered to svg",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultPath, "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output", config.DefaultOutputDir, "output directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", logging.FormatConsole, "log format (console, json)")

	for _, name := range registry.ListSketches() {
		rootCmd.AddCommand(renderCmd(name))
	}

	techniqueCmd := &cobra.Command{
		Use:   "technique",
		Short: "render a technique demo",
	}
	for _, name := range registry.ListTechniques() {
		techniqueCmd.AddCommand(renderCmd(name))
	}

	batchCmd := &cobra.Command{
		Use:   "batch [sketch]",
		Short: "render many seeds of one sketch",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	addRenderFlags(batchCmd, true)
	batchCmd.Flags().IntVar(&count, "count", config.DefaultBatch, "number of seeds")
	batchCmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "concurrent renders")
	batchCmd.Flags().BoolVar(&showProgress, "progress", false, "show a live progress view")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run]",
		Short: "show a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [sketch]",
		Short: "list available presets for a sketch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Fprintf(out, "no presets for sketch: %s\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Fprintf(out, "  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(techniqueCmd, batchCmd, listCmd, showCmd, presetsCmd)
	return rootCmd
}

func renderCmd(name string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: registry.Help(name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSketch(cmd, name)
		},
	}
	addRenderFlags(cmd, textSketches[name])
	return cmd
}

func addRenderFlags(cmd *cobra.Command, withText bool) {
	cmd.Flags().StringVar(&size, "size", config.DefaultSize, "canvas size WIDTHxHEIGHT")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().BoolVar(&plot, "plot", false, "plot the run's series")
	if withText {
		cmd.Flags().StringVar(&text, "text", "", "text to draw, - reads stdin")
	}
}

func setup(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	// a missing default config is normal, only warn about an explicit one
	boot := zap.NewNop()
	if flags.Changed("config") {
		l, err := logging.New(logLevel, logFormat)
		if err != nil {
			return err
		}
		boot = l
	}

	loaded, err := config.Load(configFile, boot)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg = loaded

	if flags.Changed("output") {
		cfg.OutputDir = outputDir
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = logFormat
	}

	logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	return err
}

// applyFlags folds the render flags of cmd into cfg for the named sketch and
// returns the canvas size.
func applyFlags(cmd *cobra.Command, name string) (width, height int, err error) {
	flags := cmd.Flags()

	if preset != "" {
		if err := config.ApplyPreset(cfg, name, preset); err != nil {
			return 0, 0, err
		}
	}
	if flags.Changed("size") {
		cfg.Size = size
	}
	if cfg.Seed != 0 && !flags.Changed("seed") {
		seed = cfg.Seed
	}

	if flags.Lookup("text") != nil && flags.Changed("text") {
		if !textSketches[name] {
			return 0, 0, fmt.Errorf("%s does not draw text", name)
		}
		t, err := readText(cmd.InOrStdin(), text)
		if err != nil {
			return 0, 0, err
		}
		switch name {
		case "cloudscript":
			cfg.CloudScript.Text = t
		case "colorhoney":
			cfg.ColorHoney.Text = t
		}
	}

	return parse.Size(cfg.Size)
}

func readText(stdin io.Reader, arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read text: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func openStore() (*storage.Store, error) {
	st := storage.New(cfg.OutputDir)
	if err := st.Init(); err != nil {
		return nil, err
	}
	return st, nil
}

// render draws one seed of the named sketch into st.
func render(ctx context.Context, st *storage.Store, name string, width, height int, seed int64) (*storage.RunMetadata, error) {
	sk, err := registry.Get(name, cfg, logger)
	if err != nil {
		return nil, err
	}

	meta := &storage.RunMetadata{
		Sketch: name,
		Seed:   seed,
		Width:  width,
		Height: height,
		Params: registry.Params(name, cfg),
	}
	_, err = st.Save(meta, func(w io.Writer) error {
		stats, err := sketch.Render(ctx, sk, w, width, height, seed)
		if err != nil {
			return err
		}
		meta.Stats = stats.Values
		meta.Series = stats.Series
		return nil
	})
	if err != nil {
		return nil, err
	}
	return meta, nil
}

func runSketch(cmd *cobra.Command, name string) error {
	width, height, err := applyFlags(cmd, name)
	if err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}

	logger.Info("rendering",
		zap.String("sketch", name),
		zap.Int64("seed", seed),
		zap.Int("width", width),
		zap.Int("height", height),
	)
	start := time.Now()
	meta, err := render(cmd.Context(), st, name, width, height, seed)
	if err != nil {
		return err
	}
	logger.Info("saved", zap.String("run", meta.Run), zap.Duration("elapsed", time.Since(start)))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, report.Summary(meta))
	if plot {
		printPlots(out, meta)
	}
	return nil
}

func printPlots(out io.Writer, meta *storage.RunMetadata) {
	for _, key := range slices.Sorted(maps.Keys(meta.Series)) {
		series := meta.Series[key]
		caption := key
		if key == "radius" {
			series = report.Distribution(series)
			caption = "radius distribution"
		}
		if p := report.Plot(caption, series); p != "" {
			fmt.Fprintf(out, "\n%s\n", p)
		}
	}
}

func runBatch(cmd *cobra.Command, args []string) error {
	name := args[0]
	if _, err := registry.Get(name, cfg, logger); err != nil {
		return err
	}
	width, height, err := applyFlags(cmd, name)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("count") && cfg.Batch.Count > 0 {
		count = cfg.Batch.Count
	}
	if !flags.Changed("workers") && cfg.Batch.Workers > 0 {
		workers = cfg.Batch.Workers
	}

	st, err := openStore()
	if err != nil {
		return err
	}

	seeds := batch.Seeds(seed, count)
	renderSeed := func(ctx context.Context, s int64) (string, error) {
		meta, err := render(ctx, st, name, width, height, s)
		if err != nil {
			return "", err
		}
		return meta.Run, nil
	}

	logger.Info("batch started",
		zap.String("sketch", name),
		zap.Int("count", count),
		zap.Int("workers", workers),
		zap.Int64("first_seed", seed),
	)

	var results []batch.Result
	work := func(ctx context.Context, onResult func(batch.Result)) error {
		runner, err := batch.NewRunner(workers, batch.WithProgress(onResult))
		if err != nil {
			return err
		}
		results, err = runner.Run(ctx, seeds, renderSeed)
		return err
	}

	if showProgress {
		err = progress.Run(cmd.Context(), cmd.ErrOrStderr(), fmt.Sprintf("%s x%d", name, count), len(seeds), work)
	} else {
		err = work(cmd.Context(), func(res batch.Result) {
			if res.Err != nil {
				logger.Warn("render failed", zap.Int64("seed", res.Seed), zap.Error(res.Err))
				return
			}
			logger.Debug("rendered", zap.Int64("seed", res.Seed), zap.String("run", res.Run), zap.Duration("elapsed", res.Duration))
		})
	}

	var runs []storage.RunMetadata
	for _, res := range results {
		if res.Run == "" {
			continue
		}
		meta, lerr := st.Load(res.Run)
		if lerr != nil {
			logger.Warn("failed to read run back", zap.String("run", res.Run), zap.Error(lerr))
			continue
		}
		runs = append(runs, *meta)
	}
	fmt.Fprintln(cmd.OutOrStdout(), report.Table(runs))

	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), report.Failed.Render(err.Error()))
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(cfg.OutputDir).List()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), report.Table(runs))
	return nil
}

func showRun(cmd *cobra.Command, args []string) error {
	meta, err := storage.New(cfg.OutputDir).Load(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, report.Summary(meta))
	printPlots(out, meta)
	return nil
}
