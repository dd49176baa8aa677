package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/vectorize"
	"github.com/gogpu/vectorize/internal/config"
	"github.com/gogpu/vectorize/internal/filter"
	imgio "github.com/gogpu/vectorize/internal/image"
	"github.com/gogpu/vectorize/internal/logging"
	"github.com/gogpu/vectorize/internal/metrics"
	"github.com/gogpu/vectorize/internal/preview"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vectorize <input_image> <output_svg>",
		Short: "Convert a raster image to an SVG line drawing",
		Long: `vectorize collects the foreground pixels of an image region by region,
simplifies each region with Ramer-Douglas-Peucker and writes one SVG path
per region.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runConvert,
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "YAML configuration file")
	flags.Float64("tolerance", vectorize.DefaultTolerance, "simplification tolerance in pixels")
	flags.Float64("blur", 0, "Gaussian blur radius applied before extraction (0 disables)")
	flags.Int("threshold", 0, "clear pixels darker than this luminance, 0-255 (0 disables)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "json", "log format (json, text)")

	cmd.Flags().String("preview", "", "also render the paths to this PNG file")
	cmd.Flags().String("metrics-file", "", "write Prometheus metrics to this file")
	cmd.Flags().BoolP("quiet", "q", false, "suppress progress and summary output")

	cmd.AddCommand(newServeCmd(), newVersionCmd())
	return cmd
}

// loadConfig reads the configuration file and applies explicitly set flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("tolerance") {
		cfg.Tolerance, _ = flags.GetFloat64("tolerance")
	}
	if flags.Changed("blur") {
		cfg.Preprocess.Blur, _ = flags.GetFloat64("blur")
	}
	if flags.Changed("threshold") {
		cfg.Preprocess.Threshold, _ = flags.GetInt("threshold")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Log.Format, _ = flags.GetString("log-format")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return logging.New(level, cfg.Log.Format, w)
}

func preprocessor(cfg config.Config) vectorize.Preprocessor {
	return filter.Pipeline(cfg.Preprocess.Blur, uint8(cfg.Preprocess.Threshold))
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}
	vectorize.SetLogger(logger)
	defer vectorize.SetLogger(nil)

	quiet, _ := cmd.Flags().GetBool("quiet")
	previewPath, _ := cmd.Flags().GetString("preview")
	metricsPath, _ := cmd.Flags().GetString("metrics-file")

	img, _, err := imgio.Load(input)
	if err != nil {
		return fmt.Errorf("opening image '%s': %w", input, err)
	}

	opts := []vectorize.Option{
		vectorize.WithTolerance(cfg.Tolerance),
		vectorize.WithMinPoints(cfg.MinPoints),
		vectorize.WithPreprocessor(preprocessor(cfg)),
	}
	interactive := !quiet && isTerminal(stderr)
	if interactive {
		opts = append(opts, vectorize.WithProgress(func(row, height int) {
			fmt.Fprintf(stderr, "\r%s", vectorize.ProgressMessage(row, height))
		}))
	}

	m := metrics.New()
	start := time.Now()
	doc, err := vectorize.NewConverter(opts...).ConvertImage(img)
	m.Observe(doc, time.Since(start), err)
	if interactive {
		fmt.Fprintln(stderr)
	}
	if err != nil {
		return fmt.Errorf("converting image '%s': %w", input, err)
	}

	if err := doc.SaveSVG(output); err != nil {
		return fmt.Errorf("saving SVG to '%s': %w", output, err)
	}
	fmt.Fprintf(stdout, "SVG saved to '%s'\n", output)

	if previewPath != "" {
		canvas := preview.Render(doc.Width, doc.Height, doc.Polylines(), preview.DefaultOptions())
		if err := preview.SavePNG(previewPath, canvas); err != nil {
			return fmt.Errorf("saving preview to '%s': %w", previewPath, err)
		}
	}
	if metricsPath != "" {
		if err := m.WriteTextfile(metricsPath); err != nil {
			return err
		}
	}
	if !quiet {
		printSummary(stderr, doc)
	}
	return nil
}

func printSummary(w io.Writer, doc *vectorize.Document) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "%d paths from %d regions (%d discarded), %d of %d points kept\n",
		len(doc.Paths), doc.Stats.Regions, doc.Stats.Discarded,
		doc.Stats.PointsSimplified, doc.Stats.PointsExtracted)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
