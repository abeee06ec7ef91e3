package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/briandowns/spinner"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"artdisrupt/pkg/config"
	"artdisrupt/pkg/disruptor"
	artImage "artdisrupt/pkg/image"
	"artdisrupt/pkg/model"
)

const protectedSuffix = "_protected.png"

type protectOpts struct {
	images         []string
	outputDir      string
	preset         string
	seed           int64
	pngCompression string
	workers        int
	reportFormat   string
	maxPixels      int
}

func (o protectOpts) toProtectConfig(seedSet bool) (config.ProtectConfig, error) {
	preset, err := disruptor.ParsePreset(o.preset)
	if err != nil {
		return config.ProtectConfig{}, err
	}
	compression, err := config.ParsePngCompression(o.pngCompression)
	if err != nil {
		return config.ProtectConfig{}, err
	}
	pc := config.ProtectConfig{
		Preset:              preset,
		PngCompressionLevel: compression,
		MaxPixels:           o.maxPixels,
	}
	if seedSet {
		seed := o.seed
		pc.Seed = &seed
	}
	pc.PopulateUnsetConfigVars()
	return pc, nil
}

func ProtectCommand() *cobra.Command {
	opts := protectOpts{}

	protectCmd := &cobra.Command{
		Use:     "protect",
		Example: "artdisrupt protect --image art.png --image sketch.jpg --output-dir protected --preset strong",
		Short:   "Apply a protection preset to one or more images",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isValidReportFormat(opts.reportFormat) {
				return fmt.Errorf("unknown report format %q, options are text, json, yaml", opts.reportFormat)
			}
			protectConfig, err := opts.toProtectConfig(cmd.Flags().Changed("seed"))
			if err != nil {
				return err
			}

			s := newProtectSpinner(len(opts.images), protectConfig.Preset)
			s.Start()
			reports, err := ProtectImageFiles(cmd.Context(), opts.images, opts.outputDir, protectConfig, opts.workers)
			s.Stop()
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), opts.reportFormat, reports)
		},
	}

	protectCmd.Flags().StringSliceVar(&opts.images, "image", nil, "Images to protect. Can be comma separated, or you can supply the image param several times")
	protectCmd.Flags().StringVar(&opts.outputDir, "output-dir", ".", "Directory the protected PNG images are written to")
	protectCmd.Flags().StringVar(&opts.preset, "preset", string(disruptor.DefaultPreset), "Protection preset. Options are minimal, balanced, strong, maximum")
	protectCmd.Flags().Int64Var(&opts.seed, "seed", disruptor.DefaultSeed, "Seed for the noise generator, the same seed always produces the same output")
	protectCmd.Flags().StringVar(&opts.pngCompression, "png-compression", "best", "Compression for output png. Options are default, none, fast, best")
	protectCmd.Flags().IntVar(&opts.workers, "workers", 4, "Number of images protected concurrently")
	protectCmd.Flags().StringVar(&opts.reportFormat, "report-format", "text", "Format of the printed report. Options are text, json, yaml")
	protectCmd.Flags().IntVar(&opts.maxPixels, "max-pixels", 0, "Reject images with more pixels than this, 0 disables the check")

	if err := protectCmd.MarkFlagRequired("image"); err != nil {
		panic(err)
	}

	return protectCmd
}

// newProtectSpinner writes to stderr so reports on stdout stay machine readable.
func newProtectSpinner(images int, preset disruptor.Preset) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[4], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Prefix = fmt.Sprintf("Protecting %d image(s) with the %s preset ", images, preset)
	return s
}

// ProtectImageFiles protects every image in paths concurrently, writing <name>_protected.png
// files into outputDir. Reports are returned in the order of paths.
func ProtectImageFiles(ctx context.Context, paths []string, outputDir string, protectConfig config.ProtectConfig, workers int) ([]model.ProtectedFile, error) {
	outputs, err := outputPaths(paths, outputDir)
	if err != nil {
		return nil, err
	}
	if err = os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if workers < 1 {
		workers = 1
	}

	reports := make([]model.ProtectedFile, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			report, err := protectImageFile(paths[i], outputs[i], protectConfig)
			if err != nil {
				return fmt.Errorf("%s: %w", paths[i], err)
			}
			reports[i] = report
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func protectImageFile(sourcePath, outputPath string, protectConfig config.ProtectConfig) (model.ProtectedFile, error) {
	raw, err := os.ReadFile(sourcePath)
	if err != nil {
		return model.ProtectedFile{}, err
	}

	protector, err := artImage.NewImageProtector(protectConfig)
	if err != nil {
		return model.ProtectedFile{}, err
	}

	var encoded bytes.Buffer
	result, err := protector.Protect(raw, &encoded)
	if err != nil {
		return model.ProtectedFile{}, err
	}

	if err = os.WriteFile(outputPath, encoded.Bytes(), 0o644); err != nil {
		return model.ProtectedFile{}, err
	}

	return model.ProtectedFile{
		Source: sourcePath,
		Output: outputPath,
		Result: result,
		Stats:  protector.Stats(),
	}, nil
}

func outputPaths(paths []string, outputDir string) ([]string, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no images supplied")
	}
	seen := make(map[string]string, len(paths))
	outputs := make([]string, 0, len(paths))
	for _, p := range paths {
		base := filepath.Base(p)
		name := strings.TrimSuffix(base, filepath.Ext(base)) + protectedSuffix
		out := filepath.Join(outputDir, name)
		if previous, found := seen[out]; found {
			return nil, fmt.Errorf("%s and %s would both be written to %s", previous, p, out)
		}
		seen[out] = p
		outputs = append(outputs, out)
	}
	return outputs, nil
}

func isValidReportFormat(format string) bool {
	switch format {
	case "text", "json", "yaml":
		return true
	}
	return false
}

func writeReport(w io.Writer, format string, reports []model.ProtectedFile) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(reports)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, report := range reports {
		r := report.Result
		fmt.Fprintf(tw, "Generated %s from %s\n", report.Output, report.Source)
		fmt.Fprintf(tw, "  Preset\t%s (seed %d)\n", r.Preset, r.Seed)
		fmt.Fprintf(tw, "  Dimensions\t%dx%d\n", r.Width, r.Height)
		fmt.Fprintf(tw, "  Size\t%s -> %s\n", humanize.Bytes(uint64(r.OriginalSize)), humanize.Bytes(uint64(r.ProcessedSize)))
		fmt.Fprintf(tw, "  PSNR\t%s\n", formatPSNR(r.PSNR))
		fmt.Fprintf(tw, "  Perceptual hash distance\t%d\n", r.HashDistance)
		fmt.Fprintf(tw, "  Effectiveness\treverse image %.0f%%, AI training %.0f%%, overall %.1f%%\n",
			r.Effectiveness.GoogleReverseImage*100, r.Effectiveness.AIModelTraining*100, r.Effectiveness.Overall*100)
		fmt.Fprintf(tw, "  Timings\tdecode %s, disruption %s, png encode %s\n",
			report.Stats.Decode, report.Stats.Disruption, report.Stats.OutputImageEncoding)
	}
	return tw.Flush()
}

func formatPSNR(psnr model.PSNR) string {
	if psnr.IsInf() {
		return "inf (identical)"
	}
	return fmt.Sprintf("%.2f dB", float64(psnr))
}
