package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/tavianator/kdforest/canvas"
	"github.com/tavianator/kdforest/color"
	"github.com/tavianator/kdforest/palette"
	"github.com/tavianator/kdforest/placement"
	"github.com/tavianator/kdforest/progress"
)

// options collects every flag. Canvas dimensions are derived from the bit
// depth (width rounds the exponent up, height down), so a 24-bit palette
// yields the classic 4096x4096 image.
type options struct {
	bitDepth       int
	mode           string
	order          string
	space          string
	seed           uint32
	progressStride int
	output         string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "kdforest",
		Short: "Render an image where every color of a bit-depth palette appears exactly once",
		Long: `kdforest enumerates all 2^bit-depth colors of a palette, orders them, and
places each one at the pixel whose already-placed neighbors most closely
match it in the chosen perceptual color space. The result is a smooth
flood of color covering the whole canvas, with every color used exactly
once.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.bitDepth, "bit-depth", "b", 24, "palette bit depth, 1-24")
	flags.StringVarP(&opts.mode, "mode", "m", "hilbert", "palette enumeration mode: morton, hilbert, or raw")
	flags.StringVarP(&opts.order, "order", "r", "hue", "palette ordering: none, hue, or random")
	flags.StringVarP(&opts.space, "space", "c", "lab", "color space for nearest-neighbor matching: rgb, lab, or luv")
	flags.Uint32VarP(&opts.seed, "seed", "s", 0, "seed for all random choices (shuffle and neighbor selection)")
	flags.IntVarP(&opts.progressStride, "progress-stride", "p", -1, "placements between progress reports; -1 means once per row, 0 disables")
	flags.StringVarP(&opts.output, "output", "o", "kd-forest.png", "output PNG path")

	return cmd
}

func run(out io.Writer, opts *options) error {
	space, err := color.ParseSpace(opts.space)
	if err != nil {
		return err
	}
	mode, err := palette.ParseMode(opts.mode)
	if err != nil {
		return err
	}
	order, err := palette.ParseOrder(opts.order)
	if err != nil {
		return err
	}

	points, srgb, err := palette.Generate(opts.bitDepth, mode, order, space, opts.seed)
	if err != nil {
		return err
	}

	width := 1 << ((opts.bitDepth + 1) / 2)
	height := 1 << (opts.bitDepth / 2)

	stride := opts.progressStride
	if stride < 0 {
		stride = width
	}

	fmt.Fprintf(out, "Generating a %dx%d image (%d pixels)\n", width, height, len(points))

	printer := progress.New(out, len(points), false)
	engineOpts := []placement.Option{}
	if stride > 0 {
		engineOpts = append(engineOpts,
			placement.WithProgressStride(stride),
			placement.WithProgress(printer.Report),
		)
	}

	rng := rand.New(rand.NewSource(int64(opts.seed)))
	engine := placement.New(width, height, width/2, height/2, rng, engineOpts...)

	img := make([]uint32, width*height)
	for _, j := range placement.BitPlaneOrder(len(points)) {
		x, y, _, placeErr := engine.Place(points[j])
		if placeErr != nil {
			return placeErr
		}
		img[y*width+x] = srgb[j]
	}
	if stride > 0 {
		printer.Done(engine.LiveCountMax())
	}

	file, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", opts.output, err)
	}

	encodeErr := canvas.Encode(file, width, height, func(yield func(x, y int, srgb uint32) bool) {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if !yield(x, y, img[y*width+x]) {
					return
				}
			}
		}
	})
	if closeErr := file.Close(); encodeErr == nil {
		encodeErr = closeErr
	}
	return encodeErr
}
