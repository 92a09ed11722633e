package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/koki-develop/imglyph/internal/render"
	"github.com/koki-develop/imglyph/internal/resize"
	"github.com/koki-develop/imglyph/internal/source"
	"github.com/spf13/cobra"
)

var version = "dev" // overridden with ldflags on release

const defaultThreshold = 96

type option struct {
	output      string
	size        uint
	threshold   uint8
	doubleWidth bool
	braille     bool
	blocks      bool
}

func newRootCmd() *cobra.Command {
	opt := &option{}

	cmd := &cobra.Command{
		Use:           "imglyph INPUT",
		Short:         "Render an image as ASCII, block element, or braille glyphs",
		Long:          "Render an image as ASCII, block element, or braille glyphs.\nPass \".\" as INPUT to read the image from standard input.",
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid at this point; keep usage out of runtime errors.
			cmd.SilenceUsage = true

			img, err := source.Load(args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("size") {
				img = resize.Fit(img, opt.size)
			}

			r := render.New(&render.Option{
				Threshold:   opt.threshold,
				DoubleWidth: opt.doubleWidth,
			})

			var rows []string
			switch {
			case opt.braille:
				rows = r.Braille(img)
			case opt.blocks:
				rows = r.Blocks(img)
			default:
				rows = r.ASCII(img)
			}

			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(rows, "\n"))
			return nil
		},
	}

	// TODO: honor --output; rendering currently always goes to stdout.
	cmd.Flags().StringVarP(&opt.output, "output", "o", "", "output file")
	cmd.Flags().UintVarP(&opt.size, "size", "s", 0, "fit the image within this dimension before rendering")
	cmd.Flags().Uint8VarP(&opt.threshold, "threshold", "t", defaultThreshold, "brightness threshold (0-255)")
	cmd.Flags().BoolVarP(&opt.doubleWidth, "double-width", "d", false, "write every glyph twice")
	cmd.Flags().BoolVarP(&opt.braille, "braille", "b", false, "render with braille patterns")
	cmd.Flags().BoolVarP(&opt.blocks, "blocks", "B", false, "render with block elements")
	cmd.MarkFlagsMutuallyExclusive("braille", "blocks")

	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %s", err))
		os.Exit(1)
	}
}
