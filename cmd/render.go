package cmd

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mj1618/eve-ui-reader/internal/log"
	"github.com/mj1618/eve-ui-reader/internal/output"
	"github.com/mj1618/eve-ui-reader/internal/overlay"
)

var renderCmd = &cobra.Command{
	Use:   "render <snapshot>",
	Short: "Draw the regions of recognised components as a PNG",
	Long: `Draw a box around every recognised component of a snapshot, labelled by
kind, component ID or center coordinates. With --background the boxes are
drawn over a screenshot of the client, which is stretched to the canvas.

Examples:
  eve-ui-reader render shot.json -o overlay.png
  eve-ui-reader render shot.json --background shot.png --labels id -o overlay.png`,
	Args: exactlyOneSnapshot,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout as base64)")
	renderCmd.Flags().String("background", "", "Screenshot to draw on (png, jpg, bmp or webp)")
	renderCmd.Flags().Float64("scale", 0.5, "Canvas size relative to the client window, without --background")
	renderCmd.Flags().String("labels", "kind", "Labels: kind, id, coords")
}

func runRender(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("output")
	background, _ := cmd.Flags().GetString("background")
	scale, _ := cmd.Flags().GetFloat64("scale")
	labels, _ := cmd.Flags().GetString("labels")

	mode, err := overlay.ParseLabelMode(labels)
	if err != nil {
		return err
	}
	if scale <= 0 || scale > 4 {
		return fmt.Errorf("--scale must be in (0, 4], got %g", scale)
	}

	ui, err := loadSnapshot(args[0])
	if err != nil {
		return err
	}
	if ui.UITree == nil {
		return errors.New("snapshot root has no display region")
	}

	opts := overlay.Options{Scale: scale, Mode: mode}
	if background != "" {
		if opts.Background, err = overlay.ReadImage(background); err != nil {
			return err
		}
	}
	components := output.Components(ui)
	img := overlay.Render(ui.UITree.Total, components, opts)
	log.Debug("rendered", "components", len(components), "size", img.Bounds().Size())

	var buf bytes.Buffer
	if err := overlay.WritePNG(&buf, img); err != nil {
		return err
	}

	// Output to file or stdout
	if outPath != "" {
		return os.WriteFile(outPath, buf.Bytes(), 0o644)
	}

	// Default: write to stdout as base64 for easy agent consumption
	encoder := base64.NewEncoder(base64.StdEncoding, output.Stdout)
	if _, err := encoder.Write(buf.Bytes()); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}
	_, err = fmt.Fprintln(output.Stdout)
	return err
}
