// Package overlay draws the regions of recognised components as boxes with
// labels, either on a blank canvas the size of the client window or on top
// of a screenshot of it.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/mj1618/eve-ui-reader/internal/output"
	"github.com/mj1618/eve-ui-reader/internal/uitree"
)

// LabelMode controls what text is drawn on each component.
type LabelMode int

const (
	// LabelKinds draws the component kind, e.g. "ModuleButton".
	LabelKinds LabelMode = iota
	// LabelIDs draws "[id]" component IDs as listed by output.Components.
	LabelIDs
	// LabelCoords draws "(x,y)" center coordinates in client pixels.
	LabelCoords
)

// ParseLabelMode accepts "kind", "id" or "coords".
func ParseLabelMode(s string) (LabelMode, error) {
	switch strings.ToLower(s) {
	case "", "kind", "kinds":
		return LabelKinds, nil
	case "id", "ids":
		return LabelIDs, nil
	case "coords", "coordinates":
		return LabelCoords, nil
	}
	return 0, fmt.Errorf("unknown label mode %q (want kind, id or coords)", s)
}

type Options struct {
	// Background is drawn under the boxes, stretched to the canvas.
	Background image.Image
	// Scale multiplies the client window size to get the canvas size. It
	// is ignored when Background is set; the canvas then takes the
	// background's size. Zero means 1.
	Scale float64
	Mode  LabelMode
}

var (
	windowColor  = color.RGBA{R: 255, G: 0, B: 0, A: 200}
	partColor    = color.RGBA{R: 0, G: 200, B: 255, A: 160}
	textColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor = color.RGBA{R: 0, G: 0, B: 0, A: 200}
	canvasColor  = color.RGBA{R: 24, G: 24, B: 28, A: 255}
)

// Render draws components whose regions are given in the coordinates of
// screen, the region of the UI root.
func Render(screen uitree.Region, components []output.Component, opts Options) *image.RGBA {
	scaleX, scaleY := opts.Scale, opts.Scale
	if scaleX <= 0 {
		scaleX, scaleY = 1, 1
	}
	var rgba *image.RGBA
	if opts.Background != nil {
		bounds := opts.Background.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		xdraw.BiLinear.Scale(rgba, rgba.Bounds(), opts.Background, bounds, xdraw.Src, nil)
		scaleX, scaleY = 1, 1
		if screen.Width > 0 {
			scaleX = float64(bounds.Dx()) / float64(screen.Width)
		}
		if screen.Height > 0 {
			scaleY = float64(bounds.Dy()) / float64(screen.Height)
		}
	} else {
		w := max(1, int(float64(screen.Width)*scaleX))
		h := max(1, int(float64(screen.Height)*scaleY))
		rgba = image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(rgba, rgba.Bounds(), image.NewUniform(canvasColor), image.Point{}, draw.Src)
	}

	for _, c := range components {
		drawComponent(rgba, c, screen, scaleX, scaleY, opts.Mode)
	}
	return rgba
}

// drawComponent converts the component's region from client pixels to
// canvas pixels and draws its box and label.
func drawComponent(img *image.RGBA, c output.Component, screen uitree.Region, scaleX, scaleY float64, mode LabelMode) {
	r := c.Region
	x := int(float64(r.X-screen.X) * scaleX)
	y := int(float64(r.Y-screen.Y) * scaleY)
	w := int(float64(r.Width) * scaleX)
	h := int(float64(r.Height) * scaleY)

	boxColor := partColor
	if !strings.Contains(c.Path, " > ") {
		boxColor = windowColor
	}
	drawRectangle(img, x, y, x+w, y+h, boxColor)

	var label string
	switch mode {
	case LabelIDs:
		label = fmt.Sprintf("[%d]", c.ID)
	case LabelCoords:
		center := r.Center()
		label = fmt.Sprintf("(%d,%d)", center.X, center.Y)
	default:
		label = c.Kind
	}
	drawTextWithOutline(img, label, x+w/2, y+h/2, textColor, outlineColor)
}

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	return nil
}

// ReadImage decodes a PNG, JPEG, BMP or WebP screenshot.
func ReadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: decode image: %w", path, err)
	}
	return img, nil
}
