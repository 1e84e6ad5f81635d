package integrations

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Cover geometry. Text is drawn on a small canvas with the 7x13 bitmap face
// and scaled up, which keeps the glyphs sharp without shipping a font file.
const (
	coverBaseWidth  = 200
	coverBaseHeight = 300
	coverScale      = 4
	coverMargin     = 12
	coverLineHeight = 16
)

var (
	coverBackground = color.RGBA{R: 0x26, G: 0x32, B: 0x38, A: 0xff}
	coverAccent     = color.RGBA{R: 0xff, G: 0x6b, B: 0x9d, A: 0xff}
	coverForeground = color.RGBA{R: 0xee, G: 0xff, B: 0xff, A: 0xff}
)

// CoverRenderer draws a title page image for exported collections.
type CoverRenderer struct {
	face font.Face
}

func NewCoverRenderer() *CoverRenderer {
	return &CoverRenderer{face: basicfont.Face7x13}
}

// Render returns the cover image for title and subtitle.
func (r *CoverRenderer) Render(title, subtitle string) image.Image {
	base := image.NewRGBA(image.Rect(0, 0, coverBaseWidth, coverBaseHeight))
	draw.Draw(base, base.Bounds(), image.NewUniform(coverBackground), image.Point{}, draw.Src)

	// accent bar
	bar := image.Rect(coverMargin, coverMargin, coverBaseWidth-coverMargin, coverMargin+4)
	draw.Draw(base, bar, image.NewUniform(coverAccent), image.Point{}, draw.Src)

	y := coverMargin + 4 + 2*coverLineHeight
	for _, line := range r.wrap(title, coverBaseWidth-2*coverMargin) {
		r.drawLine(base, line, coverMargin, y, coverAccent)
		y += coverLineHeight
	}

	y += coverLineHeight
	for _, line := range r.wrap(subtitle, coverBaseWidth-2*coverMargin) {
		r.drawLine(base, line, coverMargin, y, coverForeground)
		y += coverLineHeight
	}

	return r.scale(base, coverScale)
}

// RenderPNG renders the cover and encodes it as PNG.
func (r *CoverRenderer) RenderPNG(title, subtitle string) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, r.Render(title, subtitle)); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *CoverRenderer) drawLine(dst draw.Image, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: r.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// wrap splits text into lines no wider than width pixels.
func (r *CoverRenderer) wrap(text string, width int) []string {
	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if font.MeasureString(r.face, candidate).Ceil() <= width || current == "" {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func (r *CoverRenderer) scale(img image.Image, factor int) image.Image {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
