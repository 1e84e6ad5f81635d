package integrations

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverRender(t *testing.T) {
	img := NewCoverRenderer().Render("Favourite Quotes", "3 favourite quotes")

	b := img.Bounds()
	assert.Equal(t, coverBaseWidth*coverScale, b.Dx())
	assert.Equal(t, coverBaseHeight*coverScale, b.Dy())

	// corner keeps the background colour
	r, g, bl, _ := img.At(0, 0).RGBA()
	er, eg, eb, _ := coverBackground.RGBA()
	assert.Equal(t, []uint32{er, eg, eb}, []uint32{r, g, bl})
}

func TestCoverRenderPNG(t *testing.T) {
	raw, err := NewCoverRenderer().RenderPNG("Title", "Subtitle")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, coverBaseWidth*coverScale, img.Bounds().Dx())
}

func TestCoverWrap(t *testing.T) {
	r := NewCoverRenderer()

	lines := r.wrap("one two three four five six seven eight nine ten", 70)
	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		// 7px per glyph
		assert.LessOrEqual(t, len(line)*7, 70, line)
	}

	assert.Empty(t, r.wrap("   ", 100))
	assert.Equal(t, []string{"supercalifragilistic"}, r.wrap("supercalifragilistic", 20))
}
