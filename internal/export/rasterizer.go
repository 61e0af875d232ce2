package export

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/software"
	"golang.org/x/image/draw"
)

// PixelRatio is the density exported bitmaps are rendered at
const PixelRatio = 2

// DataURLPrefix prefixes base64 PNG data URLs
const DataURLPrefix = "data:image/png;base64,"

// SoftwareRasterizer renders with Fyne's software painter onto a transparent canvas.
// It must be used on the Fyne main goroutine.
type SoftwareRasterizer struct{}

// Rasterize draws obj into an offscreen canvas of the given logical size
func (SoftwareRasterizer) Rasterize(obj fyne.CanvasObject, size fyne.Size, scale float32) (image.Image, error) {
	if fyne.CurrentApp() == nil {
		return nil, errors.New("no running app")
	}

	c := software.NewTransparentCanvas()
	c.SetPadded(false)
	c.SetScale(scale)
	c.SetContent(obj)
	c.Resize(size)

	img := c.Capture()
	if img == nil || img.Bounds().Empty() {
		return nil, errors.New("empty capture")
	}
	return img, nil
}

// Snapshot is an encoded capture of a scene
type Snapshot struct {
	FileName string
	Width    int
	Height   int
	PNG      []byte
}

// DataURL returns the PNG as a data:image/png;base64 URL
func (s *Snapshot) DataURL() string {
	return DataURLPrefix + base64.StdEncoding.EncodeToString(s.PNG)
}

// physicalSize returns the pixel dimensions of size at PixelRatio
func physicalSize(size fyne.Size) (int, int) {
	return int(size.Width*PixelRatio + 0.5), int(size.Height*PixelRatio + 0.5)
}

// normalize returns img as NRGBA of exactly w x h pixels, scaling when the
// renderer produced a different size
func normalize(img image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return buf.Bytes(), nil
}
