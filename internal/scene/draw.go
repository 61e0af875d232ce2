package scene

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// iOS system palette
var (
	colorBlack     = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	colorWhite     = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorBlue      = color.NRGBA{R: 0x00, G: 0x7A, B: 0xFF, A: 0xFF}
	colorRed       = color.NRGBA{R: 0xFF, G: 0x3B, B: 0x30, A: 0xFF}
	colorGreen     = color.NRGBA{R: 0x32, G: 0xD7, B: 0x4B, A: 0xFF}
	colorOrange    = color.NRGBA{R: 0xFF, G: 0x95, B: 0x00, A: 0xFF}
	colorGray      = color.NRGBA{R: 0x8E, G: 0x8E, B: 0x93, A: 0xFF}
	colorDarkGray  = color.NRGBA{R: 0x1C, G: 0x1C, B: 0x1E, A: 0xFF}
	colorLightGray = color.NRGBA{R: 0xF2, G: 0xF2, B: 0xF7, A: 0xFF}
	colorCallBg    = color.NRGBA{R: 0x30, G: 0x2D, B: 0x36, A: 0xFF}
	colorBusyText  = color.NRGBA{R: 0xA1, G: 0x9E, B: 0xA9, A: 0xFF}
	colorDimWhite  = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x99}
)

// ParseHexColor parses "#RRGGBB" into an opaque color
func ParseHexColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xFF}
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("invalid hex color %q", s)
	}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return c, nil
}

func place(obj fyne.CanvasObject, x, y, w, h float32) fyne.CanvasObject {
	obj.Move(fyne.NewPos(x, y))
	obj.Resize(fyne.NewSize(w, h))
	return obj
}

func rect(x, y, w, h float32, fill color.Color, radius float32) *canvas.Rectangle {
	r := canvas.NewRectangle(fill)
	r.CornerRadius = radius
	place(r, x, y, w, h)
	return r
}

func circle(x, y, d float32, fill color.Color) *canvas.Circle {
	c := canvas.NewCircle(fill)
	place(c, x, y, d, d)
	return c
}

func line(x1, y1, x2, y2 float32, stroke color.Color, width float32) *canvas.Line {
	l := canvas.NewLine(stroke)
	l.StrokeWidth = width
	l.Position1 = fyne.NewPos(x1, y1)
	l.Position2 = fyne.NewPos(x2, y2)
	return l
}

type textOpts struct {
	size  float32
	color color.Color
	bold  bool
	align fyne.TextAlign
}

func label(s string, x, y, w float32, o textOpts) *canvas.Text {
	t := canvas.NewText(s, o.color)
	t.TextSize = o.size
	t.TextStyle = fyne.TextStyle{Bold: o.bold}
	t.Alignment = o.align
	place(t, x, y, w, o.size*1.3)
	return t
}

// signalBars draws four bars of growing height with their bottoms at y+10
func signalBars(x, y float32, fill color.Color) []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, 0, 4)
	for bar := 1; bar <= 4; bar++ {
		h := float32(bar*2 + 2)
		objs = append(objs, rect(x+float32(bar-1)*5, y+10-h, 3, h, fill, 1))
	}
	return objs
}

// wifiIcon draws a three-step fan 15x11
func wifiIcon(x, y float32, stroke color.Color) []fyne.CanvasObject {
	return []fyne.CanvasObject{
		line(x, y+2, x+7.5, y, stroke, 1.5),
		line(x+7.5, y, x+15, y+2, stroke, 1.5),
		line(x+3, y+5, x+7.5, y+3.5, stroke, 1.5),
		line(x+7.5, y+3.5, x+12, y+5, stroke, 1.5),
		circle(x+5.5, y+7, 4, stroke),
	}
}

// battery draws a 24x12 outline with a fill proportional to level and a cap
func battery(x, y float32, level int, fg color.Color) []fyne.CanvasObject {
	outline := rect(x, y, 24, 12, color.Transparent, 3)
	outline.StrokeColor = fg
	outline.StrokeWidth = 1

	fill := fg
	if level <= 20 {
		fill = colorRed
	}
	width := float32(level) / 100 * 20

	return []fyne.CanvasObject{
		outline,
		rect(x+2, y+2, width, 8, fill, 1),
		rect(x+25, y+3, 2, 6, fg, 1),
	}
}
