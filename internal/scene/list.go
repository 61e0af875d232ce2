package scene

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/callshot/internal/model"
)

// Call list geometry
const (
	listPadding    = 16
	listRowHeight  = 64
	listAvatarSize = 40
	tabBarHeight   = 83
	frameStroke    = 8
	listCorner     = 40
)

// TabLabels are the bottom tab bar items; index 1 is selected
var TabLabels = []string{"Избранные", "Недавние", "Контакты", "Клавиши", "Автоответчик"}

type listPalette struct {
	bg, fg  color.Color
	divider color.Color
	pill    color.Color
	search  color.Color
}

func paletteFor(dark bool) listPalette {
	if dark {
		return listPalette{
			bg:      colorBlack,
			fg:      colorWhite,
			divider: color.NRGBA{R: 0x2C, G: 0x2C, B: 0x2E, A: 0xFF},
			pill:    color.NRGBA{R: 0x2C, G: 0x2C, B: 0x2E, A: 0xFF},
			search:  colorDarkGray,
		}
	}
	return listPalette{
		bg:      colorWhite,
		fg:      colorBlack,
		divider: color.NRGBA{R: 0xE5, G: 0xE5, B: 0xEA, A: 0xFF},
		pill:    color.NRGBA{R: 0xE5, G: 0xE5, B: 0xEA, A: 0xFF},
		search:  colorLightGray,
	}
}

// NewCallList builds the call log screen for the given entries and settings.
// The result depends only on its arguments. Rows that do not fit above the tab
// bar are not drawn.
func NewCallList(entries []model.CallEntry, settings model.ListSettings) *Frame {
	settings.Normalize()
	p := paletteFor(settings.DarkTheme)
	w, h := CallListSize.Width, CallListSize.Height

	bg := rect(0, 0, w, h, p.bg, listCorner)
	bg.StrokeColor = colorDarkGray
	bg.StrokeWidth = frameStroke

	objs := []fyne.CanvasObject{bg}
	objs = append(objs, statusBar(w, settings.Clock, settings.Battery, settings.ShowWifi, p.fg)...)
	objs = append(objs, navBar(w, p)...)

	objs = append(objs, label(settings.HeaderTitle, listPadding, 96, w-2*listPadding,
		textOpts{size: 34, color: p.fg, bold: true}))

	y := float32(153)
	if settings.ShowSearch {
		objs = append(objs, searchBar(y, w, p)...)
		y += 36 + listPadding
	}

	limit := h - tabBarHeight
	for i, e := range entries {
		if y+listRowHeight > limit {
			break
		}
		last := i == len(entries)-1 || y+2*listRowHeight > limit
		objs = append(objs, callRow(e, y, w, p, !last)...)
		y += listRowHeight
	}

	objs = append(objs, tabBar(w, h, p)...)

	capture := container.NewWithoutLayout(objs...)
	capture.Resize(CallListSize)
	root := container.NewWithoutLayout(capture)
	root.Resize(CallListSize)

	return &Frame{
		Scenario: ScenarioCallList,
		Size:     CallListSize,
		Root:     root,
		Capture:  capture,
		Rounded:  []*canvas.Rectangle{bg},
	}
}

// statusBar draws the clock on the left and signal, optional wifi and battery on the right
func statusBar(width float32, clock string, level int, wifi bool, fg color.Color) []fyne.CanvasObject {
	objs := []fyne.CanvasObject{
		label(clock, 24, 12, 80, textOpts{size: 17, color: fg, bold: true}),
	}

	right := width - 24
	batteryX := right - 27
	signalX := batteryX - 5 - 18
	if wifi {
		wifiX := batteryX - 5 - 15
		signalX = wifiX - 5 - 18
		objs = append(objs, wifiIcon(wifiX, 17, fg)...)
	}
	objs = append(objs, signalBars(signalX, 17, fg)...)
	objs = append(objs, battery(batteryX, 16, level, fg)...)
	return objs
}

func navBar(width float32, p listPalette) []fyne.CanvasObject {
	pill := rect(width-155, 50, 52, 28, p.pill, 14)
	return []fyne.CanvasObject{
		label("Изменить", listPadding, 54, 100, textOpts{size: 17, color: colorBlue}),
		pill,
		label("Все", width-155, 55, 52, textOpts{size: 15, color: p.fg, bold: true, align: fyne.TextAlignCenter}),
		label("Пропущ.", width-90, 54, 74, textOpts{size: 17, color: colorGray, align: fyne.TextAlignTrailing}),
		line(0, 88, width, 88, p.divider, 1),
	}
}

func searchBar(y, width float32, p listPalette) []fyne.CanvasObject {
	glass := canvas.NewCircle(color.Transparent)
	glass.StrokeColor = colorGray
	glass.StrokeWidth = 2
	place(glass, listPadding+12, y+10, 13, 13)

	return []fyne.CanvasObject{
		rect(listPadding, y, width-2*listPadding, 36, p.search, 10),
		glass,
		line(listPadding+23, y+21, listPadding+28, y+26, colorGray, 2),
		label("Поиск", listPadding+36, y+7, 120, textOpts{size: 17, color: colorGray}),
		rect(width-listPadding-24, y+9, 8, 13, colorGray, 4),
	}
}

func callRow(e model.CallEntry, y, width float32, p listPalette, divider bool) []fyne.CanvasObject {
	avatarY := y + (listRowHeight-listAvatarSize)/2
	textX := float32(listPadding + listAvatarSize + listPadding)

	nameColor := p.fg
	if e.Direction == model.DirectionMissed {
		nameColor = colorRed
	}

	objs := []fyne.CanvasObject{
		circle(listPadding, avatarY, listAvatarSize, colorGray),
		label(e.Initial(), listPadding, avatarY+(listAvatarSize-16*1.3)/2, listAvatarSize,
			textOpts{size: 16, color: colorWhite, bold: true, align: fyne.TextAlignCenter}),
		label(e.Name, textX, y+10, width-textX-80, textOpts{size: 17, color: nameColor}),
	}

	if e.HasBadge() {
		nameWidth := fyne.MeasureText(e.Name, 17, fyne.TextStyle{}).Width
		objs = append(objs, label(badgeText(e.RepeatCount), textX+nameWidth+4, y+10, 60,
			textOpts{size: 17, color: colorGray}))
	}

	objs = append(objs,
		label(e.Channel.Subtitle(), textX, y+34, width-textX-80, textOpts{size: 15, color: colorGray}),
		label(e.Time, width-listPadding-70, y+12, 70, textOpts{size: 15, color: colorGray, align: fyne.TextAlignTrailing}),
	)

	if divider {
		objs = append(objs, line(textX, y+listRowHeight, width, y+listRowHeight, p.divider, 1))
	}
	return objs
}

func badgeText(count int) string {
	return "(" + strconv.Itoa(count) + ")"
}

func tabBar(width, height float32, p listPalette) []fyne.CanvasObject {
	top := height - tabBarHeight
	objs := []fyne.CanvasObject{
		line(0, top, width, top, p.divider, 1),
	}

	slot := width / float32(len(TabLabels))
	for i, text := range TabLabels {
		c := color.Color(colorGray)
		if i == 1 {
			c = colorBlue
		}
		x := float32(i) * slot

		icon := canvas.NewCircle(color.Transparent)
		icon.StrokeColor = c
		icon.StrokeWidth = 2
		place(icon, x+(slot-22)/2, top+9, 22, 22)

		objs = append(objs, icon,
			label(text, x, top+36, slot, textOpts{size: 10, color: c, align: fyne.TextAlignCenter}))
	}
	return objs
}
