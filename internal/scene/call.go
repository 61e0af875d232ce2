package scene

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/callshot/internal/model"
)

// Call screen geometry
const (
	sideButtonWidth = 6
	bodyCorner      = 50
	screenCorner    = 40
	islandWidth     = 126
	islandHeight    = 32
	avatarSize      = 180
	actionSize      = 75
)

// NewCallScreen builds the single call screen inside a phone body.
// Root holds the body with its side buttons; Capture is the screen only.
func NewCallScreen(settings model.CallSettings) *Frame {
	settings.Normalize()
	w, h := CallScreenSize.Width, CallScreenSize.Height

	screenBg := rect(0, 0, w, h, colorCallBg, screenCorner)
	objs := []fyne.CanvasObject{screenBg}
	objs = append(objs, callStatusBar(w, settings)...)

	captionColor := color.Color(colorWhite)
	if settings.State == model.CallStateBusy {
		captionColor = colorBusyText
	}
	objs = append(objs, label(settings.State.Caption(), 0, 76, w,
		textOpts{size: 16, color: captionColor, align: fyne.TextAlignCenter}))

	y := float32(113)
	if settings.ShowAvatar {
		objs = append(objs, avatar(settings, (w-avatarSize)/2, y)...)
		y += avatarSize + 24
	}

	objs = append(objs, label(settings.ContactName, 32, y, w-64,
		textOpts{size: 32, color: colorWhite, align: fyne.TextAlignCenter}))
	if settings.ContactNumber != "" {
		objs = append(objs, label(settings.ContactNumber, 32, y+46, w-64,
			textOpts{size: 20, color: colorDimWhite, align: fyne.TextAlignCenter}))
	}

	if settings.State == model.CallStateBusy {
		objs = append(objs, busyActions(w, h)...)
	} else {
		objs = append(objs, incomingActions(w, h)...)
	}

	screen := container.NewWithoutLayout(objs...)
	screen.Resize(CallScreenSize)

	body := rect(sideButtonWidth, 0, PhoneBodySize.Width, PhoneBodySize.Height, colorDarkGray, bodyCorner)
	screen.Move(fyne.NewPos(
		sideButtonWidth+(PhoneBodySize.Width-w)/2,
		(PhoneBodySize.Height-h)/2,
	))

	rootSize := fyne.NewSize(PhoneBodySize.Width+2*sideButtonWidth, PhoneBodySize.Height)
	root := container.NewWithoutLayout(
		rect(0, 180, sideButtonWidth, 30, colorDarkGray, 3),
		rect(0, 220, sideButtonWidth, 30, colorDarkGray, 3),
		rect(rootSize.Width-sideButtonWidth, 200, sideButtonWidth, 60, colorDarkGray, 3),
		body,
		screen,
	)
	root.Resize(rootSize)

	return &Frame{
		Scenario: ScenarioCallScreen,
		State:    settings.State.String(),
		Size:     CallScreenSize,
		Root:     root,
		Capture:  screen,
		Rounded:  []*canvas.Rectangle{screenBg, body},
	}
}

// callStatusBar draws the clock, the dynamic island and signal with battery
func callStatusBar(width float32, settings model.CallSettings) []fyne.CanvasObject {
	islandX := (width - islandWidth) / 2
	batteryX := width - 24 - 27

	objs := []fyne.CanvasObject{
		label(settings.Clock, 24, 12, 80, textOpts{size: 17, color: colorWhite, bold: true}),
		rect(islandX, 8, islandWidth, islandHeight, colorBlack, islandHeight/2),
		circle(islandX+islandWidth-12-8, 8+(islandHeight-8)/2, 8, colorOrange),
	}
	objs = append(objs, signalBars(batteryX-5-18, 17, colorWhite)...)
	objs = append(objs, battery(batteryX, 16, settings.Battery, colorWhite)...)
	return objs
}

func avatar(settings model.CallSettings, x, y float32) []fyne.CanvasObject {
	fill, err := ParseHexColor(settings.AvatarColor)
	if err != nil {
		fill = colorBlue
	}
	return []fyne.CanvasObject{
		circle(x, y, avatarSize, fill),
		label(model.Initial(settings.ContactName), x, y+(avatarSize-72*1.3)/2, avatarSize,
			textOpts{size: 72, color: colorWhite, bold: true, align: fyne.TextAlignCenter}),
	}
}

// handset draws a simplified phone receiver centered at (cx, cy)
func handset(cx, cy float32, down bool) []fyne.CanvasObject {
	if down {
		return []fyne.CanvasObject{
			rect(cx-15, cy-4, 30, 8, colorWhite, 4),
			rect(cx-15, cy-2, 8, 10, colorWhite, 3),
			rect(cx+7, cy-2, 8, 10, colorWhite, 3),
		}
	}
	return []fyne.CanvasObject{
		line(cx-9, cy-11, cx+9, cy+11, colorWhite, 7),
		rect(cx-13, cy-14, 10, 8, colorWhite, 3),
		rect(cx+3, cy+6, 10, 8, colorWhite, 3),
	}
}

// actionSlots spreads two buttons evenly around inside [pad, width-pad]
func actionSlots(width, pad float32) (left, right float32) {
	slot := (width - 2*pad) / 2
	left = pad + slot/2 - actionSize/2
	right = pad + slot + slot/2 - actionSize/2
	return left, right
}

func incomingActions(width, height float32) []fyne.CanvasObject {
	y := height - 48 - actionSize
	left, right := actionSlots(width, 48)

	objs := []fyne.CanvasObject{
		circle(left, y, actionSize, colorRed),
		circle(right, y, actionSize, colorGreen),
	}
	objs = append(objs, handset(left+actionSize/2, y+actionSize/2, true)...)
	objs = append(objs, handset(right+actionSize/2, y+actionSize/2, false)...)
	return objs
}

func busyActions(width, height float32) []fyne.CanvasObject {
	const captionSize = 14
	y := height - 48 - captionSize*1.3 - 8 - actionSize
	left, right := actionSlots(width, 64)
	captionY := y + actionSize + 8

	objs := []fyne.CanvasObject{
		circle(left, y, actionSize, colorGray),
		label("✕", left, y+(actionSize-30*1.3)/2, actionSize,
			textOpts{size: 30, color: colorWhite, align: fyne.TextAlignCenter}),
		label("Отменить", left-25, captionY, actionSize+50,
			textOpts{size: captionSize, color: colorWhite, align: fyne.TextAlignCenter}),
		circle(right, y, actionSize, colorGreen),
		label("Перезвонить", right-25, captionY, actionSize+50,
			textOpts{size: captionSize, color: colorWhite, align: fyne.TextAlignCenter}),
	}
	objs = append(objs, handset(right+actionSize/2, y+actionSize/2, false)...)
	return objs
}
