package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// Editor/preview split offset on desktop
const desktopSplitOffset = 0.42

// isMobileDevice checks if the app is running on a mobile device
func isMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// isLandscape returns true if the device is in landscape orientation
func isLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// adaptiveSplit places the editor next to the preview on desktops and landscape
// phones, and stacks them vertically on portrait phones
func adaptiveSplit(editor, preview fyne.CanvasObject) fyne.CanvasObject {
	if isMobileDevice() && !isLandscape() {
		split := container.NewVSplit(editor, preview)
		split.Offset = 0.5
		return split
	}
	split := container.NewHSplit(editor, preview)
	split.Offset = desktopSplitOffset
	return split
}
