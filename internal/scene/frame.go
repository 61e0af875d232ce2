package scene

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// Scenario tags used as exported file name prefixes
const (
	ScenarioCallList   = "telegram-calls"
	ScenarioCallScreen = "call-screen"
)

// Logical sizes of the capture roots
var (
	CallListSize   = fyne.NewSize(375, 812)
	CallScreenSize = fyne.NewSize(405, 888)
	PhoneBodySize  = fyne.NewSize(430, 930)
)

// Frame is a built scene: the full preview plus the subtree that gets exported
type Frame struct {
	Scenario string
	State    string

	// Size is the logical size of Capture
	Size fyne.Size

	// Root is everything shown in the preview, device chrome included
	Root *fyne.Container

	// Capture is the capture root; it excludes bezel chrome
	Capture *fyne.Container

	// Rounded lists the capture root background followed by its device frame.
	// Their corner radii and stroke widths are zeroed while exporting.
	Rounded []*canvas.Rectangle
}

// CaptureRoot returns the capture root, or nil when it is no longer part of Root
func (f *Frame) CaptureRoot() fyne.CanvasObject {
	if f == nil || f.Capture == nil || f.Root == nil {
		return nil
	}
	if !contains(f.Root, f.Capture) {
		return nil
	}
	return f.Capture
}

// LogicalSize returns the designed size of the capture root
func (f *Frame) LogicalSize() fyne.Size {
	return f.Size
}

// RoundedShapes returns the shapes whose rounding is neutralized during export
func (f *Frame) RoundedShapes() []*canvas.Rectangle {
	return f.Rounded
}

// Tag returns the scenario and optional state used in exported file names
func (f *Frame) Tag() (scenario, state string) {
	return f.Scenario, f.State
}

func contains(parent fyne.CanvasObject, target fyne.CanvasObject) bool {
	if parent == target {
		return true
	}
	c, ok := parent.(*fyne.Container)
	if !ok {
		return false
	}
	for _, child := range c.Objects {
		if contains(child, target) {
			return true
		}
	}
	return false
}
