package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"github.com/ytget/callshot/internal/scene"
)

// ScenePreview shows the most recently built frame of a scene.
// Rebuild must run on the Fyne main goroutine.
type ScenePreview struct {
	build  func() *scene.Frame
	frame  *scene.Frame
	holder *fyne.Container
	scroll *container.Scroll
}

// NewScenePreview creates a preview and builds the first frame
func NewScenePreview(build func() *scene.Frame) *ScenePreview {
	p := &ScenePreview{
		build:  build,
		holder: container.New(layout.NewGridWrapLayout(fyne.NewSize(1, 1))),
	}
	p.scroll = container.NewScroll(container.NewCenter(p.holder))
	p.Rebuild()
	return p
}

// Rebuild replaces the shown frame with a freshly built one
func (p *ScenePreview) Rebuild() {
	p.frame = p.build()
	p.holder.Layout = layout.NewGridWrapLayout(p.frame.Root.Size())
	p.holder.Objects = []fyne.CanvasObject{p.frame.Root}
	p.holder.Refresh()
}

// Frame returns the frame currently on screen
func (p *ScenePreview) Frame() *scene.Frame {
	return p.frame
}

// Container returns the scrollable preview
func (p *ScenePreview) Container() fyne.CanvasObject {
	return p.scroll
}
