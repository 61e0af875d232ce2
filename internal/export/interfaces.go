package export

import (
	"context"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/ytget/callshot/internal/model"
)

// Target is a built scene that can be exported.
type Target interface {
	// CaptureRoot returns the subtree to rasterize, or nil if it is gone
	CaptureRoot() fyne.CanvasObject
	LogicalSize() fyne.Size
	// RoundedShapes returns the capture root background and its device frame
	RoundedShapes() []*canvas.Rectangle
	Tag() (scenario, state string)
}

// Rasterizer renders a canvas object of the given logical size at scale.
type Rasterizer interface {
	Rasterize(obj fyne.CanvasObject, size fyne.Size, scale float32) (image.Image, error)
}

// Exporter defines the interface for the snapshot export service.
type Exporter interface {
	SetUpdateCallback(func(*model.ExportTask))
	Export(ctx context.Context, target Target) (*model.ExportTask, error)
	Snapshot(ctx context.Context, target Target) (*Snapshot, error)
	InProgress() bool
	GetTask(id string) (*model.ExportTask, bool)
	GetAllTasks() []*model.ExportTask

	// SetExportDirectory sets the directory PNG files are written to
	SetExportDirectory(dir string)
}
