package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/google/uuid"

	"github.com/ytget/callshot/internal/model"
	"github.com/ytget/callshot/internal/platform"
)

// Export constants
const (
	TaskIDPrefix    = "export-"
	FilePermissions = 0644
)

// Export errors
var (
	ErrNoCaptureRoot = errors.New("capture root not found")
	ErrRasterize     = errors.New("rasterization failed")
	ErrEncode        = errors.New("png encoding failed")
	ErrWrite         = errors.New("writing file failed")
)

// Service handles snapshot export operations
type Service struct {
	tasks      map[string]*model.ExportTask
	order      []string
	tasksMutex sync.RWMutex

	exportDir  string
	dirMutex   sync.RWMutex
	inFlight   atomic.Bool
	rasterizer Rasterizer
	runOnMain  func(func())
	now        func() time.Time
	onUpdate   func(*model.ExportTask) // callback for UI updates
}

// NewService creates a new export service writing into exportDir
func NewService(exportDir string, rasterizer Rasterizer) *Service {
	if rasterizer == nil {
		rasterizer = SoftwareRasterizer{}
	}
	return &Service{
		tasks:      make(map[string]*model.ExportTask),
		exportDir:  exportDir,
		rasterizer: rasterizer,
		runOnMain:  fyne.DoAndWait,
		now:        time.Now,
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.ExportTask)) {
	s.onUpdate = callback
}

// SetExportDirectory sets the export directory
func (s *Service) SetExportDirectory(dir string) {
	s.dirMutex.Lock()
	s.exportDir = dir
	s.dirMutex.Unlock()
}

// ExportDirectory returns the current export directory
func (s *Service) ExportDirectory() string {
	s.dirMutex.RLock()
	defer s.dirMutex.RUnlock()
	return s.exportDir
}

// InProgress reports whether an export or snapshot is running
func (s *Service) InProgress() bool {
	return s.inFlight.Load()
}

// Export rasterizes target and writes it as a PNG into the export directory.
// A call made while another export is running does nothing and returns (nil, nil).
func (s *Service) Export(ctx context.Context, target Target) (*model.ExportTask, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		log.Printf("Export already in progress, ignoring request")
		return nil, nil
	}
	defer s.inFlight.Store(false)

	scenario, state := target.Tag()
	task := &model.ExportTask{
		ID:        TaskIDPrefix + uuid.New().String(),
		Scenario:  scenario,
		State:     state,
		Status:    model.ExportStatusPending,
		StartedAt: s.now(),
	}
	s.addTask(task)

	s.setStatus(task, model.ExportStatusRendering)
	snap, err := s.render(ctx, target, task.StartedAt)
	if err != nil {
		s.fail(task, err)
		return task, err
	}

	dir := s.ExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		err = fmt.Errorf("%w: %v", ErrWrite, err)
		s.fail(task, err)
		return task, err
	}

	path := filepath.Join(dir, snap.FileName)
	if err := os.WriteFile(path, snap.PNG, FilePermissions); err != nil {
		err = fmt.Errorf("%w: %v", ErrWrite, err)
		s.fail(task, err)
		return task, err
	}

	s.tasksMutex.Lock()
	task.Status = model.ExportStatusCompleted
	task.OutputPath = path
	task.Width = snap.Width
	task.Height = snap.Height
	task.FinishedAt = s.now()
	s.tasksMutex.Unlock()

	log.Printf("Export %s written to %s (%dx%d)", task.ID, path, snap.Width, snap.Height)
	s.notifyUpdate(task)
	return task, nil
}

// Snapshot rasterizes target and returns the encoded PNG without writing a file.
// It shares the in-flight guard with Export.
func (s *Service) Snapshot(ctx context.Context, target Target) (*Snapshot, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		log.Printf("Export already in progress, ignoring snapshot request")
		return nil, nil
	}
	defer s.inFlight.Store(false)

	return s.render(ctx, target, s.now())
}

// GetTask returns a copy of the task with id
func (s *Service) GetTask(id string) (*model.ExportTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	if !exists {
		return nil, false
	}
	cp := *task
	return &cp, true
}

// GetAllTasks returns copies of all tasks, oldest first
func (s *Service) GetAllTasks() []*model.ExportTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.ExportTask, 0, len(s.order))
	for _, id := range s.order {
		task := *s.tasks[id]
		tasks = append(tasks, &task)
	}
	return tasks
}

// render captures the target on the main goroutine and encodes it
func (s *Service) render(ctx context.Context, target Target, at time.Time) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := target.CaptureRoot()
	if root == nil {
		return nil, ErrNoCaptureRoot
	}

	size := target.LogicalSize()
	w, h := physicalSize(size)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: empty logical size %v", ErrRasterize, size)
	}

	var img image.Image
	var rasterErr error
	s.runOnMain(func() {
		img, rasterErr = s.capture(root, size, target.RoundedShapes())
	})
	if rasterErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrRasterize, rasterErr)
	}

	data, err := encodePNG(normalize(img, w, h))
	if err != nil {
		return nil, err
	}

	scenario, state := target.Tag()
	return &Snapshot{
		FileName: model.FileName(scenario, state, at),
		Width:    w,
		Height:   h,
		PNG:      data,
	}, nil
}

// capture squares off rounded shapes, drops their frame strokes, pins the root
// to its logical size and rasterizes it. Everything it touches is put back
// before it returns.
func (s *Service) capture(root fyne.CanvasObject, size fyne.Size, rounded []*canvas.Rectangle) (img image.Image, err error) {
	pos, rootSize := root.Position(), root.Size()
	radii := make([]float32, len(rounded))
	strokes := make([]float32, len(rounded))
	for i, r := range rounded {
		radii[i], strokes[i] = r.CornerRadius, r.StrokeWidth
		r.CornerRadius = 0
		r.StrokeWidth = 0
	}

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("renderer panic: %v", p)
		}
		for i, r := range rounded {
			r.CornerRadius = radii[i]
			r.StrokeWidth = strokes[i]
			r.Refresh()
		}
		root.Move(pos)
		root.Resize(rootSize)
		canvas.Refresh(root)
	}()

	root.Move(fyne.NewPos(0, 0))
	root.Resize(size)

	img, err = s.rasterizer.Rasterize(root, size, PixelRatio)
	if err == nil && img == nil {
		err = errors.New("renderer returned no image")
	}
	return img, err
}

func (s *Service) addTask(task *model.ExportTask) {
	s.tasksMutex.Lock()
	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

func (s *Service) setStatus(task *model.ExportTask, status model.ExportStatus) {
	s.tasksMutex.Lock()
	task.Status = status
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

func (s *Service) fail(task *model.ExportTask, err error) {
	s.tasksMutex.Lock()
	task.Status = model.ExportStatusError
	task.LastError = err.Error()
	task.FinishedAt = s.now()
	s.tasksMutex.Unlock()

	log.Printf("Export %s failed: %v", task.ID, err)
	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.ExportTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}
