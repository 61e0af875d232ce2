package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ExportTask represents a single snapshot export
type ExportTask struct {
	ID         string
	Scenario   string // file name prefix, e.g. "telegram-calls"
	State      string // optional state tag, e.g. "busy"
	Status     ExportStatus
	OutputPath string    // path to the written PNG
	Width      int       // physical width in pixels
	Height     int       // physical height in pixels
	LastError  string    // last error message if any
	StartedAt  time.Time // when export started
	FinishedAt time.Time // when export finished
}

// FileName returns "<scenario>-[<state>-]<epoch-millis>.png" for the given instant
func FileName(scenario, state string, at time.Time) string {
	var b strings.Builder
	b.WriteString(scenario)
	b.WriteString("-")
	if state != "" {
		b.WriteString(state)
		b.WriteString("-")
	}
	b.WriteString(fmt.Sprintf("%d", at.UnixMilli()))
	b.WriteString(".png")
	return b.String()
}

// GetDisplayTitle returns the written file name, or the scenario while the export runs
func (t *ExportTask) GetDisplayTitle() string {
	if t.OutputPath != "" {
		return filepath.Base(t.OutputPath)
	}
	if t.State != "" {
		return t.Scenario + " (" + t.State + ")"
	}
	return t.Scenario
}

// GetSizeString returns "WxH" in physical pixels, or "—" if unknown
func (t *ExportTask) GetSizeString() string {
	if t.Width <= 0 || t.Height <= 0 {
		return "—"
	}
	return fmt.Sprintf("%dx%d", t.Width, t.Height)
}

// Duration returns how long the export took, zero while it is still running
func (t *ExportTask) Duration() time.Duration {
	if t.FinishedAt.IsZero() || t.StartedAt.IsZero() {
		return 0
	}
	return t.FinishedAt.Sub(t.StartedAt)
}
