package model

// ExportStatus represents the status of a snapshot export
type ExportStatus string

const (
	// ExportStatusPending means the export was accepted but has not touched the scene yet
	ExportStatusPending ExportStatus = "Pending"

	// ExportStatusRendering means the capture root is being rasterized and encoded
	ExportStatusRendering ExportStatus = "Rendering"

	// ExportStatusCompleted means the PNG file was written
	ExportStatusCompleted ExportStatus = "Completed"

	// ExportStatusError means the export failed with an error
	ExportStatusError ExportStatus = "Error"
)

// String returns the string representation of ExportStatus
func (s ExportStatus) String() string {
	return string(s)
}

// IsActive returns true while the export holds the in-progress flag
func (s ExportStatus) IsActive() bool {
	return s == ExportStatusPending || s == ExportStatusRendering
}

// IsFinished returns true if the export completed or failed
func (s ExportStatus) IsFinished() bool {
	return s == ExportStatusCompleted || s == ExportStatusError
}
