package scene

// Package scene projects call log entries and scene settings into Fyne canvas
// trees with absolute geometry. Builders are pure: the same input yields the
// same tree, and nothing here mutates the store or the settings.
