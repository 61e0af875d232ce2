package calllog

// Package calllog holds the ordered, in-memory call log shown on the list scene
// and the single-entry edit buffer used by the edit dialog.
