package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the call log editor and the call screen editor to their live scene
// previews, runs exports through the export service and shows the export history,
// the generation form and settings. All UI strings are localized via Localization.
