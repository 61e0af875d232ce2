package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconAdd      = "+"
	IconEdit     = "✎"
	IconClose    = "×"
	IconError    = "❌"
	IconPending  = "⏳"
	IconBadge    = "●"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	BatteryLabelFormat = "%d%%"
)

// Layout sizing (rows / lists / previews)
const (
	StatusLabelWidth float32 = 96
	TimeLabelWidth   float32 = 72
	SizeLabelWidth   float32 = 84

	RowMinWidth  float32 = 360
	RowMinHeight float32 = 44

	EditorMinWidth float32 = 320

	// PreviewScale shrinks the phone preview so it fits next to the editor
	PreviewScale float32 = 0.7

	DialogWidth  float32 = 500
	DialogHeight float32 = 420
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 120
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Network timeouts for UI-triggered API calls
const (
	HealthCheckTimeout = 5 * time.Second
)

// Repeat count bounds offered by the add/edit forms
const (
	MaxRepeatCount = 99
)
