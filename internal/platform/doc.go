package platform

// Package platform contains OS integration: the default export location,
// directory creation and revealing or opening written snapshots.
