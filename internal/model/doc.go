package model

// Package model defines domain data structures used across the app: call log
// entries, scene settings, and export tasks with their status enums. Structures
// are plain values so scenes can be projected from copies without locking.
