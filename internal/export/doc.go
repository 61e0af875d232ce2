// Package export rasterizes a scene's capture root into a PNG file. It keeps
// a single export in flight, squares off rounded device styling for the
// duration of the capture and reports progress to the UI through a callback.
package export
