// Package server implements the image-generation HTTP API consumed by the
// api client: service status, styles, call types and a placeholder
// screenshot generator.
package server
