// Package api is a typed client for the image-generation service: health,
// styles, call types and screenshot generation. It never retries.
package api
