// Package contract provides interfaces and shared utilities for the trackpulse internal architecture.
package contract

import "github.com/huangsam/trackpulse/schema"

// ChartRenderer draws a chart description to an image file.
// This allows the reporting stage to be tested without rasterizing anything.
type ChartRenderer interface {
	// Render draws chart and writes it to path, overwriting any existing file.
	Render(chart schema.Chart, path string) error
}
