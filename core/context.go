package core

import (
	"context"

	"github.com/huangsam/trackpulse/internal/chart"
	"github.com/huangsam/trackpulse/internal/contract"
)

// Context keys for analysis options
type contextKey string

const rendererKey contextKey = "chartRenderer"

// WithChartRenderer sets the renderer the analysis draws charts with.
func WithChartRenderer(ctx context.Context, renderer contract.ChartRenderer) context.Context {
	return context.WithValue(ctx, rendererKey, renderer)
}

// chartRendererFrom returns the renderer from context
func chartRendererFrom(ctx context.Context) contract.ChartRenderer {
	val := ctx.Value(rendererKey)
	if val == nil {
		return chart.NewRenderer() // default: gonum/plot images
	}
	renderer, ok := val.(contract.ChartRenderer)
	if !ok {
		return chart.NewRenderer()
	}
	return renderer
}
