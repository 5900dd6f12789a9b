package contract

import (
	"errors"
	"testing"

	"github.com/huangsam/trackpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMockChartRenderer(t *testing.T) {
	m := &MockChartRenderer{}
	chart := schema.Chart{File: schema.MonthChartFile, Kind: schema.BarChart}
	m.On("Render", chart, "out/"+schema.MonthChartFile).Return(nil)
	m.On("Render", mock.Anything, "bad.png").Return(errors.New("boom"))

	assert.NoError(t, m.Render(chart, "out/"+schema.MonthChartFile))
	assert.EqualError(t, m.Render(schema.Chart{}, "bad.png"), "boom")
	m.AssertNumberOfCalls(t, "Render", 2)
}
