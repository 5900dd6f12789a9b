package contract

import (
	"github.com/huangsam/trackpulse/schema"
	"github.com/stretchr/testify/mock"
)

// MockChartRenderer is a mock implementation of ChartRenderer for testing.
type MockChartRenderer struct {
	mock.Mock
}

var _ ChartRenderer = &MockChartRenderer{} // Compile-time check

// Render implements the ChartRenderer interface.
func (m *MockChartRenderer) Render(chart schema.Chart, path string) error {
	ret := m.Called(chart, path)
	return ret.Error(0)
}
