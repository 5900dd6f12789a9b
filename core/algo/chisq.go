// Package algo has the statistics and ranking helpers of the analysis.
package algo

import (
	"errors"
	"fmt"
	"math"

	"github.com/huangsam/trackpulse/schema"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrNoObservations is returned when there is nothing to test.
var ErrNoObservations = errors.New("no observed counts to test")

// UniformExpected returns k copies of the mean of observed.
func UniformExpected(observed []float64) []float64 {
	expected := make([]float64, len(observed))
	if len(observed) == 0 {
		return expected
	}
	mean := stat.Mean(observed, nil)
	for i := range expected {
		expected[i] = mean
	}
	return expected
}

// ChiSquaredUniform tests observed counts against a uniform distribution by
// running a contingency test on the 2xk table [observed, uniform expected].
func ChiSquaredUniform(observed []float64) (*schema.ChiSquaredResult, error) {
	if len(observed) == 0 {
		return nil, ErrNoObservations
	}
	return ChiSquaredContingency([][]float64{observed, UniformExpected(observed)})
}

// ChiSquaredContingency runs a chi-squared test of independence on a table of
// frequencies. Expected frequencies come from the table margins. With one
// degree of freedom the Yates continuity correction is applied, and with none
// the statistic is 0 and the p-value 1.
func ChiSquaredContingency(table [][]float64) (*schema.ChiSquaredResult, error) {
	if len(table) == 0 || len(table[0]) == 0 {
		return nil, ErrNoObservations
	}
	nRows, nCols := len(table), len(table[0])

	rowSums := make([]float64, nRows)
	colSums := make([]float64, nCols)
	total := 0.0
	for i, row := range table {
		if len(row) != nCols {
			return nil, fmt.Errorf("row %d has %d columns, expected %d", i, len(row), nCols)
		}
		for j, v := range row {
			if v < 0 || math.IsNaN(v) {
				return nil, fmt.Errorf("frequency at (%d, %d) must be a non-negative number, got %v", i, j, v)
			}
			rowSums[i] += v
			colSums[j] += v
			total += v
		}
	}
	for i, s := range rowSums {
		if s == 0 {
			return nil, fmt.Errorf("row %d of the contingency table sums to zero", i)
		}
	}
	for j, s := range colSums {
		if s == 0 {
			return nil, fmt.Errorf("column %d of the contingency table sums to zero", j)
		}
	}

	expected := make([][]float64, nRows)
	for i := range expected {
		expected[i] = make([]float64, nCols)
		for j := range expected[i] {
			expected[i][j] = rowSums[i] * colSums[j] / total
		}
	}

	dof := (nRows - 1) * (nCols - 1)
	result := &schema.ChiSquaredResult{
		DoF:      dof,
		Observed: append([]float64(nil), table[0]...),
		Expected: expected,
	}
	if dof == 0 {
		result.Statistic = 0
		result.PValue = 1
		return result, nil
	}

	var obsFlat, expFlat []float64
	for i, row := range table {
		for j, o := range row {
			e := expected[i][j]
			if dof == 1 {
				o = yatesCorrect(o, e)
			}
			obsFlat = append(obsFlat, o)
			expFlat = append(expFlat, e)
		}
	}

	result.Statistic = stat.ChiSquare(obsFlat, expFlat)
	result.PValue = distuv.ChiSquared{K: float64(dof)}.Survival(result.Statistic)
	return result, nil
}

// yatesCorrect moves an observation up to 0.5 towards its expected value.
func yatesCorrect(observed, expected float64) float64 {
	diff := expected - observed
	step := math.Min(0.5, math.Abs(diff))
	if diff < 0 {
		step = -step
	}
	return observed + step
}
