package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/keertidamani/ghcensus/pkg/domain/model"
)

// round3 rounds half to even at 3 decimals. NaN stays NaN.
func round3(v float64) model.Stat {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return model.Stat(math.NaN())
	}
	return model.Stat(math.RoundToEven(v*1000) / 1000)
}

func constant(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}

// pearson is undefined (NaN) for fewer than two samples or a constant column
func pearson(x, y []float64) float64 {
	if len(x) < 2 || constant(x) || constant(y) {
		return math.NaN()
	}
	return stat.Correlation(x, y, nil)
}

// slope is the OLS slope of y on x; undefined for fewer than two samples or constant x
func slope(x, y []float64) float64 {
	if len(x) < 2 || constant(x) {
		return math.NaN()
	}
	_, beta := stat.LinearRegression(x, y, nil, false)
	return beta
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return stat.Mean(xs, nil)
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
