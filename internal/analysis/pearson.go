package analysis

import "math"

// Pearson computes the sample correlation coefficient of x and y.
// ok is false when the coefficient is undefined: fewer than two pairs,
// mismatched lengths, zero variance, or non-finite input.
func Pearson(x, y []float64) (r float64, ok bool) {
	n := len(x)
	if n < 2 || n != len(y) {
		return 0, false
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		if !isFinite(x[i]) || !isFinite(y[i]) {
			return 0, false
		}
		sumX += x[i]
		sumY += y[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	// 2-pass: 평균 중심화 후 공분산/분산
	var sxy, sxx, syy float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}

	if sxx == 0 || syy == 0 {
		return 0, false
	}

	r = sxy / math.Sqrt(sxx*syy)
	if !isFinite(r) {
		return 0, false
	}

	// 부동소수 오차로 ±1을 넘는 경우 보정
	return math.Max(-1, math.Min(1, r)), true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
