package stats

import "errors"

// DefaultSmoothingAlpha коэффициент сглаживания по умолчанию
const DefaultSmoothingAlpha = 0.3

// ErrInvalidAlpha возвращается, когда alpha вне диапазона (0, 1]
var ErrInvalidAlpha = errors.New("stats: smoothing alpha must be in (0, 1]")

// ExponentialSmoothing возвращает ряд s[0] = v[0], s[t] = alpha*v[t] + (1-alpha)*s[t-1]
func ExponentialSmoothing(values []float64, alpha float64) ([]float64, error) {
	if alpha <= 0 || alpha > 1 {
		return nil, ErrInvalidAlpha
	}

	smoothed := make([]float64, len(values))
	for i, v := range values {
		if i == 0 {
			smoothed[i] = v
			continue
		}
		smoothed[i] = alpha*v + (1-alpha)*smoothed[i-1]
	}

	return smoothed, nil
}
