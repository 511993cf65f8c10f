package stats

// LinearFit результат линейной регрессии y = Slope*x + Intercept по x = 0..n-1
type LinearFit struct {
	Slope     float64
	Intercept float64
}

// Predict возвращает значение прямой в точке x
func (f LinearFit) Predict(x float64) float64 {
	return f.Slope*x + f.Intercept
}

// Fitted значения прямой в точках 0..n-1
func (f LinearFit) Fitted(n int) []float64 {
	fitted := make([]float64, n)
	for i := range fitted {
		fitted[i] = f.Predict(float64(i))
	}
	return fitted
}

// LinearRegression строит прямую методом наименьших квадратов
// Для пустого ряда возвращает нулевую прямую, для одной точки горизонтальную
func LinearRegression(values []float64) LinearFit {
	n := float64(len(values))
	switch len(values) {
	case 0:
		return LinearFit{}
	case 1:
		return LinearFit{Intercept: values[0]}
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denominator := n*sumXX - sumX*sumX
	if denominator == 0 {
		return LinearFit{Intercept: sumY / n}
	}

	slope := (n*sumXY - sumX*sumY) / denominator
	return LinearFit{
		Slope:     slope,
		Intercept: (sumY - slope*sumX) / n,
	}
}
