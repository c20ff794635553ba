package linear_regression

import (
	"math"
	"testing"
	"time"
)

func linePoints(a, b float64, days int) []DataPoint {
	base := time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)
	points := make([]DataPoint, days)
	for i := 0; i < days; i++ {
		x := float64(i)
		points[i] = DataPoint{
			X:    x,
			Y:    a*x + b,
			Date: base.AddDate(0, 0, i),
		}
	}
	return points
}

func TestLinearRegressionPerfectLine(t *testing.T) {
	t.Parallel()

	// Выручка растет ровно на 250 в день от базовых 1000
	result, err := LinearRegression(linePoints(250, 1000, 10))
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if result.A != 250 {
		t.Errorf("A = %v, ожидалось 250", result.A)
	}
	if result.B != 1000 {
		t.Errorf("B = %v, ожидалось 1000", result.B)
	}
	if result.R != 1 || result.R2 != 1 {
		t.Errorf("R = %v, R² = %v, для идеальной прямой ожидалась 1", result.R, result.R2)
	}

	wantStart := time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2023, time.March, 10, 0, 0, 0, 0, time.UTC)
	if !result.PeriodStart.Equal(wantStart) || !result.PeriodEnd.Equal(wantEnd) {
		t.Errorf("период %v..%v, ожидалось %v..%v", result.PeriodStart, result.PeriodEnd, wantStart, wantEnd)
	}
}

func TestLinearRegressionTooFewPoints(t *testing.T) {
	t.Parallel()

	if _, err := LinearRegression(linePoints(1, 1, 1)); err == nil {
		t.Fatalf("одна точка не должна давать модель")
	}
}

func TestPredictExtendsLine(t *testing.T) {
	t.Parallel()

	result, err := LinearRegression(linePoints(250, 1000, 10))
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if got := Predict(result, 12); got != 4000 {
		t.Errorf("Predict(12) = %v, ожидалось 4000", got)
	}
}

func TestGenerateForecasts(t *testing.T) {
	t.Parallel()

	result, err := LinearRegression(linePoints(250, 1000, 10))
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	forecasts := GenerateForecasts(result, 5, 0.95)
	if len(forecasts) != 5 {
		t.Fatalf("получено %d прогнозов, ожидалось 5", len(forecasts))
	}

	// Прогнозы идут подряд со дня, следующего за концом периода
	for i, forecast := range forecasts {
		wantDate := result.PeriodEnd.AddDate(0, 0, i+1)
		if !forecast.Date.Equal(wantDate) {
			t.Errorf("прогноз %d: дата %v, ожидалось %v", i, forecast.Date, wantDate)
		}

		wantValue := 250*float64(9+i+1) + 1000
		if math.Abs(forecast.ForecastValue-wantValue) > 1e-9 {
			t.Errorf("прогноз %d: значение %v, ожидалось %v", i, forecast.ForecastValue, wantValue)
		}

		if forecast.CILower > forecast.ForecastValue || forecast.CIUpper < forecast.ForecastValue {
			t.Errorf("прогноз %d: интервал [%v, %v] не накрывает значение %v",
				i, forecast.CILower, forecast.CIUpper, forecast.ForecastValue)
		}
	}
}

func TestRoundToThousandth(t *testing.T) {
	t.Parallel()

	if got := RoundToThousandth(3.14159); got != 3.142 {
		t.Errorf("получено %v, ожидалось 3.142", got)
	}
	if got := RoundToThousandth(2.0004); got != 2.0 {
		t.Errorf("получено %v, ожидалось 2.0", got)
	}
}
