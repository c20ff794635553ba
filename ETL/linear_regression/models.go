package linear_regression

import (
	"time"
)

// DataPoint представляет точку данных для линейной регрессии
type DataPoint struct {
	X    float64   // Порядковый номер дня (относительно начала периода)
	Y    float64   // Дневная выручка (units_sold * unit_price)
	Date time.Time // Фактическая дата продаж
}

// RegressionResult содержит результаты линейной регрессии
type RegressionResult struct {
	A           float64     // Коэффициент наклона
	B           float64     // Сдвиг
	R           float64     // Коэффициент корреляции Пирсона
	R2          float64     // Коэффициент детерминации
	PeriodStart time.Time   // Начало анализируемого периода
	PeriodEnd   time.Time   // Конец анализируемого периода
	DataPoints  []DataPoint // Исходные точки данных
}

// ForecastPoint представляет точку прогноза выручки
type ForecastPoint struct {
	Date          time.Time `json:"date"`           // Дата прогноза
	ForecastValue float64   `json:"forecast_value"` // Прогнозируемая выручка
	CILower       float64   `json:"ci_lower"`       // Нижняя граница доверительного интервала
	CIUpper       float64   `json:"ci_upper"`       // Верхняя граница доверительного интервала
}

// PredictionRepository интерфейс для работы с хранилищем прогнозов продаж
type PredictionRepository interface {
	// SaveMultiplePredictions сохраняет набор прогнозов одной модели
	SaveMultiplePredictions(result RegressionResult, forecasts []ForecastPoint) error

	// GetForecasts получает прогнозы для указанного периода
	GetForecasts(startDate, endDate time.Time) ([]ForecastPoint, error)

	// DeleteOldPredictions удаляет устаревшие прогнозы
	DeleteOldPredictions(olderThan time.Time) error
}
