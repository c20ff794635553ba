package linear_regression

import (
	"database/sql"
	"fmt"
	"time"
)

// MySQLPredictionRepository реализация PredictionRepository для MySQL
type MySQLPredictionRepository struct {
	db *sql.DB
}

// NewMySQLPredictionRepository создает новый репозиторий для работы с прогнозами продаж
func NewMySQLPredictionRepository(db *sql.DB) *MySQLPredictionRepository {
	return &MySQLPredictionRepository{
		db: db,
	}
}

// EnsureTableExists проверяет наличие таблицы прогнозов и создает ее при необходимости
func (r *MySQLPredictionRepository) EnsureTableExists() error {
	query := `
	CREATE TABLE IF NOT EXISTS sales_warehouse.sales_trend_predictions (
		id INT AUTO_INCREMENT PRIMARY KEY,
		period_start DATE NOT NULL,
		period_end DATE NOT NULL,
		a DOUBLE NOT NULL,
		b DOUBLE NOT NULL,
		r DOUBLE NOT NULL,
		r2 DOUBLE NOT NULL,
		forecast_date DATE NOT NULL,
		forecast_value DOUBLE NOT NULL,
		ci_lower DOUBLE NOT NULL,
		ci_upper DOUBLE NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_forecast_date (forecast_date),
		INDEX idx_period (period_start, period_end)
	);`

	_, err := r.db.Exec(query)
	return err
}

// SaveMultiplePredictions сохраняет набор прогнозов одной модели в транзакции
func (r *MySQLPredictionRepository) SaveMultiplePredictions(result RegressionResult, forecasts []ForecastPoint) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("не удалось начать транзакцию: %w", err)
	}

	query := `
	INSERT INTO sales_warehouse.sales_trend_predictions
		(period_start, period_end, a, b, r, r2, forecast_date, forecast_value, ci_lower, ci_upper)
	VALUES
		(?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	stmt, err := tx.Prepare(query)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("не удалось подготовить запрос: %w", err)
	}
	defer stmt.Close()

	for _, forecast := range forecasts {
		_, err := stmt.Exec(
			result.PeriodStart,
			result.PeriodEnd,
			result.A,
			result.B,
			result.R,
			result.R2,
			forecast.Date,
			forecast.ForecastValue,
			forecast.CILower,
			forecast.CIUpper,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("не удалось сохранить прогноз на %v: %w", forecast.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return fmt.Errorf("не удалось зафиксировать транзакцию: %w", err)
	}

	return nil
}

// GetForecasts получает прогнозы для указанного периода
func (r *MySQLPredictionRepository) GetForecasts(startDate, endDate time.Time) ([]ForecastPoint, error) {
	query := `
	SELECT
		forecast_date, forecast_value, ci_lower, ci_upper
	FROM
		sales_warehouse.sales_trend_predictions
	WHERE
		forecast_date BETWEEN ? AND ?
	ORDER BY
		forecast_date;`

	rows, err := r.db.Query(query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении прогнозов: %w", err)
	}
	defer rows.Close()

	var forecasts []ForecastPoint
	for rows.Next() {
		var forecast ForecastPoint
		if err := rows.Scan(&forecast.Date, &forecast.ForecastValue, &forecast.CILower, &forecast.CIUpper); err != nil {
			return nil, fmt.Errorf("ошибка при чтении прогноза: %w", err)
		}
		forecasts = append(forecasts, forecast)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по прогнозам: %w", err)
	}

	return forecasts, nil
}

// DeleteOldPredictions удаляет устаревшие прогнозы
func (r *MySQLPredictionRepository) DeleteOldPredictions(olderThan time.Time) error {
	query := `
	DELETE FROM sales_warehouse.sales_trend_predictions
	WHERE forecast_date < ?;`

	if _, err := r.db.Exec(query, olderThan); err != nil {
		return fmt.Errorf("ошибка при удалении устаревших прогнозов: %w", err)
	}

	return nil
}
