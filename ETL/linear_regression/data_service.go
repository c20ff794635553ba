package linear_regression

import (
	"database/sql"
	"fmt"
	"time"
)

// DataService сервис для получения данных о продажах из хранилища
type DataService struct {
	db *sql.DB
}

// NewDataService создает новый сервис для работы с данными
func NewDataService(db *sql.DB) *DataService {
	return &DataService{
		db: db,
	}
}

// GetDailySalesData получает дневную выручку за указанный период.
// Выручка агрегируется по дате создания заказа из таблицы фактов.
func (s *DataService) GetDailySalesData(daysBack int) ([]DataPoint, error) {
	// Сначала определим последнюю доступную дату продаж
	lastDateQuery := `
	SELECT
		MAX(created_date)
	FROM
		sales_warehouse.fact_sales_order;`

	var lastDate sql.NullTime
	err := s.db.QueryRow(lastDateQuery).Scan(&lastDate)
	if err != nil {
		return nil, fmt.Errorf("ошибка при определении последней даты продаж: %w", err)
	}
	if !lastDate.Valid {
		return nil, fmt.Errorf("таблица фактов заказов пуста, анализировать нечего")
	}

	query := `
	SELECT
		created_date,
		SUM(units_sold * unit_price)
	FROM
		sales_warehouse.fact_sales_order
	WHERE
		created_date >= DATE_SUB(?, INTERVAL ? DAY)
		AND created_date <= ?
	GROUP BY
		created_date
	ORDER BY
		created_date;`

	rows, err := s.db.Query(query, lastDate.Time, daysBack, lastDate.Time)
	if err != nil {
		return nil, fmt.Errorf("ошибка при выполнении запроса к хранилищу: %w", err)
	}
	defer rows.Close()

	var dataPoints []DataPoint
	var baseDate time.Time
	firstPoint := true

	for rows.Next() {
		var date time.Time
		var revenue float64

		if err := rows.Scan(&date, &revenue); err != nil {
			return nil, fmt.Errorf("ошибка при чтении данных: %w", err)
		}

		if firstPoint {
			baseDate = date
			firstPoint = false
		}

		// Рассчитываем X как количество дней от начала периода
		days := date.Sub(baseDate).Hours() / 24

		dataPoints = append(dataPoints, DataPoint{
			X:    days,
			Y:    revenue,
			Date: date,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по результатам: %w", err)
	}

	if len(dataPoints) == 0 {
		return nil, fmt.Errorf("не найдены данные о продажах за последние %d дней от %v", daysBack, lastDate.Time)
	}

	return dataPoints, nil
}
