package load

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/LilVoxy/sales_warehouse/ETL/models"
	"github.com/LilVoxy/sales_warehouse/ETL/utils"
)

// DateLoader отвечает за загрузку измерения дат
type DateLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewDateLoader создает новый экземпляр DateLoader
func NewDateLoader(db *sql.DB, logger *utils.ETLLogger) *DateLoader {
	return &DateLoader{
		db:     db,
		logger: logger,
	}
}

// Load загружает измерение дат. Первичный ключ таблицы - сама календарная
// дата, поэтому уже известные даты просто пропускаются без обновления.
func (l *DateLoader) Load(dates []models.DimDate) error {
	if len(dates) == 0 {
		l.logger.Debug("Нет данных дат для загрузки")
		return nil
	}

	startTime := time.Now()
	l.logger.Info("Начало загрузки измерения дат (всего: %d)", len(dates))

	// Пустые строки (пропуски в исходных колонках) в таблицу не попадают:
	// ключ date_id объявлен NOT NULL
	rows := make([]models.DimDate, 0, len(dates))
	for _, row := range dates {
		if row.Valid {
			rows = append(rows, row)
		}
	}
	if len(rows) < len(dates) {
		l.logger.Debug("Пропущено пустых строк измерения дат: %d", len(dates)-len(rows))
	}

	query := `
		INSERT IGNORE INTO sales_warehouse.dim_date
		(date_id, year, month, day, day_of_week, day_name, month_name, quarter)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	err := loadInTransaction(l.db, l.logger, query, len(rows), func(stmt *sql.Stmt, i int) error {
		row := rows[i]
		_, err := stmt.Exec(row.DateID.String(), row.Year, row.Month, row.Day,
			row.DayOfWeek, row.DayName, row.MonthName, row.Quarter)
		return err
	})
	if err != nil {
		return fmt.Errorf("ошибка при загрузке измерения дат: %w", err)
	}

	l.logger.Info("Загрузка измерения дат завершена. Длительность: %v", time.Since(startTime))
	return nil
}
