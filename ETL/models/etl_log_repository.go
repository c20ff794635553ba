package models

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MySQLETLLogRepository реализация ETLLogRepository для MySQL
type MySQLETLLogRepository struct {
	db *sql.DB
}

// NewMySQLETLLogRepository создает новый экземпляр MySQLETLLogRepository
func NewMySQLETLLogRepository(db *sql.DB) *MySQLETLLogRepository {
	return &MySQLETLLogRepository{
		db: db,
	}
}

// CreateETLLogTable создает таблицу журнала ETL, если она не существует
func (r *MySQLETLLogRepository) CreateETLLogTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS sales_warehouse.etl_run_log (
		id INT AUTO_INCREMENT PRIMARY KEY,
		run_uuid CHAR(36) NOT NULL,
		start_time TIMESTAMP NOT NULL,
		end_time TIMESTAMP NULL,
		status ENUM('success', 'failed', 'in_progress') NOT NULL DEFAULT 'in_progress',
		records_extracted INT DEFAULT 0,
		dimensions_loaded INT DEFAULT 0,
		facts_loaded INT DEFAULT 0,
		error_message TEXT,
		execution_time_seconds FLOAT
	);
	`

	_, err := r.db.Exec(query)
	if err != nil {
		return fmt.Errorf("ошибка при создании таблицы etl_run_log: %w", err)
	}

	return nil
}

// CreateLogEntry создает новую запись о запуске ETL
func (r *MySQLETLLogRepository) CreateLogEntry(startTime time.Time) (int, string, error) {
	runUUID := uuid.NewString()

	query := `
	INSERT INTO sales_warehouse.etl_run_log (run_uuid, start_time, status)
	VALUES (?, ?, 'in_progress')
	`

	result, err := r.db.Exec(query, runUUID, startTime)
	if err != nil {
		return 0, "", fmt.Errorf("ошибка при создании записи о запуске ETL: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, "", fmt.Errorf("ошибка при получении ID созданной записи: %w", err)
	}

	return int(id), runUUID, nil
}

// UpdateLogEntrySuccess обновляет запись при успешном завершении ETL
func (r *MySQLETLLogRepository) UpdateLogEntrySuccess(
	id int,
	endTime time.Time,
	recordsExtracted,
	dimensionsLoaded,
	factsLoaded int) error {

	// Рассчитываем время выполнения в секундах
	var startTime time.Time
	err := r.db.QueryRow("SELECT start_time FROM sales_warehouse.etl_run_log WHERE id = ?", id).Scan(&startTime)
	if err != nil {
		return fmt.Errorf("ошибка при получении времени начала ETL: %w", err)
	}

	executionTime := endTime.Sub(startTime).Seconds()

	query := `
	UPDATE sales_warehouse.etl_run_log
	SET
		end_time = ?,
		status = 'success',
		records_extracted = ?,
		dimensions_loaded = ?,
		facts_loaded = ?,
		execution_time_seconds = ?
	WHERE id = ?
	`

	_, err = r.db.Exec(
		query,
		endTime,
		recordsExtracted,
		dimensionsLoaded,
		factsLoaded,
		executionTime,
		id,
	)

	if err != nil {
		return fmt.Errorf("ошибка при обновлении записи о запуске ETL: %w", err)
	}

	return nil
}

// UpdateLogEntryFailure обновляет запись при неудачном завершении ETL
func (r *MySQLETLLogRepository) UpdateLogEntryFailure(id int, endTime time.Time, errorMessage string) error {
	var startTime time.Time
	err := r.db.QueryRow("SELECT start_time FROM sales_warehouse.etl_run_log WHERE id = ?", id).Scan(&startTime)
	if err != nil {
		return fmt.Errorf("ошибка при получении времени начала ETL: %w", err)
	}

	executionTime := endTime.Sub(startTime).Seconds()

	query := `
	UPDATE sales_warehouse.etl_run_log
	SET
		end_time = ?,
		status = 'failed',
		error_message = ?,
		execution_time_seconds = ?
	WHERE id = ?
	`

	_, err = r.db.Exec(query, endTime, errorMessage, executionTime, id)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении записи о запуске ETL: %w", err)
	}

	return nil
}

// GetLastSuccessfulRun получает информацию о последнем успешном запуске ETL
func (r *MySQLETLLogRepository) GetLastSuccessfulRun() (*ETLRunLog, error) {
	query := `
	SELECT
		id, run_uuid, start_time, end_time, status,
		records_extracted, dimensions_loaded, facts_loaded,
		IFNULL(error_message, ''), execution_time_seconds
	FROM sales_warehouse.etl_run_log
	WHERE status = 'success'
	ORDER BY end_time DESC
	LIMIT 1
	`

	var entry ETLRunLog
	err := r.db.QueryRow(query).Scan(
		&entry.ID, &entry.RunUUID, &entry.StartTime, &entry.EndTime, &entry.Status,
		&entry.RecordsExtracted, &entry.DimensionsLoaded, &entry.FactsLoaded,
		&entry.ErrorMessage, &entry.ExecutionSeconds,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Нет успешных запусков
		}
		return nil, fmt.Errorf("ошибка при получении информации о последнем успешном запуске ETL: %w", err)
	}

	return &entry, nil
}

// GetETLRunStats получает историю запусков ETL за указанное число дней
func (r *MySQLETLLogRepository) GetETLRunStats(days int) ([]ETLRunLog, error) {
	query := `
	SELECT
		id, run_uuid, start_time, end_time, status,
		records_extracted, dimensions_loaded, facts_loaded,
		IFNULL(error_message, ''), execution_time_seconds
	FROM sales_warehouse.etl_run_log
	WHERE start_time >= DATE_SUB(NOW(), INTERVAL ? DAY)
	ORDER BY start_time DESC
	`

	rows, err := r.db.Query(query, days)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении статистики запусков ETL: %w", err)
	}
	defer rows.Close()

	var entries []ETLRunLog
	for rows.Next() {
		var entry ETLRunLog
		// end_time может быть NULL для незавершённых запусков
		var endTime sql.NullTime
		var execSeconds sql.NullFloat64
		err := rows.Scan(
			&entry.ID, &entry.RunUUID, &entry.StartTime, &endTime, &entry.Status,
			&entry.RecordsExtracted, &entry.DimensionsLoaded, &entry.FactsLoaded,
			&entry.ErrorMessage, &execSeconds,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка при сканировании записи журнала ETL: %w", err)
		}
		if endTime.Valid {
			entry.EndTime = endTime.Time
		}
		if execSeconds.Valid {
			entry.ExecutionSeconds = execSeconds.Float64
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по записям журнала ETL: %w", err)
	}

	return entries, nil
}
