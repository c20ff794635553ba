package models

import (
	"time"
)

// ETLRunLog представляет запись журнала о запуске ETL процесса
type ETLRunLog struct {
	ID               int       `json:"id"`
	RunUUID          string    `json:"run_uuid"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	Status           string    `json:"status"` // "success", "failed", "in_progress"
	RecordsExtracted int       `json:"records_extracted"`
	DimensionsLoaded int       `json:"dimensions_loaded"`
	FactsLoaded      int       `json:"facts_loaded"`
	ErrorMessage     string    `json:"error_message,omitempty"`
	ExecutionSeconds float64   `json:"execution_time_seconds"`
}

// ETLLogRepository представляет репозиторий журнала запусков ETL
type ETLLogRepository interface {
	// CreateLogEntry создает новую запись о запуске ETL и возвращает её ID и UUID запуска
	CreateLogEntry(startTime time.Time) (int, string, error)

	// UpdateLogEntrySuccess обновляет запись при успешном завершении ETL
	UpdateLogEntrySuccess(id int, endTime time.Time, recordsExtracted, dimensionsLoaded, factsLoaded int) error

	// UpdateLogEntryFailure обновляет запись при неудачном завершении ETL
	UpdateLogEntryFailure(id int, endTime time.Time, errorMessage string) error

	// GetLastSuccessfulRun получает информацию о последнем успешном запуске ETL
	GetLastSuccessfulRun() (*ETLRunLog, error)

	// GetETLRunStats получает историю запусков ETL за указанное число дней
	GetETLRunStats(days int) ([]ETLRunLog, error)
}

// ETLMetadata содержит метаданные одного запуска ETL
type ETLMetadata struct {
	LastRunTimestamp  time.Time
	RecordsExtracted  int
	DimensionsLoaded  int
	FactsLoaded       int
	ErrorsEncountered int
}
