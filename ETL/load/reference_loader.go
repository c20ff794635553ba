package load

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/LilVoxy/sales_warehouse/ETL/models"
	"github.com/LilVoxy/sales_warehouse/ETL/utils"
)

// ReferenceLoader отвечает за загрузку справочных измерений:
// адресов доставки, валют и дизайнов
type ReferenceLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewReferenceLoader создает новый экземпляр ReferenceLoader
func NewReferenceLoader(db *sql.DB, logger *utils.ETLLogger) *ReferenceLoader {
	return &ReferenceLoader{
		db:     db,
		logger: logger,
	}
}

// LoadLocations загружает измерение адресов доставки
func (l *ReferenceLoader) LoadLocations(locations []models.DimLocation) error {
	if len(locations) == 0 {
		l.logger.Debug("Нет данных адресов доставки для загрузки")
		return nil
	}

	startTime := time.Now()
	l.logger.Info("Начало загрузки измерения адресов доставки (всего: %d)", len(locations))

	query := `
		INSERT INTO sales_warehouse.dim_location
		(location_id, address_line_1, address_line_2, district, city, postal_code, country, phone)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
		address_line_1 = VALUES(address_line_1),
		address_line_2 = VALUES(address_line_2),
		district = VALUES(district),
		city = VALUES(city),
		postal_code = VALUES(postal_code),
		country = VALUES(country),
		phone = VALUES(phone)
	`

	err := loadInTransaction(l.db, l.logger, query, len(locations), func(stmt *sql.Stmt, i int) error {
		row := locations[i]
		_, err := stmt.Exec(row.LocationID, row.AddressLine1, row.AddressLine2,
			row.District, row.City, row.PostalCode, row.Country, row.Phone)
		return err
	})
	if err != nil {
		return fmt.Errorf("ошибка при загрузке измерения адресов доставки: %w", err)
	}

	l.logger.Info("Загрузка измерения адресов доставки завершена. Длительность: %v", time.Since(startTime))
	return nil
}

// LoadCurrencies загружает измерение валют
func (l *ReferenceLoader) LoadCurrencies(currencies []models.DimCurrency) error {
	if len(currencies) == 0 {
		l.logger.Debug("Нет данных валют для загрузки")
		return nil
	}

	startTime := time.Now()
	l.logger.Info("Начало загрузки измерения валют (всего: %d)", len(currencies))

	query := `
		INSERT INTO sales_warehouse.dim_currency
		(currency_id, currency_code, currency_name)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE
		currency_code = VALUES(currency_code),
		currency_name = VALUES(currency_name)
	`

	err := loadInTransaction(l.db, l.logger, query, len(currencies), func(stmt *sql.Stmt, i int) error {
		row := currencies[i]
		_, err := stmt.Exec(row.CurrencyID, row.CurrencyCode, row.CurrencyName)
		return err
	})
	if err != nil {
		return fmt.Errorf("ошибка при загрузке измерения валют: %w", err)
	}

	l.logger.Info("Загрузка измерения валют завершена. Длительность: %v", time.Since(startTime))
	return nil
}

// LoadDesigns загружает измерение дизайнов
func (l *ReferenceLoader) LoadDesigns(designs []models.DimDesign) error {
	if len(designs) == 0 {
		l.logger.Debug("Нет данных дизайнов для загрузки")
		return nil
	}

	startTime := time.Now()
	l.logger.Info("Начало загрузки измерения дизайнов (всего: %d)", len(designs))

	query := `
		INSERT INTO sales_warehouse.dim_design
		(design_id, design_name, file_location, file_name)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
		design_name = VALUES(design_name),
		file_location = VALUES(file_location),
		file_name = VALUES(file_name)
	`

	err := loadInTransaction(l.db, l.logger, query, len(designs), func(stmt *sql.Stmt, i int) error {
		row := designs[i]
		_, err := stmt.Exec(row.DesignID, row.DesignName, row.FileLocation, row.FileName)
		return err
	})
	if err != nil {
		return fmt.Errorf("ошибка при загрузке измерения дизайнов: %w", err)
	}

	l.logger.Info("Загрузка измерения дизайнов завершена. Длительность: %v", time.Since(startTime))
	return nil
}

// loadInTransaction выполняет построчную загрузку в одной транзакции.
// Любая ошибка вставки откатывает транзакцию целиком.
func loadInTransaction(db *sql.DB, logger *utils.ETLLogger, query string, rows int, execRow func(*sql.Stmt, int) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("ошибка при начале транзакции: %w", err)
	}

	stmt, err := tx.Prepare(query)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("ошибка при подготовке запроса: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < rows; i++ {
		if err := execRow(stmt, i); err != nil {
			tx.Rollback()
			return fmt.Errorf("ошибка при вставке строки %d: %w", i, err)
		}

		// Логируем прогресс каждые 100 строк
		if (i+1)%100 == 0 {
			logger.Debug("Загружено %d из %d строк...", i+1, rows)
		}
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}
