package load

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/LilVoxy/sales_warehouse/ETL/models"
	"github.com/LilVoxy/sales_warehouse/ETL/utils"
)

// PartyLoader отвечает за загрузку измерений контрагентов и сотрудников
type PartyLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewPartyLoader создает новый экземпляр PartyLoader
func NewPartyLoader(db *sql.DB, logger *utils.ETLLogger) *PartyLoader {
	return &PartyLoader{
		db:     db,
		logger: logger,
	}
}

// LoadCounterparties загружает измерение контрагентов
func (l *PartyLoader) LoadCounterparties(counterparties []models.DimCounterparty) error {
	if len(counterparties) == 0 {
		l.logger.Debug("Нет данных контрагентов для загрузки")
		return nil
	}

	startTime := time.Now()
	l.logger.Info("Начало загрузки измерения контрагентов (всего: %d)", len(counterparties))

	query := `
		INSERT INTO sales_warehouse.dim_counterparty
		(counterparty_id, counterparty_legal_name, counterparty_legal_address_line_1,
		counterparty_legal_address_line_2, counterparty_legal_district, counterparty_legal_city,
		counterparty_legal_postal_code, counterparty_legal_country, counterparty_legal_phone_number)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
		counterparty_legal_name = VALUES(counterparty_legal_name),
		counterparty_legal_address_line_1 = VALUES(counterparty_legal_address_line_1),
		counterparty_legal_address_line_2 = VALUES(counterparty_legal_address_line_2),
		counterparty_legal_district = VALUES(counterparty_legal_district),
		counterparty_legal_city = VALUES(counterparty_legal_city),
		counterparty_legal_postal_code = VALUES(counterparty_legal_postal_code),
		counterparty_legal_country = VALUES(counterparty_legal_country),
		counterparty_legal_phone_number = VALUES(counterparty_legal_phone_number)
	`

	err := loadInTransaction(l.db, l.logger, query, len(counterparties), func(stmt *sql.Stmt, i int) error {
		row := counterparties[i]
		_, err := stmt.Exec(row.CounterpartyID, row.LegalName,
			row.LegalAddressLine1, row.LegalAddressLine2, row.LegalDistrict,
			row.LegalCity, row.LegalPostalCode, row.LegalCountry, row.LegalPhoneNumber)
		return err
	})
	if err != nil {
		return fmt.Errorf("ошибка при загрузке измерения контрагентов: %w", err)
	}

	l.logger.Info("Загрузка измерения контрагентов завершена. Длительность: %v", time.Since(startTime))
	return nil
}

// LoadStaff загружает измерение сотрудников
func (l *PartyLoader) LoadStaff(staff []models.DimStaff) error {
	if len(staff) == 0 {
		l.logger.Debug("Нет данных сотрудников для загрузки")
		return nil
	}

	startTime := time.Now()
	l.logger.Info("Начало загрузки измерения сотрудников (всего: %d)", len(staff))

	query := `
		INSERT INTO sales_warehouse.dim_staff
		(staff_id, first_name, last_name, department_name, location, email_address)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
		first_name = VALUES(first_name),
		last_name = VALUES(last_name),
		department_name = VALUES(department_name),
		location = VALUES(location),
		email_address = VALUES(email_address)
	`

	err := loadInTransaction(l.db, l.logger, query, len(staff), func(stmt *sql.Stmt, i int) error {
		row := staff[i]
		_, err := stmt.Exec(row.StaffID, row.FirstName, row.LastName,
			row.DepartmentName, row.Location, row.EmailAddress)
		return err
	})
	if err != nil {
		return fmt.Errorf("ошибка при загрузке измерения сотрудников: %w", err)
	}

	l.logger.Info("Загрузка измерения сотрудников завершена. Длительность: %v", time.Since(startTime))
	return nil
}
