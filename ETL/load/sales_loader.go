package load

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/LilVoxy/sales_warehouse/ETL/models"
	"github.com/LilVoxy/sales_warehouse/ETL/utils"
)

// SalesLoader отвечает за загрузку фактов заказов
type SalesLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger
}

// NewSalesLoader создает новый экземпляр SalesLoader
func NewSalesLoader(db *sql.DB, logger *utils.ETLLogger) *SalesLoader {
	return &SalesLoader{
		db:     db,
		logger: logger,
	}
}

// Load загружает факты заказов в таблицу fact_sales_order
func (l *SalesLoader) Load(facts []models.FactSalesOrder) error {
	if len(facts) == 0 {
		l.logger.Debug("Нет фактов заказов для загрузки")
		return nil
	}

	startTime := time.Now()
	l.logger.Info("Начало загрузки фактов заказов (всего: %d)", len(facts))

	query := `
		INSERT INTO sales_warehouse.fact_sales_order
		(sales_record_id, sales_order_id, created_date, created_time,
		last_updated_date, last_updated_time, sales_staff_id, counterparty_id,
		units_sold, unit_price, currency_id, design_id,
		agreed_payment_date, agreed_delivery_date, agreed_delivery_location_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
		sales_order_id = VALUES(sales_order_id),
		created_date = VALUES(created_date),
		created_time = VALUES(created_time),
		last_updated_date = VALUES(last_updated_date),
		last_updated_time = VALUES(last_updated_time),
		sales_staff_id = VALUES(sales_staff_id),
		counterparty_id = VALUES(counterparty_id),
		units_sold = VALUES(units_sold),
		unit_price = VALUES(unit_price),
		currency_id = VALUES(currency_id),
		design_id = VALUES(design_id),
		agreed_payment_date = VALUES(agreed_payment_date),
		agreed_delivery_date = VALUES(agreed_delivery_date),
		agreed_delivery_location_id = VALUES(agreed_delivery_location_id)
	`

	err := loadInTransaction(l.db, l.logger, query, len(facts), func(stmt *sql.Stmt, i int) error {
		row := facts[i]
		_, err := stmt.Exec(
			row.SalesRecordID,
			row.SalesOrderID,
			row.CreatedDate.String(),
			row.CreatedTime.String(),
			row.LastUpdatedDate.String(),
			row.LastUpdatedTime.String(),
			row.SalesStaffID,
			row.CounterpartyID,
			row.UnitsSold,
			row.UnitPrice,
			row.CurrencyID,
			row.DesignID,
			row.AgreedPaymentDate.String(),
			row.AgreedDeliveryDate.String(),
			row.AgreedDeliveryLocationID,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("ошибка при загрузке фактов заказов: %w", err)
	}

	l.logger.Info("Загрузка фактов заказов завершена. Длительность: %v", time.Since(startTime))
	return nil
}
