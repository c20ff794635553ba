package transform

import (
	"github.com/LilVoxy/sales_warehouse/ETL/models"
	"github.com/LilVoxy/sales_warehouse/ETL/utils"
)

// SalesOrderFactsProcessor отвечает за построение таблицы фактов заказов
type SalesOrderFactsProcessor struct {
	logger *utils.ETLLogger
}

// NewSalesOrderFactsProcessor создает новый экземпляр SalesOrderFactsProcessor
func NewSalesOrderFactsProcessor(logger *utils.ETLLogger) *SalesOrderFactsProcessor {
	return &SalesOrderFactsProcessor{
		logger: logger,
	}
}

// ProcessSalesOrderFacts преобразует пакет заказов в таблицу fact_sales_order.
// Метка created_at разбивается на created_date и created_time, метка
// last_updated - аналогично; согласованные даты оплаты и доставки остаются
// чистыми датами. Внешние ключи переименовываются по соглашению хранилища
// (staff_id → sales_staff_id, agreed_delivery_location_id - ключ адреса
// доставки). sales_record_id присваивается как порядковый номер записи в
// пакете, поэтому каждая строка факта соответствует ровно одной входной записи.
// Строки не фильтруются и не дедуплицируются.
func (p *SalesOrderFactsProcessor) ProcessSalesOrderFacts(orders []models.SalesOrderRecord) []models.FactSalesOrder {
	p.logger.Debug("Обработка фактов заказов...")

	facts := make([]models.FactSalesOrder, 0, len(orders))

	for i, order := range orders {
		facts = append(facts, models.FactSalesOrder{
			SalesRecordID:            int64(i + 1),
			SalesOrderID:             int64(order.SalesOrderID),
			CreatedDate:              models.CivilDateOf(order.CreatedAt.Time),
			CreatedTime:              models.ClockTimeOf(order.CreatedAt.Time),
			LastUpdatedDate:          models.CivilDateOf(order.LastUpdated.Time),
			LastUpdatedTime:          models.ClockTimeOf(order.LastUpdated.Time),
			SalesStaffID:             int64(order.StaffID),
			CounterpartyID:           int64(order.CounterpartyID),
			UnitsSold:                int64(order.UnitsSold),
			UnitPrice:                float64(order.UnitPrice),
			CurrencyID:               int64(order.CurrencyID),
			DesignID:                 int64(order.DesignID),
			AgreedPaymentDate:        order.AgreedPaymentDate,
			AgreedDeliveryDate:       order.AgreedDeliveryDate,
			AgreedDeliveryLocationID: int64(order.AgreedDeliveryLocationID),
		})
	}

	p.logger.Info("Обработано фактов заказов: %d", len(facts))
	return facts
}
