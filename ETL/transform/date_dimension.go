package transform

import (
	"fmt"

	"github.com/LilVoxy/sales_warehouse/ETL/models"
	"github.com/LilVoxy/sales_warehouse/ETL/utils"
)

// Колонки пакета заказов, содержащие даты. Каждая из них независимо
// пропускается через декомпозицию календаря.
var dateBearingColumns = []string{
	"created_at",
	"last_updated",
	"agreed_payment_date",
	"agreed_delivery_date",
}

// DateDimensionProcessor отвечает за построение измерения дат
type DateDimensionProcessor struct {
	logger *utils.ETLLogger
}

// NewDateDimensionProcessor создает новый экземпляр DateDimensionProcessor
func NewDateDimensionProcessor(logger *utils.ETLLogger) *DateDimensionProcessor {
	return &DateDimensionProcessor{
		logger: logger,
	}
}

// ProcessDateDimension строит измерение dim_date: каждая колонка с датами
// из пакета заказов независимо разбирается на календарные атрибуты,
// результаты объединяются, после чего удаляются полностью совпадающие строки.
// В итоге измерение содержит одну строку на каждую различную календарную дату
// во всём пакете.
func (p *DateDimensionProcessor) ProcessDateDimension(orders []models.SalesOrderRecord) ([]models.DimDate, error) {
	p.logger.Debug("Обработка измерения дат...")

	var combined []models.DimDate
	for _, column := range dateBearingColumns {
		values, err := TimestampColumn(orders, column)
		if err != nil {
			return nil, fmt.Errorf("ошибка при выборе колонки %q: %w", column, err)
		}
		combined = append(combined, DecomposeCalendar(values)...)
	}

	// Удаляем дубликаты: строки, совпадающие по всем восьми атрибутам
	seen := make(map[models.DimDate]bool, len(combined))
	result := make([]models.DimDate, 0, len(combined))
	for _, row := range combined {
		if seen[row] {
			continue
		}
		seen[row] = true
		result = append(result, row)
	}

	p.logger.Info("Обработано измерение дат. Различных дат: %d", len(result))
	return result, nil
}
