package transform

import (
	"github.com/LilVoxy/sales_warehouse/ETL/models"
	"github.com/LilVoxy/sales_warehouse/ETL/utils"
)

// CurrencyDimensionProcessor отвечает за построение измерения валют
type CurrencyDimensionProcessor struct {
	logger *utils.ETLLogger
}

// NewCurrencyDimensionProcessor создает новый экземпляр CurrencyDimensionProcessor
func NewCurrencyDimensionProcessor(logger *utils.ETLLogger) *CurrencyDimensionProcessor {
	return &CurrencyDimensionProcessor{
		logger: logger,
	}
}

// ProcessCurrencyDimension преобразует пакет валют в измерение dim_currency
func (p *CurrencyDimensionProcessor) ProcessCurrencyDimension(currencies []models.CurrencyRecord) []models.DimCurrency {
	p.logger.Debug("Обработка измерения валют...")

	result := make([]models.DimCurrency, 0, len(currencies))

	for _, currency := range currencies {
		result = append(result, models.DimCurrency{
			CurrencyID:   int64(currency.CurrencyID),
			CurrencyCode: string(currency.CurrencyCode),
			CurrencyName: string(currency.CurrencyName),
		})
	}

	p.logger.Info("Обработано измерение валют. Трансформировано записей: %d", len(result))
	return result
}
