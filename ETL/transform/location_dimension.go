package transform

import (
	"github.com/LilVoxy/sales_warehouse/ETL/models"
	"github.com/LilVoxy/sales_warehouse/ETL/utils"
)

// LocationDimensionProcessor отвечает за построение измерения адресов доставки
type LocationDimensionProcessor struct {
	logger *utils.ETLLogger
}

// NewLocationDimensionProcessor создает новый экземпляр LocationDimensionProcessor
func NewLocationDimensionProcessor(logger *utils.ETLLogger) *LocationDimensionProcessor {
	return &LocationDimensionProcessor{
		logger: logger,
	}
}

// ProcessLocationDimension преобразует пакет адресов в измерение dim_location.
// Простая проекция с переименованием ключа: строки не фильтруются и не
// дедуплицируются, количество строк на выходе равно количеству на входе.
func (p *LocationDimensionProcessor) ProcessLocationDimension(addresses []models.AddressRecord) []models.DimLocation {
	p.logger.Debug("Обработка измерения адресов доставки...")

	locations := make([]models.DimLocation, 0, len(addresses))

	for _, address := range addresses {
		locations = append(locations, models.DimLocation{
			LocationID:   int64(address.AddressID),
			AddressLine1: string(address.AddressLine1),
			AddressLine2: string(address.AddressLine2),
			District:     string(address.District),
			City:         string(address.City),
			PostalCode:   string(address.PostalCode),
			Country:      string(address.Country),
			Phone:        string(address.Phone),
		})
	}

	p.logger.Info("Обработано измерение адресов доставки. Трансформировано записей: %d", len(locations))
	return locations
}
