package transform

import (
	"github.com/LilVoxy/sales_warehouse/ETL/models"
	"github.com/LilVoxy/sales_warehouse/ETL/utils"
)

// DesignDimensionProcessor отвечает за построение измерения дизайнов
type DesignDimensionProcessor struct {
	logger *utils.ETLLogger
}

// NewDesignDimensionProcessor создает новый экземпляр DesignDimensionProcessor
func NewDesignDimensionProcessor(logger *utils.ETLLogger) *DesignDimensionProcessor {
	return &DesignDimensionProcessor{
		logger: logger,
	}
}

// ProcessDesignDimension преобразует пакет дизайнов в измерение dim_design
func (p *DesignDimensionProcessor) ProcessDesignDimension(designs []models.DesignRecord) []models.DimDesign {
	p.logger.Debug("Обработка измерения дизайнов...")

	result := make([]models.DimDesign, 0, len(designs))

	for _, design := range designs {
		result = append(result, models.DimDesign{
			DesignID:     int64(design.DesignID),
			DesignName:   string(design.DesignName),
			FileLocation: string(design.FileLocation),
			FileName:     string(design.FileName),
		})
	}

	p.logger.Info("Обработано измерение дизайнов. Трансформировано записей: %d", len(result))
	return result
}
