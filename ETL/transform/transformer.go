package transform

import (
	"fmt"
	"time"

	"github.com/LilVoxy/sales_warehouse/ETL/models"
	"github.com/LilVoxy/sales_warehouse/ETL/utils"
)

// Transformer координирует построение измерений и фактов хранилища
type Transformer struct {
	logger                *utils.ETLLogger
	locationProcessor     *LocationDimensionProcessor
	currencyProcessor     *CurrencyDimensionProcessor
	designProcessor       *DesignDimensionProcessor
	counterpartyProcessor *CounterpartyDimensionProcessor
	staffProcessor        *StaffDimensionProcessor
	dateProcessor         *DateDimensionProcessor
	salesFactsProcessor   *SalesOrderFactsProcessor
}

// NewTransformer создает новый экземпляр Transformer
func NewTransformer(logger *utils.ETLLogger) *Transformer {
	return &Transformer{
		logger:                logger,
		locationProcessor:     NewLocationDimensionProcessor(logger),
		currencyProcessor:     NewCurrencyDimensionProcessor(logger),
		designProcessor:       NewDesignDimensionProcessor(logger),
		counterpartyProcessor: NewCounterpartyDimensionProcessor(logger),
		staffProcessor:        NewStaffDimensionProcessor(logger),
		dateProcessor:         NewDateDimensionProcessor(logger),
		salesFactsProcessor:   NewSalesOrderFactsProcessor(logger),
	}
}

// Transform выполняет полное преобразование извлечённых пакетов в измерения
// и факты хранилища. Все преобразования чистые: входные пакеты не изменяются,
// результат строится заново при каждом вызове.
func (t *Transformer) Transform(extractedData *models.ExtractedData) (*models.TransformedData, error) {
	startTime := time.Now()
	t.logger.Info("Начало фазы Transform (Преобразование данных)")

	transformedData := &models.TransformedData{}

	// 1. Измерение адресов доставки
	t.logger.Info("Преобразование адресов доставки...")
	transformedData.Locations = t.locationProcessor.ProcessLocationDimension(extractedData.Addresses)

	// 2. Измерение валют
	t.logger.Info("Преобразование валют...")
	transformedData.Currencies = t.currencyProcessor.ProcessCurrencyDimension(extractedData.Currencies)

	// 3. Измерение дизайнов
	t.logger.Info("Преобразование дизайнов...")
	transformedData.Designs = t.designProcessor.ProcessDesignDimension(extractedData.Designs)

	// 4. Измерение контрагентов (соединение с адресами)
	t.logger.Info("Преобразование контрагентов...")
	counterparties, missingAddresses := t.counterpartyProcessor.ProcessCounterpartyDimension(
		extractedData.Addresses, extractedData.Counterparties)
	transformedData.Counterparties = counterparties

	// 5. Измерение сотрудников (соединение с отделами)
	t.logger.Info("Преобразование сотрудников...")
	staff, missingDepartments := t.staffProcessor.ProcessStaffDimension(
		extractedData.Departments, extractedData.Staff)
	transformedData.Staff = staff

	// 6. Измерение дат из колонок пакета заказов
	t.logger.Info("Преобразование дат...")
	dates, err := t.dateProcessor.ProcessDateDimension(extractedData.SalesOrders)
	if err != nil {
		t.logger.Error("Ошибка при построении измерения дат: %v", err)
		return nil, fmt.Errorf("ошибка при построении измерения дат: %w", err)
	}
	transformedData.Dates = dates

	// 7. Факты заказов
	t.logger.Info("Преобразование фактов заказов...")
	transformedData.SalesOrders = t.salesFactsProcessor.ProcessSalesOrderFacts(extractedData.SalesOrders)

	// Заполняем метаданные. Пропуски по внешним ключам не прерывают прогон,
	// но их число сохраняется для журнала.
	transformedData.Metadata = models.ETLMetadata{
		LastRunTimestamp:  time.Now(),
		RecordsExtracted:  extractedData.TotalRecords(),
		DimensionsLoaded:  transformedData.DimensionRows(),
		FactsLoaded:       len(transformedData.SalesOrders),
		ErrorsEncountered: missingAddresses + missingDepartments,
	}
	if transformedData.Metadata.ErrorsEncountered > 0 {
		t.logger.Info("Обнаружено пропусков по внешним ключам: %d", transformedData.Metadata.ErrorsEncountered)
	}

	duration := time.Since(startTime)
	t.logger.Info("Фаза Transform завершена. Длительность: %v", duration)

	return transformedData, nil
}
