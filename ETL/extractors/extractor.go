package extractors

import (
	"fmt"
	"time"

	"github.com/LilVoxy/sales_warehouse/ETL/models"
	"github.com/LilVoxy/sales_warehouse/ETL/utils"
)

// Обязательные колонки пакетов зоны загрузки, по таблицам
var (
	addressColumns = []string{"address_id", "address_line_1", "address_line_2",
		"district", "city", "postal_code", "country", "phone"}
	currencyColumns     = []string{"currency_id", "currency_code", "currency_name"}
	designColumns       = []string{"design_id", "design_name", "file_location", "file_name"}
	counterpartyColumns = []string{"counterparty_id", "counterparty_legal_name", "legal_address_id"}
	departmentColumns   = []string{"department_id", "department_name", "location"}
	staffColumns        = []string{"staff_id", "first_name", "last_name", "department_id", "email_address"}
	salesOrderColumns   = []string{"sales_order_id", "created_at", "last_updated", "design_id",
		"staff_id", "counterparty_id", "units_sold", "unit_price", "currency_id",
		"agreed_delivery_date", "agreed_payment_date", "agreed_delivery_location_id"}
)

// Extractor координирует извлечение пакетов записей из зоны загрузки.
// Зона загрузки - каталог с сериализованными выгрузками исходной системы,
// по одному файлу на таблицу; выгрузки туда помещает внешний коллаборатор.
type Extractor struct {
	zoneDir string
	logger  *utils.ETLLogger
}

// NewExtractor создает новый экземпляр Extractor
func NewExtractor(zoneDir string, logger *utils.ETLLogger) *Extractor {
	return &Extractor{
		zoneDir: zoneDir,
		logger:  logger,
	}
}

// Extract выполняет извлечение всех пакетов для ETL процесса
func (e *Extractor) Extract() (*models.ExtractedData, error) {
	startTime := time.Now()
	e.logger.LogExtractStart()

	var extractedData models.ExtractedData
	var err error

	// Извлекаем адреса
	extractedData.Addresses, err = extractTable[models.AddressRecord](e.zoneDir, "address", addressColumns)
	if err != nil {
		e.logger.Error("Ошибка при извлечении адресов: %v", err)
		return nil, fmt.Errorf("ошибка извлечения адресов: %w", err)
	}

	// Извлекаем валюты
	extractedData.Currencies, err = extractTable[models.CurrencyRecord](e.zoneDir, "currency", currencyColumns)
	if err != nil {
		e.logger.Error("Ошибка при извлечении валют: %v", err)
		return nil, fmt.Errorf("ошибка извлечения валют: %w", err)
	}

	// Извлекаем дизайны
	extractedData.Designs, err = extractTable[models.DesignRecord](e.zoneDir, "design", designColumns)
	if err != nil {
		e.logger.Error("Ошибка при извлечении дизайнов: %v", err)
		return nil, fmt.Errorf("ошибка извлечения дизайнов: %w", err)
	}

	// Извлекаем контрагентов
	extractedData.Counterparties, err = extractTable[models.CounterpartyRecord](e.zoneDir, "counterparty", counterpartyColumns)
	if err != nil {
		e.logger.Error("Ошибка при извлечении контрагентов: %v", err)
		return nil, fmt.Errorf("ошибка извлечения контрагентов: %w", err)
	}

	// Извлекаем отделы
	extractedData.Departments, err = extractTable[models.DepartmentRecord](e.zoneDir, "department", departmentColumns)
	if err != nil {
		e.logger.Error("Ошибка при извлечении отделов: %v", err)
		return nil, fmt.Errorf("ошибка извлечения отделов: %w", err)
	}

	// Извлекаем сотрудников
	extractedData.Staff, err = extractTable[models.StaffRecord](e.zoneDir, "staff", staffColumns)
	if err != nil {
		e.logger.Error("Ошибка при извлечении сотрудников: %v", err)
		return nil, fmt.Errorf("ошибка извлечения сотрудников: %w", err)
	}

	// Извлекаем заказы
	extractedData.SalesOrders, err = extractTable[models.SalesOrderRecord](e.zoneDir, "sales_order", salesOrderColumns)
	if err != nil {
		e.logger.Error("Ошибка при извлечении заказов: %v", err)
		return nil, fmt.Errorf("ошибка извлечения заказов: %w", err)
	}

	// Записываем время запуска
	extractedData.LastRunTS = time.Now()

	e.logger.LogExtractComplete(map[string]int{
		"address":      len(extractedData.Addresses),
		"currency":     len(extractedData.Currencies),
		"design":       len(extractedData.Designs),
		"counterparty": len(extractedData.Counterparties),
		"department":   len(extractedData.Departments),
		"staff":        len(extractedData.Staff),
		"sales_order":  len(extractedData.SalesOrders),
	}, time.Since(startTime))

	return &extractedData, nil
}
