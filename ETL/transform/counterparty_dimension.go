package transform

import (
	"database/sql"

	"github.com/LilVoxy/sales_warehouse/ETL/models"
	"github.com/LilVoxy/sales_warehouse/ETL/utils"
)

// CounterpartyDimensionProcessor отвечает за построение измерения контрагентов
type CounterpartyDimensionProcessor struct {
	logger *utils.ETLLogger
}

// NewCounterpartyDimensionProcessor создает новый экземпляр CounterpartyDimensionProcessor
func NewCounterpartyDimensionProcessor(logger *utils.ETLLogger) *CounterpartyDimensionProcessor {
	return &CounterpartyDimensionProcessor{
		logger: logger,
	}
}

// ProcessCounterpartyDimension строит измерение dim_counterparty, присоединяя
// к каждому контрагенту его юридический адрес по внешнему ключу legal_address_id
// (левое соединение). Контрагент без совпадения по адресу не отбрасывается:
// атрибуты юридического адреса остаются пустыми (NULL). В результат попадают
// только объявленные колонки целевой схемы. Вторым значением возвращается
// число контрагентов без совпадения по адресу.
func (p *CounterpartyDimensionProcessor) ProcessCounterpartyDimension(
	addresses []models.AddressRecord,
	counterparties []models.CounterpartyRecord,
) ([]models.DimCounterparty, int) {
	p.logger.Debug("Обработка измерения контрагентов...")

	// Создаем карту адресов для быстрого доступа по ключу
	addressMap := make(map[int64]models.AddressRecord, len(addresses))
	for _, address := range addresses {
		addressMap[int64(address.AddressID)] = address
	}

	result := make([]models.DimCounterparty, 0, len(counterparties))
	missing := 0

	for _, counterparty := range counterparties {
		row := models.DimCounterparty{
			CounterpartyID: int64(counterparty.CounterpartyID),
			LegalName:      string(counterparty.LegalName),
		}

		address, found := addressMap[int64(counterparty.LegalAddressID)]
		if found {
			row.LegalAddressLine1 = nullText(address.AddressLine1)
			row.LegalAddressLine2 = nullText(address.AddressLine2)
			row.LegalDistrict = nullText(address.District)
			row.LegalCity = nullText(address.City)
			row.LegalPostalCode = nullText(address.PostalCode)
			row.LegalCountry = nullText(address.Country)
			row.LegalPhoneNumber = nullText(address.Phone)
		} else {
			missing++
		}

		result = append(result, row)
	}

	if missing > 0 {
		p.logger.Debug("Контрагентов без совпадения по юридическому адресу: %d", missing)
	}

	p.logger.Info("Обработано измерение контрагентов. Трансформировано записей: %d", len(result))
	return result, missing
}

// nullText оборачивает текстовый атрибут присоединённой записи в NullString
func nullText(t models.Text) sql.NullString {
	return sql.NullString{String: string(t), Valid: true}
}
