package load

import (
	"database/sql"

	"github.com/LilVoxy/sales_warehouse/ETL/models"
	"github.com/LilVoxy/sales_warehouse/ETL/utils"
)

// Loader интерфейс для загрузки измерений и фактов в хранилище
type Loader interface {
	// LoadLocationDimension загружает измерение адресов доставки
	LoadLocationDimension(locations []models.DimLocation) error

	// LoadCurrencyDimension загружает измерение валют
	LoadCurrencyDimension(currencies []models.DimCurrency) error

	// LoadDesignDimension загружает измерение дизайнов
	LoadDesignDimension(designs []models.DimDesign) error

	// LoadCounterpartyDimension загружает измерение контрагентов
	LoadCounterpartyDimension(counterparties []models.DimCounterparty) error

	// LoadStaffDimension загружает измерение сотрудников
	LoadStaffDimension(staff []models.DimStaff) error

	// LoadDateDimension загружает измерение дат
	LoadDateDimension(dates []models.DimDate) error

	// LoadSalesOrderFacts загружает факты заказов
	LoadSalesOrderFacts(facts []models.FactSalesOrder) error
}

// OLAPLoader реализация Loader для базы данных хранилища
type OLAPLoader struct {
	db     *sql.DB
	logger *utils.ETLLogger

	// Загрузчики для отдельных типов данных
	referenceLoader *ReferenceLoader
	partyLoader     *PartyLoader
	dateLoader      *DateLoader
	salesLoader     *SalesLoader
}

// NewOLAPLoader создает новый экземпляр OLAPLoader
func NewOLAPLoader(db *sql.DB, logger *utils.ETLLogger) *OLAPLoader {
	return &OLAPLoader{
		db:              db,
		logger:          logger,
		referenceLoader: NewReferenceLoader(db, logger),
		partyLoader:     NewPartyLoader(db, logger),
		dateLoader:      NewDateLoader(db, logger),
		salesLoader:     NewSalesLoader(db, logger),
	}
}

// LoadLocationDimension загружает измерение адресов доставки
func (l *OLAPLoader) LoadLocationDimension(locations []models.DimLocation) error {
	return l.referenceLoader.LoadLocations(locations)
}

// LoadCurrencyDimension загружает измерение валют
func (l *OLAPLoader) LoadCurrencyDimension(currencies []models.DimCurrency) error {
	return l.referenceLoader.LoadCurrencies(currencies)
}

// LoadDesignDimension загружает измерение дизайнов
func (l *OLAPLoader) LoadDesignDimension(designs []models.DimDesign) error {
	return l.referenceLoader.LoadDesigns(designs)
}

// LoadCounterpartyDimension загружает измерение контрагентов
func (l *OLAPLoader) LoadCounterpartyDimension(counterparties []models.DimCounterparty) error {
	return l.partyLoader.LoadCounterparties(counterparties)
}

// LoadStaffDimension загружает измерение сотрудников
func (l *OLAPLoader) LoadStaffDimension(staff []models.DimStaff) error {
	return l.partyLoader.LoadStaff(staff)
}

// LoadDateDimension загружает измерение дат
func (l *OLAPLoader) LoadDateDimension(dates []models.DimDate) error {
	return l.dateLoader.Load(dates)
}

// LoadSalesOrderFacts загружает факты заказов
func (l *OLAPLoader) LoadSalesOrderFacts(facts []models.FactSalesOrder) error {
	return l.salesLoader.Load(facts)
}
