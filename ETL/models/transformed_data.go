package models

// TransformedData содержит трансформированные данные для загрузки в хранилище
type TransformedData struct {
	// Измерения
	Locations      []DimLocation
	Currencies     []DimCurrency
	Designs        []DimDesign
	Counterparties []DimCounterparty
	Staff          []DimStaff
	Dates          []DimDate

	// Факты
	SalesOrders []FactSalesOrder

	// Метаданные
	Metadata ETLMetadata
}

// DimensionRows возвращает общее количество строк измерений
func (d *TransformedData) DimensionRows() int {
	return len(d.Locations) + len(d.Currencies) + len(d.Designs) +
		len(d.Counterparties) + len(d.Staff) + len(d.Dates)
}
