package models

import (
	"time"
)

// AddressRecord представляет адрес в выгрузке исходной операционной системы
type AddressRecord struct {
	AddressID    WholeInt `json:"address_id"`
	AddressLine1 Text     `json:"address_line_1"`
	AddressLine2 Text     `json:"address_line_2"`
	District     Text     `json:"district"`
	City         Text     `json:"city"`
	PostalCode   Text     `json:"postal_code"`
	Country      Text     `json:"country"`
	Phone        Text     `json:"phone"`
}

// CurrencyRecord представляет валюту в выгрузке исходной системы
type CurrencyRecord struct {
	CurrencyID   WholeInt `json:"currency_id"`
	CurrencyCode Text     `json:"currency_code"`
	CurrencyName Text     `json:"currency_name"`
}

// DesignRecord представляет дизайн изделия в выгрузке исходной системы
type DesignRecord struct {
	DesignID     WholeInt `json:"design_id"`
	DesignName   Text     `json:"design_name"`
	FileLocation Text     `json:"file_location"`
	FileName     Text     `json:"file_name"`
}

// CounterpartyRecord представляет контрагента в выгрузке исходной системы.
// Поля коммерческого адреса в выгрузке присутствуют, но в целевую схему
// не входят и при разборе не сохраняются.
type CounterpartyRecord struct {
	CounterpartyID WholeInt `json:"counterparty_id"`
	LegalName      Text     `json:"counterparty_legal_name"`
	LegalAddressID WholeInt `json:"legal_address_id"`
}

// DepartmentRecord представляет отдел в выгрузке исходной системы
type DepartmentRecord struct {
	DepartmentID   WholeInt `json:"department_id"`
	DepartmentName Text     `json:"department_name"`
	Location       Text     `json:"location"`
}

// StaffRecord представляет сотрудника в выгрузке исходной системы
type StaffRecord struct {
	StaffID      WholeInt `json:"staff_id"`
	FirstName    Text     `json:"first_name"`
	LastName     Text     `json:"last_name"`
	DepartmentID WholeInt `json:"department_id"`
	EmailAddress Text     `json:"email_address"`
}

// SalesOrderRecord представляет заказ на продажу в выгрузке исходной системы
type SalesOrderRecord struct {
	SalesOrderID             WholeInt  `json:"sales_order_id"`
	CreatedAt                Timestamp `json:"created_at"`
	LastUpdated              Timestamp `json:"last_updated"`
	DesignID                 WholeInt  `json:"design_id"`
	StaffID                  WholeInt  `json:"staff_id"`
	CounterpartyID           WholeInt  `json:"counterparty_id"`
	UnitsSold                WholeInt  `json:"units_sold"`
	UnitPrice                Float     `json:"unit_price"`
	CurrencyID               WholeInt  `json:"currency_id"`
	AgreedDeliveryDate       CivilDate `json:"agreed_delivery_date"`
	AgreedPaymentDate        CivilDate `json:"agreed_payment_date"`
	AgreedDeliveryLocationID WholeInt  `json:"agreed_delivery_location_id"`
}

// ExtractedData содержит пакеты записей, извлечённые из зоны загрузки
type ExtractedData struct {
	Addresses      []AddressRecord
	Currencies     []CurrencyRecord
	Designs        []DesignRecord
	Counterparties []CounterpartyRecord
	Departments    []DepartmentRecord
	Staff          []StaffRecord
	SalesOrders    []SalesOrderRecord
	LastRunTS      time.Time
}

// TotalRecords возвращает общее количество извлечённых записей
func (d *ExtractedData) TotalRecords() int {
	return len(d.Addresses) + len(d.Currencies) + len(d.Designs) +
		len(d.Counterparties) + len(d.Departments) + len(d.Staff) + len(d.SalesOrders)
}
