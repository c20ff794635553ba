package models

import (
	"database/sql"
)

// DimLocation представляет измерение адресов доставки в хранилище.
// Порядок колонок: location_id, address_line_1, address_line_2, district,
// city, postal_code, country, phone.
type DimLocation struct {
	LocationID   int64
	AddressLine1 string
	AddressLine2 string
	District     string
	City         string
	PostalCode   string
	Country      string
	Phone        string
}

// DimCurrency представляет измерение валют в хранилище
type DimCurrency struct {
	CurrencyID   int64
	CurrencyCode string
	CurrencyName string
}

// DimDesign представляет измерение дизайнов в хранилище
type DimDesign struct {
	DesignID     int64
	DesignName   string
	FileLocation string
	FileName     string
}

// DimCounterparty представляет измерение контрагентов в хранилище.
// Атрибуты юридического адреса присоединяются из измерения адресов;
// контрагент без совпадения по адресу сохраняется с пустыми (NULL) атрибутами.
type DimCounterparty struct {
	CounterpartyID    int64
	LegalName         string
	LegalAddressLine1 sql.NullString
	LegalAddressLine2 sql.NullString
	LegalDistrict     sql.NullString
	LegalCity         sql.NullString
	LegalPostalCode   sql.NullString
	LegalCountry      sql.NullString
	LegalPhoneNumber  sql.NullString
}

// DimStaff представляет измерение сотрудников в хранилище.
// Название отдела и его расположение присоединяются из записей отделов.
type DimStaff struct {
	StaffID        int64
	FirstName      string
	LastName       string
	DepartmentName sql.NullString
	Location       sql.NullString
	EmailAddress   string
}

// DimDate представляет строку измерения дат. Все восемь атрибутов выводятся
// из одной метки времени, поэтому пропуск в исходной колонке делает пустой
// всю строку целиком (Valid=false).
type DimDate struct {
	DateID    CivilDate
	Year      int
	Month     int
	Day       int
	DayOfWeek int // понедельник=0 .. воскресенье=6
	DayName   string
	MonthName string
	Quarter   int
	Valid     bool
}

// FactSalesOrder представляет факт заказа на продажу.
// Порядок колонок: sales_record_id, sales_order_id, created_date, created_time,
// last_updated_date, last_updated_time, sales_staff_id, counterparty_id,
// units_sold, unit_price, currency_id, design_id, agreed_payment_date,
// agreed_delivery_date, agreed_delivery_location_id.
type FactSalesOrder struct {
	SalesRecordID            int64
	SalesOrderID             int64
	CreatedDate              CivilDate
	CreatedTime              ClockTime
	LastUpdatedDate          CivilDate
	LastUpdatedTime          ClockTime
	SalesStaffID             int64
	CounterpartyID           int64
	UnitsSold                int64
	UnitPrice                float64
	CurrencyID               int64
	DesignID                 int64
	AgreedPaymentDate        CivilDate
	AgreedDeliveryDate       CivilDate
	AgreedDeliveryLocationID int64
}
