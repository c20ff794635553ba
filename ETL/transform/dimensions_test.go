package transform

import (
	"testing"
	"time"

	"github.com/LilVoxy/sales_warehouse/ETL/models"
	"github.com/LilVoxy/sales_warehouse/ETL/utils"
)

func testLogger() *utils.ETLLogger {
	return utils.NewETLLogger(false)
}

func TestProcessLocationDimension(t *testing.T) {
	t.Parallel()

	addresses := []models.AddressRecord{
		{
			AddressID:    15,
			AddressLine1: "6826 Herzog Via",
			AddressLine2: "",
			District:     "Avon",
			City:         "New Patienceburgh",
			PostalCode:   "28441",
			Country:      "Turkey",
			Phone:        "1803 637401",
		},
		{
			AddressID:    16,
			AddressLine1: "179 Alexie Cliffs",
			District:     "",
			City:         "Aliso Viejo",
			PostalCode:   "99305-7380",
			Country:      "San Marino",
			Phone:        "9621 880720",
		},
	}

	processor := NewLocationDimensionProcessor(testLogger())
	rows := processor.ProcessLocationDimension(addresses)

	if len(rows) != 2 {
		t.Fatalf("получено %d строк, ожидалось 2", len(rows))
	}

	first := rows[0]
	if first.LocationID != 15 {
		t.Errorf("LocationID = %d, ожидалось 15", first.LocationID)
	}
	if first.AddressLine1 != "6826 Herzog Via" || first.City != "New Patienceburgh" {
		t.Errorf("атрибуты адреса перенесены неверно: %+v", first)
	}
	if first.Phone != "1803 637401" {
		t.Errorf("Phone = %q, ожидалось %q", first.Phone, "1803 637401")
	}

	// Пустой район остается пустой строкой, строка не отбрасывается
	if rows[1].District != "" {
		t.Errorf("District = %q, ожидалась пустая строка", rows[1].District)
	}
}

func TestProcessCurrencyDimension(t *testing.T) {
	t.Parallel()

	currencies := []models.CurrencyRecord{
		{CurrencyID: 1, CurrencyCode: "GBP", CurrencyName: "British pound"},
		{CurrencyID: 2, CurrencyCode: "USD", CurrencyName: "US dollar"},
	}

	processor := NewCurrencyDimensionProcessor(testLogger())
	rows := processor.ProcessCurrencyDimension(currencies)

	if len(rows) != 2 {
		t.Fatalf("получено %d строк, ожидалось 2", len(rows))
	}
	if rows[0].CurrencyID != 1 || rows[0].CurrencyCode != "GBP" || rows[0].CurrencyName != "British pound" {
		t.Errorf("валюта перенесена неверно: %+v", rows[0])
	}
}

func TestProcessDesignDimension(t *testing.T) {
	t.Parallel()

	designs := []models.DesignRecord{
		{DesignID: 8, DesignName: "Wooden", FileLocation: "/usr", FileName: "wooden-20220717.json"},
	}

	processor := NewDesignDimensionProcessor(testLogger())
	rows := processor.ProcessDesignDimension(designs)

	if len(rows) != 1 {
		t.Fatalf("получено %d строк, ожидалась 1", len(rows))
	}
	row := rows[0]
	if row.DesignID != 8 || row.DesignName != "Wooden" || row.FileLocation != "/usr" || row.FileName != "wooden-20220717.json" {
		t.Errorf("дизайн перенесен неверно: %+v", row)
	}
}

func TestProcessCounterpartyDimensionJoinsLegalAddress(t *testing.T) {
	t.Parallel()

	addresses := []models.AddressRecord{
		{
			AddressID:    15,
			AddressLine1: "6826 Herzog Via",
			District:     "Avon",
			City:         "New Patienceburgh",
			PostalCode:   "28441",
			Country:      "Turkey",
			Phone:        "1803 637401",
		},
	}
	counterparties := []models.CounterpartyRecord{
		{CounterpartyID: 1, LegalName: "Fahey and Sons", LegalAddressID: 15},
	}

	processor := NewCounterpartyDimensionProcessor(testLogger())
	rows, missing := processor.ProcessCounterpartyDimension(addresses, counterparties)

	if len(rows) != 1 {
		t.Fatalf("получено %d строк, ожидалась 1", len(rows))
	}
	if missing != 0 {
		t.Errorf("пропусков по адресам %d, ожидалось 0", missing)
	}

	row := rows[0]
	if row.CounterpartyID != 1 || row.LegalName != "Fahey and Sons" {
		t.Errorf("контрагент перенесен неверно: %+v", row)
	}
	if !row.LegalAddressLine1.Valid || row.LegalAddressLine1.String != "6826 Herzog Via" {
		t.Errorf("LegalAddressLine1 = %+v, ожидалось %q", row.LegalAddressLine1, "6826 Herzog Via")
	}
	if !row.LegalPhoneNumber.Valid || row.LegalPhoneNumber.String != "1803 637401" {
		t.Errorf("LegalPhoneNumber = %+v, ожидалось %q", row.LegalPhoneNumber, "1803 637401")
	}
}

func TestProcessCounterpartyDimensionMissingAddress(t *testing.T) {
	t.Parallel()

	counterparties := []models.CounterpartyRecord{
		{CounterpartyID: 7, LegalName: "Orphaned Ltd", LegalAddressID: 404},
	}

	processor := NewCounterpartyDimensionProcessor(testLogger())
	rows, missing := processor.ProcessCounterpartyDimension(nil, counterparties)

	if len(rows) != 1 {
		t.Fatalf("контрагент без адреса не должен отбрасываться")
	}
	if missing != 1 {
		t.Errorf("пропусков по адресам %d, ожидался 1", missing)
	}

	row := rows[0]
	if row.LegalName != "Orphaned Ltd" {
		t.Errorf("LegalName = %q, ожидалось %q", row.LegalName, "Orphaned Ltd")
	}
	if row.LegalAddressLine1.Valid || row.LegalCity.Valid || row.LegalPhoneNumber.Valid {
		t.Errorf("атрибуты адреса должны остаться NULL: %+v", row)
	}
}

func TestProcessStaffDimensionJoinsDepartment(t *testing.T) {
	t.Parallel()

	departments := []models.DepartmentRecord{
		{DepartmentID: 2, DepartmentName: "Purchasing", Location: "Manchester"},
	}
	staff := []models.StaffRecord{
		{StaffID: 1, FirstName: "Jeremie", LastName: "Franey", DepartmentID: 2, EmailAddress: "jeremie.franey@terrifictotes.com"},
		{StaffID: 2, FirstName: "Deron", LastName: "Beier", DepartmentID: 99, EmailAddress: "deron.beier@terrifictotes.com"},
	}

	processor := NewStaffDimensionProcessor(testLogger())
	rows, missing := processor.ProcessStaffDimension(departments, staff)

	if len(rows) != 2 {
		t.Fatalf("получено %d строк, ожидалось 2", len(rows))
	}
	if missing != 1 {
		t.Errorf("пропусков по отделам %d, ожидался 1", missing)
	}

	joined := rows[0]
	if joined.StaffID != 1 || joined.FirstName != "Jeremie" || joined.EmailAddress != "jeremie.franey@terrifictotes.com" {
		t.Errorf("сотрудник перенесен неверно: %+v", joined)
	}
	if !joined.DepartmentName.Valid || joined.DepartmentName.String != "Purchasing" {
		t.Errorf("DepartmentName = %+v, ожидалось %q", joined.DepartmentName, "Purchasing")
	}
	if !joined.Location.Valid || joined.Location.String != "Manchester" {
		t.Errorf("Location = %+v, ожидалось %q", joined.Location, "Manchester")
	}

	// Сотрудник с неизвестным отделом сохраняется с пустыми атрибутами отдела
	orphan := rows[1]
	if orphan.DepartmentName.Valid || orphan.Location.Valid {
		t.Errorf("атрибуты отдела должны остаться NULL: %+v", orphan)
	}
}

func TestProcessDateDimensionDeduplicates(t *testing.T) {
	t.Parallel()

	created := time.Date(2022, time.November, 3, 14, 20, 52, 0, time.UTC)
	orders := []models.SalesOrderRecord{
		{
			SalesOrderID:       1,
			CreatedAt:          models.Timestamp{Time: created},
			LastUpdated:        models.Timestamp{Time: created.Add(2 * time.Hour)},
			AgreedPaymentDate:  models.CivilDate{Year: 2022, Month: time.November, Day: 7},
			AgreedDeliveryDate: models.CivilDate{Year: 2022, Month: time.November, Day: 9},
		},
		{
			SalesOrderID:       2,
			CreatedAt:          models.Timestamp{Time: created.Add(30 * time.Minute)},
			LastUpdated:        models.Timestamp{Time: created.Add(time.Hour)},
			AgreedPaymentDate:  models.CivilDate{Year: 2022, Month: time.November, Day: 7},
			AgreedDeliveryDate: models.CivilDate{Year: 2022, Month: time.November, Day: 9},
		},
	}

	processor := NewDateDimensionProcessor(testLogger())
	rows, err := processor.ProcessDateDimension(orders)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	// Все восемь меток сворачиваются в три различные даты: 3, 7 и 9 ноября
	if len(rows) != 3 {
		t.Fatalf("получено %d строк, ожидалось 3", len(rows))
	}

	seen := make(map[models.CivilDate]bool)
	for _, row := range rows {
		if !row.Valid {
			t.Errorf("в измерении дат не должно быть пустых строк: %+v", row)
		}
		if seen[row.DateID] {
			t.Errorf("дата %v встречается более одного раза", row.DateID)
		}
		seen[row.DateID] = true
	}

	for _, day := range []int{3, 7, 9} {
		if !seen[(models.CivilDate{Year: 2022, Month: time.November, Day: day})] {
			t.Errorf("отсутствует дата 2022-11-%02d", day)
		}
	}
}
