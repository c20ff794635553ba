package transform

import (
	"reflect"
	"testing"
	"time"

	"github.com/LilVoxy/sales_warehouse/ETL/models"
)

func sampleOrders() []models.SalesOrderRecord {
	return []models.SalesOrderRecord{
		{
			SalesOrderID:             2,
			CreatedAt:                models.Timestamp{Time: time.Date(2022, time.November, 3, 14, 20, 52, 186000000, time.UTC)},
			LastUpdated:              models.Timestamp{Time: time.Date(2022, time.November, 3, 14, 20, 52, 186000000, time.UTC)},
			DesignID:                 3,
			StaffID:                  19,
			CounterpartyID:           8,
			UnitsSold:                42972,
			UnitPrice:                3.94,
			CurrencyID:               2,
			AgreedDeliveryDate:       models.CivilDate{Year: 2022, Month: time.November, Day: 7},
			AgreedPaymentDate:        models.CivilDate{Year: 2022, Month: time.November, Day: 8},
			AgreedDeliveryLocationID: 8,
		},
		{
			SalesOrderID:             3,
			CreatedAt:                models.Timestamp{Time: time.Date(2022, time.November, 3, 14, 20, 52, 188000000, time.UTC)},
			LastUpdated:              models.Timestamp{Time: time.Date(2022, time.November, 4, 9, 0, 0, 0, time.UTC)},
			DesignID:                 4,
			StaffID:                  10,
			CounterpartyID:           4,
			UnitsSold:                65839,
			UnitPrice:                2.91,
			CurrencyID:               3,
			AgreedDeliveryDate:       models.CivilDate{Year: 2022, Month: time.November, Day: 6},
			AgreedPaymentDate:        models.CivilDate{Year: 2022, Month: time.November, Day: 7},
			AgreedDeliveryLocationID: 19,
		},
	}
}

func TestProcessSalesOrderFactsFieldMapping(t *testing.T) {
	t.Parallel()

	processor := NewSalesOrderFactsProcessor(testLogger())
	facts := processor.ProcessSalesOrderFacts(sampleOrders())

	if len(facts) != 2 {
		t.Fatalf("получено %d фактов, ожидалось 2", len(facts))
	}

	fact := facts[0]
	if fact.SalesOrderID != 2 {
		t.Errorf("SalesOrderID = %d, ожидалось 2", fact.SalesOrderID)
	}
	if fact.SalesStaffID != 19 {
		t.Errorf("SalesStaffID = %d, ожидалось 19 (переименование staff_id)", fact.SalesStaffID)
	}
	if fact.CounterpartyID != 8 || fact.CurrencyID != 2 || fact.DesignID != 3 {
		t.Errorf("внешние ключи перенесены неверно: %+v", fact)
	}
	if fact.UnitsSold != 42972 {
		t.Errorf("UnitsSold = %d, ожидалось 42972", fact.UnitsSold)
	}
	if fact.UnitPrice != 3.94 {
		t.Errorf("UnitPrice = %v, ожидалось 3.94", fact.UnitPrice)
	}
	if fact.AgreedDeliveryLocationID != 8 {
		t.Errorf("AgreedDeliveryLocationID = %d, ожидалось 8", fact.AgreedDeliveryLocationID)
	}
	if want := (models.CivilDate{Year: 2022, Month: time.November, Day: 8}); fact.AgreedPaymentDate != want {
		t.Errorf("AgreedPaymentDate = %v, ожидалось %v", fact.AgreedPaymentDate, want)
	}
}

func TestProcessSalesOrderFactsRecordIDSequence(t *testing.T) {
	t.Parallel()

	processor := NewSalesOrderFactsProcessor(testLogger())
	facts := processor.ProcessSalesOrderFacts(sampleOrders())

	// Суррогатный ключ - порядковый номер записи в пакете, начиная с 1
	for i, fact := range facts {
		if fact.SalesRecordID != int64(i+1) {
			t.Errorf("факт %d: SalesRecordID = %d, ожидалось %d", i, fact.SalesRecordID, i+1)
		}
	}
}

func TestProcessSalesOrderFactsSplitsTimestamps(t *testing.T) {
	t.Parallel()

	orders := sampleOrders()
	processor := NewSalesOrderFactsProcessor(testLogger())
	facts := processor.ProcessSalesOrderFacts(orders)

	fact := facts[0]
	if want := (models.CivilDate{Year: 2022, Month: time.November, Day: 3}); fact.CreatedDate != want {
		t.Errorf("CreatedDate = %v, ожидалось %v", fact.CreatedDate, want)
	}
	if fact.CreatedTime.Hour != 14 || fact.CreatedTime.Minute != 20 || fact.CreatedTime.Second != 52 {
		t.Errorf("CreatedTime = %v, ожидалось 14:20:52", fact.CreatedTime)
	}

	// Дата и время суток в паре восстанавливают исходную метку без потерь
	for i, fact := range facts {
		restored := fact.CreatedTime.At(fact.CreatedDate)
		if !restored.Equal(orders[i].CreatedAt.Time) {
			t.Errorf("факт %d: восстановленная метка %v не равна исходной %v", i, restored, orders[i].CreatedAt.Time)
		}
		restored = fact.LastUpdatedTime.At(fact.LastUpdatedDate)
		if !restored.Equal(orders[i].LastUpdated.Time) {
			t.Errorf("факт %d: восстановленная метка %v не равна исходной %v", i, restored, orders[i].LastUpdated.Time)
		}
	}
}

func TestProcessSalesOrderFactsDeterministic(t *testing.T) {
	t.Parallel()

	processor := NewSalesOrderFactsProcessor(testLogger())
	first := processor.ProcessSalesOrderFacts(sampleOrders())
	second := processor.ProcessSalesOrderFacts(sampleOrders())

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("повторная обработка того же пакета должна давать тот же результат")
	}
}

func TestTransformFullBatch(t *testing.T) {
	t.Parallel()

	extracted := &models.ExtractedData{
		Addresses: []models.AddressRecord{
			{AddressID: 8, AddressLine1: "0579 Durgan Common", City: "Suffolk", PostalCode: "56693-0660", Country: "United Kingdom", Phone: "8935 157571"},
		},
		Currencies: []models.CurrencyRecord{
			{CurrencyID: 2, CurrencyCode: "USD", CurrencyName: "US dollar"},
		},
		Designs: []models.DesignRecord{
			{DesignID: 3, DesignName: "Steel", FileLocation: "/System", FileName: "steel-20210621.json"},
		},
		Counterparties: []models.CounterpartyRecord{
			{CounterpartyID: 8, LegalName: "Grant - Lakin", LegalAddressID: 8},
		},
		Departments: []models.DepartmentRecord{
			{DepartmentID: 2, DepartmentName: "Sales", Location: "Leeds"},
		},
		Staff: []models.StaffRecord{
			{StaffID: 19, FirstName: "Pierre", LastName: "Sauer", DepartmentID: 2, EmailAddress: "pierre.sauer@terrifictotes.com"},
		},
		SalesOrders: sampleOrders(),
	}

	transformer := NewTransformer(testLogger())
	transformed, err := transformer.Transform(extracted)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if len(transformed.Locations) != 1 || len(transformed.Currencies) != 1 || len(transformed.Designs) != 1 {
		t.Errorf("простые измерения построены неверно")
	}
	if len(transformed.Counterparties) != 1 || len(transformed.Staff) != 1 {
		t.Errorf("измерения с соединениями построены неверно")
	}
	if len(transformed.SalesOrders) != 2 {
		t.Errorf("получено %d фактов, ожидалось 2", len(transformed.SalesOrders))
	}
	if len(transformed.Dates) == 0 {
		t.Errorf("измерение дат не должно быть пустым")
	}
	if transformed.Metadata.RecordsExtracted != extracted.TotalRecords() {
		t.Errorf("метаданные: RecordsExtracted = %d, ожидалось %d",
			transformed.Metadata.RecordsExtracted, extracted.TotalRecords())
	}
	if transformed.Metadata.ErrorsEncountered != 0 {
		t.Errorf("метаданные: ErrorsEncountered = %d, ожидалось 0",
			transformed.Metadata.ErrorsEncountered)
	}
}

func TestTransformCountsReferentialGaps(t *testing.T) {
	t.Parallel()

	// Контрагент и сотрудник ссылаются на несуществующие адреса и отделы
	extracted := &models.ExtractedData{
		Counterparties: []models.CounterpartyRecord{
			{CounterpartyID: 8, LegalName: "Grant - Lakin", LegalAddressID: 404},
		},
		Staff: []models.StaffRecord{
			{StaffID: 19, FirstName: "Pierre", LastName: "Sauer", DepartmentID: 99, EmailAddress: "pierre.sauer@terrifictotes.com"},
		},
		SalesOrders: sampleOrders(),
	}

	transformer := NewTransformer(testLogger())
	transformed, err := transformer.Transform(extracted)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	// Строки с пропусками сохраняются, а их число попадает в метаданные
	if len(transformed.Counterparties) != 1 || len(transformed.Staff) != 1 {
		t.Errorf("строки с пропусками не должны отбрасываться")
	}
	if transformed.Metadata.ErrorsEncountered != 2 {
		t.Errorf("метаданные: ErrorsEncountered = %d, ожидалось 2",
			transformed.Metadata.ErrorsEncountered)
	}
}
