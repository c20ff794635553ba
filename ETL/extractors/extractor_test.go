package extractors

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/LilVoxy/sales_warehouse/ETL/models"
	"github.com/LilVoxy/sales_warehouse/ETL/utils"
	"github.com/LilVoxy/sales_warehouse/processor"
)

func writeBatch(t *testing.T, dir, name string, content []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
		t.Fatalf("не удалось записать файл %s: %v", name, err)
	}
}

func populateZone(t *testing.T, dir string) {
	t.Helper()

	writeBatch(t, dir, "address.json", []byte(`[
		{"address_id": 15, "address_line_1": "6826 Herzog Via", "address_line_2": null,
		 "district": "Avon", "city": "New Patienceburgh", "postal_code": "28441",
		 "country": "Turkey", "phone": "1803 637401"}
	]`))
	writeBatch(t, dir, "currency.json", []byte(`[
		{"currency_id": 2, "currency_code": "USD", "currency_name": "US dollar"}
	]`))
	writeBatch(t, dir, "design.json", []byte(`[
		{"design_id": 8, "design_name": "Wooden", "file_location": "/usr", "file_name": "wooden-20220717.json"}
	]`))
	writeBatch(t, dir, "counterparty.json", []byte(`[
		{"counterparty_id": 1, "counterparty_legal_name": "Fahey and Sons",
		 "legal_address_id": 15, "commercial_contact": "Micheal Toy"}
	]`))
	writeBatch(t, dir, "department.json", []byte(`[
		{"department_id": 2, "department_name": "Purchasing", "location": "Manchester"}
	]`))
	writeBatch(t, dir, "staff.json", []byte(`[
		{"staff_id": 1, "first_name": "Jeremie", "last_name": "Franey",
		 "department_id": 2, "email_address": "jeremie.franey@terrifictotes.com"}
	]`))

	// Пакет заказов кладем в зону в сжатом виде
	orders := []byte(`[
		{"sales_order_id": 2, "created_at": "2022-11-03 14:20:52.186",
		 "last_updated": "2022-11-03 14:20:52.186", "design_id": 3, "staff_id": 19,
		 "counterparty_id": 8, "units_sold": 42972, "unit_price": 3.94, "currency_id": 2,
		 "agreed_delivery_date": "2022-11-07", "agreed_payment_date": "2022-11-08",
		 "agreed_delivery_location_id": 8}
	]`)
	writeBatch(t, dir, "sales_order.json.sz", processor.CompressBatch(orders))
}

func TestExtractFullZone(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	populateZone(t, dir)

	extractor := NewExtractor(dir, utils.NewETLLogger(false))
	data, err := extractor.Extract()
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if data.TotalRecords() != 7 {
		t.Errorf("TotalRecords() = %d, ожидалось 7", data.TotalRecords())
	}
	if len(data.SalesOrders) != 1 {
		t.Fatalf("получено %d заказов, ожидался 1 (из сжатого пакета)", len(data.SalesOrders))
	}

	order := data.SalesOrders[0]
	if order.SalesOrderID != 2 || order.UnitsSold != 42972 || order.UnitPrice != 3.94 {
		t.Errorf("заказ разобран неверно: %+v", order)
	}

	// Колонки, не входящие в целевую схему, отбрасываются при разборе
	if data.Counterparties[0].LegalName != "Fahey and Sons" {
		t.Errorf("контрагент разобран неверно: %+v", data.Counterparties[0])
	}

	// Null в текстовой колонке становится пустой строкой
	if data.Addresses[0].AddressLine2 != "" {
		t.Errorf("AddressLine2 = %q, ожидалась пустая строка", data.Addresses[0].AddressLine2)
	}
}

func TestExtractMissingColumn(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	populateZone(t, dir)

	// Перезаписываем пакет валют без обязательной колонки currency_name
	writeBatch(t, dir, "currency.json", []byte(`[
		{"currency_id": 2, "currency_code": "USD"}
	]`))

	extractor := NewExtractor(dir, utils.NewETLLogger(false))
	_, err := extractor.Extract()
	if err == nil {
		t.Fatalf("отсутствие обязательной колонки должно прерывать извлечение")
	}
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("ошибка %v должна оборачивать ErrMissingColumn", err)
	}
}

func TestExtractMissingTable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	populateZone(t, dir)
	if err := os.Remove(filepath.Join(dir, "design.json")); err != nil {
		t.Fatalf("не удалось удалить пакет: %v", err)
	}

	extractor := NewExtractor(dir, utils.NewETLLogger(false))
	if _, err := extractor.Extract(); err == nil {
		t.Fatalf("отсутствие пакета таблицы должно прерывать извлечение")
	}
}

func TestDecodeBatchRejectsTypeViolation(t *testing.T) {
	t.Parallel()

	// units_sold с дробной частью не приводится к целому без потерь
	data := []byte(`[
		{"sales_order_id": 2, "created_at": "2022-11-03 14:20:52.186",
		 "last_updated": "2022-11-03 14:20:52.186", "design_id": 3, "staff_id": 19,
		 "counterparty_id": 8, "units_sold": 42972.5, "unit_price": 3.94, "currency_id": 2,
		 "agreed_delivery_date": "2022-11-07", "agreed_payment_date": "2022-11-08",
		 "agreed_delivery_location_id": 8}
	]`)

	if _, err := decodeBatch[models.SalesOrderRecord](data, "sales_order", salesOrderColumns); err == nil {
		t.Fatalf("нарушение типа должно приводить к ошибке разбора")
	}
}
