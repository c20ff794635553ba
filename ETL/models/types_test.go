package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampUnmarshal(t *testing.T) {
	t.Parallel()

	var ts Timestamp
	if err := json.Unmarshal([]byte(`"2022-11-03 14:20:52.186"`), &ts); err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	want := time.Date(2022, time.November, 3, 14, 20, 52, 186000000, time.UTC)
	if !ts.Time.Equal(want) {
		t.Errorf("разобрано %v, ожидалось %v", ts.Time, want)
	}
}

func TestTimestampUnmarshalRejectsGarbage(t *testing.T) {
	t.Parallel()

	cases := []string{`null`, `"not a date"`, `42`, `"2022-13-45 99:00:00"`}
	for _, raw := range cases {
		var ts Timestamp
		if err := json.Unmarshal([]byte(raw), &ts); err == nil {
			t.Errorf("значение %s должно приводить к ошибке", raw)
		}
	}
}

func TestCivilDateRoundTrip(t *testing.T) {
	t.Parallel()

	var d CivilDate
	if err := json.Unmarshal([]byte(`"2022-11-07"`), &d); err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	want := CivilDate{Year: 2022, Month: time.November, Day: 7}
	if d != want {
		t.Errorf("разобрано %v, ожидалось %v", d, want)
	}
	if d.String() != "2022-11-07" {
		t.Errorf("String() = %q, ожидалось %q", d.String(), "2022-11-07")
	}
}

func TestClockTimeRecombines(t *testing.T) {
	t.Parallel()

	moment := time.Date(2022, time.November, 3, 14, 20, 52, 186000000, time.UTC)
	date := CivilDateOf(moment)
	clock := ClockTimeOf(moment)

	if restored := clock.At(date); !restored.Equal(moment) {
		t.Errorf("восстановлено %v, ожидалось %v", restored, moment)
	}
	if clock.String() != "14:20:52.186" {
		t.Errorf("String() = %q, ожидалось %q", clock.String(), "14:20:52.186")
	}

	whole := ClockTimeOf(time.Date(2022, time.November, 3, 9, 5, 0, 0, time.UTC))
	if whole.String() != "09:05:00" {
		t.Errorf("String() = %q, ожидалось %q", whole.String(), "09:05:00")
	}
}

func TestTextCoercion(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want Text
	}{
		{`"Avon"`, "Avon"},
		{`null`, ""},
		{`28441`, "28441"},
		{`3.94`, "3.94"},
		{`true`, "true"},
		// допустимые JSON-экранирования, включая "\/" из сторонних сериализаторов
		{`"a\/b"`, "a/b"},
		{"\"\\u0441\\u0443\\u043c\\u043a\\u0430\"", "сумка"},
	}

	for _, tc := range cases {
		var got Text
		if err := json.Unmarshal([]byte(tc.raw), &got); err != nil {
			t.Errorf("значение %s: неожиданная ошибка %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("значение %s: получено %q, ожидалось %q", tc.raw, got, tc.want)
		}
	}

	var got Text
	if err := json.Unmarshal([]byte(`{"nested": 1}`), &got); err == nil {
		t.Errorf("объект не должен приводиться к строке")
	}
}

func TestWholeIntCoercion(t *testing.T) {
	t.Parallel()

	var n WholeInt
	if err := json.Unmarshal([]byte(`42972`), &n); err != nil || n != 42972 {
		t.Errorf("целое значение: получено %d, err=%v", n, err)
	}

	// Вещественная запись целого допустима
	if err := json.Unmarshal([]byte(`42.0`), &n); err != nil || n != 42 {
		t.Errorf("значение 42.0: получено %d, err=%v", n, err)
	}

	for _, raw := range []string{`42.5`, `null`, `"abc"`, `true`, `1e20`, `-1e20`} {
		var bad WholeInt
		if err := json.Unmarshal([]byte(raw), &bad); err == nil {
			t.Errorf("значение %s должно приводить к ошибке", raw)
		}
	}
}

func TestFloatCoercion(t *testing.T) {
	t.Parallel()

	var f Float
	if err := json.Unmarshal([]byte(`3.94`), &f); err != nil || f != 3.94 {
		t.Errorf("значение 3.94: получено %v, err=%v", f, err)
	}

	for _, raw := range []string{`null`, `"abc"`} {
		var bad Float
		if err := json.Unmarshal([]byte(raw), &bad); err == nil {
			t.Errorf("значение %s должно приводить к ошибке", raw)
		}
	}
}

func TestSalesOrderRecordUnmarshal(t *testing.T) {
	t.Parallel()

	raw := `{
		"sales_order_id": 2,
		"created_at": "2022-11-03 14:20:52.186",
		"last_updated": "2022-11-03 14:20:52.186",
		"design_id": 3,
		"staff_id": 19,
		"counterparty_id": 8,
		"units_sold": 42972,
		"unit_price": 3.94,
		"currency_id": 2,
		"agreed_delivery_date": "2022-11-07",
		"agreed_payment_date": "2022-11-08",
		"agreed_delivery_location_id": 8
	}`

	var order SalesOrderRecord
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if order.SalesOrderID != 2 || order.StaffID != 19 || order.UnitsSold != 42972 {
		t.Errorf("целочисленные поля разобраны неверно: %+v", order)
	}
	if order.UnitPrice != 3.94 {
		t.Errorf("UnitPrice = %v, ожидалось 3.94", order.UnitPrice)
	}
	if want := (CivilDate{Year: 2022, Month: time.November, Day: 7}); order.AgreedDeliveryDate != want {
		t.Errorf("AgreedDeliveryDate = %v, ожидалось %v", order.AgreedDeliveryDate, want)
	}
}
