package transform

import (
	"fmt"

	"github.com/LilVoxy/sales_warehouse/ETL/models"
)

// Массивы для названий месяцев и дней недели
var monthNames = []string{"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December"}

// Дни недели в порядке ISO: понедельник=0 .. воскресенье=6
var dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DecomposeCalendar разбирает колонку меток времени на календарные атрибуты.
// Количество и порядок строк сохраняются один к одному с входной колонкой;
// дедупликация здесь не выполняется - это забота вызывающей стороны.
// Пропуск во входной колонке даёт пустую строку (Valid=false).
func DecomposeCalendar(column []models.NullTimestamp) []models.DimDate {
	rows := make([]models.DimDate, len(column))

	for i, ts := range column {
		if !ts.Valid {
			continue
		}

		t := ts.Time
		month := int(t.Month())
		dayOfWeek := (int(t.Weekday()) + 6) % 7 // понедельник=0 .. воскресенье=6

		rows[i] = models.DimDate{
			DateID:    models.CivilDateOf(t),
			Year:      t.Year(),
			Month:     month,
			Day:       t.Day(),
			DayOfWeek: dayOfWeek,
			DayName:   dayNames[dayOfWeek],
			MonthName: monthNames[month-1],
			Quarter:   (month-1)/3 + 1,
			Valid:     true,
		}
	}

	return rows
}

// TimestampColumn выбирает из пакета заказов колонку меток времени по её имени.
// Неизвестное имя колонки - нарушение контракта вызывающей стороны,
// а не проблема качества данных, поэтому возвращается ошибка сразу.
func TimestampColumn(orders []models.SalesOrderRecord, name string) ([]models.NullTimestamp, error) {
	pick, err := columnPicker(name)
	if err != nil {
		return nil, err
	}

	column := make([]models.NullTimestamp, len(orders))
	for i, order := range orders {
		column[i] = pick(order)
	}
	return column, nil
}

// columnPicker возвращает функцию выбора значения для указанной колонки
func columnPicker(name string) (func(models.SalesOrderRecord) models.NullTimestamp, error) {
	switch name {
	case "created_at":
		return func(o models.SalesOrderRecord) models.NullTimestamp {
			return models.NullTimestamp{Time: o.CreatedAt.Time, Valid: !o.CreatedAt.IsZero()}
		}, nil
	case "last_updated":
		return func(o models.SalesOrderRecord) models.NullTimestamp {
			return models.NullTimestamp{Time: o.LastUpdated.Time, Valid: !o.LastUpdated.IsZero()}
		}, nil
	case "agreed_payment_date":
		return func(o models.SalesOrderRecord) models.NullTimestamp {
			return models.NullTimestamp{Time: o.AgreedPaymentDate.Time(), Valid: !o.AgreedPaymentDate.IsZero()}
		}, nil
	case "agreed_delivery_date":
		return func(o models.SalesOrderRecord) models.NullTimestamp {
			return models.NullTimestamp{Time: o.AgreedDeliveryDate.Time(), Valid: !o.AgreedDeliveryDate.IsZero()}
		}, nil
	default:
		return nil, fmt.Errorf("колонка меток времени %q отсутствует в записи заказа", name)
	}
}
