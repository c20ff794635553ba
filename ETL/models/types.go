package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Формат меток времени в выгрузках исходной системы: "2022-11-03 14:20:52.186"
const timestampLayout = "2006-01-02 15:04:05.999999"

// Формат календарных дат без времени суток
const dateLayout = "2006-01-02"

// Timestamp представляет метку времени из исходной выгрузки.
// При разборе JSON принимает формат исходной системы и RFC3339.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON разбирает метку времени строго: значение, которое не является
// меткой времени, считается нарушением типа и приводит к ошибке
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return fmt.Errorf("значение null не приводится к метке времени")
	}

	s = strings.Trim(s, `"`)
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
	}
	if err != nil {
		return fmt.Errorf("значение %q не приводится к метке времени", s)
	}

	ts.Time = t
	return nil
}

// MarshalJSON сериализует метку времени в формате исходной системы
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + ts.Format(timestampLayout) + `"`), nil
}

// NullTimestamp представляет колонку меток времени с допустимыми пропусками.
// Используется декомпозицией календаря: Valid=false означает пропуск в исходных данных.
type NullTimestamp struct {
	Time  time.Time
	Valid bool
}

// CivilDate представляет календарную дату без времени суток.
// Это настоящее значение даты, а не отформатированная строка.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

// CivilDateOf выделяет календарную дату из метки времени
func CivilDateOf(t time.Time) CivilDate {
	year, month, day := t.Date()
	return CivilDate{Year: year, Month: month, Day: day}
}

// Time возвращает момент полуночи этой даты в UTC
func (d CivilDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero сообщает, является ли дата нулевым значением
func (d CivilDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d CivilDate) String() string {
	return d.Time().Format(dateLayout)
}

// UnmarshalJSON разбирает календарную дату вида "2022-11-07"
func (d *CivilDate) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return fmt.Errorf("значение null не приводится к календарной дате")
	}

	s = strings.Trim(s, `"`)
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("значение %q не приводится к календарной дате", s)
	}

	*d = CivilDateOf(t)
	return nil
}

// MarshalJSON сериализует дату в формате "2006-01-02"
func (d CivilDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// ClockTime представляет время суток без даты
type ClockTime struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// ClockTimeOf выделяет время суток из метки времени
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime{
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Nanosecond: t.Nanosecond(),
	}
}

// At совмещает время суток с календарной датой, восстанавливая полную метку времени
func (c ClockTime) At(d CivilDate) time.Time {
	return time.Date(d.Year, d.Month, d.Day, c.Hour, c.Minute, c.Second, c.Nanosecond, time.UTC)
}

func (c ClockTime) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
	if c.Nanosecond != 0 {
		s += fmt.Sprintf(".%03d", c.Nanosecond/1e6)
	}
	return s
}

// MarshalJSON сериализует время суток вида "14:20:52.186"
func (c ClockTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// Text представляет текстовый атрибут измерения. Атрибуты измерений в хранилище
// объявлены текстовыми, поэтому числа и логические значения приводятся к строке,
// а null становится пустой строкой (а не выбрасывается).
type Text string

// UnmarshalJSON приводит скалярное JSON-значение к тексту
func (t *Text) UnmarshalJSON(data []byte) error {
	s := string(data)
	switch {
	case s == "null":
		*t = ""
	case len(s) > 0 && s[0] == '"':
		var str string
		if err := jsonUnquote(s, &str); err != nil {
			return err
		}
		*t = Text(str)
	case len(s) > 0 && (s[0] == '{' || s[0] == '['):
		return fmt.Errorf("значение %s не приводится к строке", s)
	default:
		// числовые и логические литералы используем в их текстовой форме
		*t = Text(s)
	}
	return nil
}

// jsonUnquote разбирает строковый JSON-литерал со всеми допустимыми
// экранированиями (включая "\/", которое Go-синтаксис строк не знает)
func jsonUnquote(s string, out *string) error {
	if err := json.Unmarshal([]byte(s), out); err != nil {
		return fmt.Errorf("значение %s не является корректной строкой", s)
	}
	return nil
}

// WholeInt представляет идентификатор или целочисленную меру.
// Значение, которое не приводится к целому числу без потерь, считается
// нарушением типа и приводит к ошибке, а не к молчаливому округлению.
type WholeInt int64

func (n *WholeInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return fmt.Errorf("значение null не приводится к целому числу")
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// допускаем вещественную запись целого значения (например 42.0)
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != math.Trunc(f) {
			return fmt.Errorf("значение %q не приводится к целому числу", s)
		}
		// за пределами int64 преобразование молча теряет значение
		if f >= 1<<63 || f < -(1<<63) {
			return fmt.Errorf("значение %q выходит за пределы целого числа", s)
		}
		v = int64(f)
	}

	*n = WholeInt(v)
	return nil
}

// Float представляет вещественную меру (цену за единицу)
type Float float64

func (f *Float) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return fmt.Errorf("значение null не приводится к вещественному числу")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("значение %q не приводится к вещественному числу", s)
	}

	*f = Float(v)
	return nil
}
