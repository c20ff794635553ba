package extractors

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LilVoxy/sales_warehouse/processor"
)

// ErrMissingColumn сигнализирует об отсутствии обязательной колонки в пакете.
// Это нарушение контракта поставщика данных, а не проблема качества данных:
// извлечение прерывается немедленно.
var ErrMissingColumn = errors.New("отсутствует обязательная колонка")

// readBatchFile читает сериализованный пакет таблицы из зоны загрузки.
// Сначала ищется несжатый файл <table>.json, затем сжатый <table>.json.sz.
func readBatchFile(zoneDir, table string) ([]byte, error) {
	plainPath := filepath.Join(zoneDir, table+".json")
	data, err := os.ReadFile(plainPath)
	if err == nil {
		return data, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка при чтении файла %s: %w", plainPath, err)
	}

	compressedPath := filepath.Join(zoneDir, table+".json.sz")
	compressed, err := os.ReadFile(compressedPath)
	if err != nil {
		return nil, fmt.Errorf("пакет таблицы %s не найден в зоне загрузки %s: %w", table, zoneDir, err)
	}

	data, err = processor.DecompressBatch(compressed)
	if err != nil {
		return nil, fmt.Errorf("ошибка при распаковке файла %s: %w", compressedPath, err)
	}
	return data, nil
}

// decodeBatch разбирает пакет записей и проверяет наличие обязательных колонок
// в каждой записи. Значение, не приводимое к своему целевому типу, даёт ошибку
// разбора - молчаливого обнуления или усечения не происходит.
func decodeBatch[T any](data []byte, table string, required []string) ([]T, error) {
	var rawRows []json.RawMessage
	if err := json.Unmarshal(data, &rawRows); err != nil {
		return nil, fmt.Errorf("таблица %s: пакет не является массивом записей: %w", table, err)
	}

	rows := make([]T, 0, len(rawRows))
	for i, raw := range rawRows {
		// Проверяем наличие обязательных колонок до типизированного разбора
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("таблица %s, запись %d: некорректная запись: %w", table, i, err)
		}
		for _, column := range required {
			if _, ok := fields[column]; !ok {
				return nil, fmt.Errorf("таблица %s, запись %d: %w: %q", table, i, ErrMissingColumn, column)
			}
		}

		var row T
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, fmt.Errorf("таблица %s, запись %d: %w", table, i, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// extractTable читает и разбирает пакет одной таблицы зоны загрузки
func extractTable[T any](zoneDir, table string, required []string) ([]T, error) {
	data, err := readBatchFile(zoneDir, table)
	if err != nil {
		return nil, err
	}
	return decodeBatch[T](data, table, required)
}
