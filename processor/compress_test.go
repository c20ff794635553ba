package processor

import (
	"bytes"
	"testing"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	t.Parallel()

	original := []byte(`[{"sales_order_id": 2, "units_sold": 42972}]`)
	compressed := CompressBatch(original)

	restored, err := DecompressBatch(compressed)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if !bytes.Equal(restored, original) {
		t.Errorf("после распаковки получено %q, ожидалось %q", restored, original)
	}
}

func TestDecompressRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := DecompressBatch([]byte("\xff\xff\xff\xff")); err == nil {
		t.Fatalf("мусор на входе должен приводить к ошибке")
	}
}
