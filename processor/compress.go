package processor

import (
	"github.com/golang/snappy"
)

// CompressBatch сжимает сериализованный пакет записей зоны загрузки
func CompressBatch(data []byte) []byte {
	return snappy.Encode(nil, data)
}

// DecompressBatch распаковывает сжатый пакет записей зоны загрузки
func DecompressBatch(data []byte) ([]byte, error) {
	decompressed, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, err
	}
	return decompressed, nil
}
