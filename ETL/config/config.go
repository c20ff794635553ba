package config

import (
	"time"
)

// ETLConfig содержит конфигурацию для ETL-процесса хранилища
type ETLConfig struct {
	// Конфигурация для подключения к БД хранилища (целевой)
	WarehouseConfig DatabaseConfig `json:"warehouse_config"`

	// Каталог зоны загрузки с выгрузками исходной системы
	IngestionZoneDir string `json:"ingestion_zone_dir"`

	// Интервал запуска ETL
	RunInterval time.Duration `json:"run_interval"`

	// Адрес HTTP-сервера мониторинга
	APIAddr string `json:"api_addr"`

	// Включение/отключение подробного логирования
	EnableDetailedLogging bool `json:"enable_detailed_logging"`
}

// DatabaseConfig содержит настройки подключения к базе данных
type DatabaseConfig struct {
	Driver   string `json:"driver"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
}

// Значения конфигурации по умолчанию
var (
	DefaultWarehouseConfig = DatabaseConfig{
		Driver:   "mysql",
		Host:     "localhost",
		Port:     3306,
		User:     "root",
		Password: "Vjnbkmlf40782",
		DBName:   "sales_warehouse",
	}

	DefaultETLConfig = ETLConfig{
		WarehouseConfig:       DefaultWarehouseConfig,
		IngestionZoneDir:      "ingestion_zone",
		RunInterval:           1 * time.Hour,
		APIAddr:               ":8080",
		EnableDetailedLogging: true,
	}
)

// GetConfig возвращает конфигурацию ETL
func GetConfig() ETLConfig {
	return DefaultETLConfig
}
