// database/db.go
package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/go-sql-driver/mysql"
)

var DB *sql.DB

// InitDB сохраняет ссылку на соединение с хранилищем для обработчиков API
func InitDB(db *sql.DB) {
	DB = db
	if DB == nil {
		log.Println("⚠️ Предупреждение: переменная DB еще не инициализирована")
	}
}

// CreateWarehouseTablesIfNotExist создает таблицы звездообразной схемы, если они не существуют
func CreateWarehouseTablesIfNotExist(db *sql.DB) error {
	// Таблицы измерений создаются первыми, таблица фактов ссылается на их ключи
	createDimLocation := `
	CREATE TABLE IF NOT EXISTS sales_warehouse.dim_location (
		location_id INT PRIMARY KEY,
		address_line_1 VARCHAR(255) NOT NULL,
		address_line_2 VARCHAR(255),
		district VARCHAR(255),
		city VARCHAR(255) NOT NULL,
		postal_code VARCHAR(64) NOT NULL,
		country VARCHAR(128) NOT NULL,
		phone VARCHAR(64) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`

	createDimCurrency := `
	CREATE TABLE IF NOT EXISTS sales_warehouse.dim_currency (
		currency_id INT PRIMARY KEY,
		currency_code CHAR(3) NOT NULL,
		currency_name VARCHAR(64) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`

	createDimDesign := `
	CREATE TABLE IF NOT EXISTS sales_warehouse.dim_design (
		design_id INT PRIMARY KEY,
		design_name VARCHAR(255) NOT NULL,
		file_location VARCHAR(255) NOT NULL,
		file_name VARCHAR(255) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`

	createDimCounterparty := `
	CREATE TABLE IF NOT EXISTS sales_warehouse.dim_counterparty (
		counterparty_id INT PRIMARY KEY,
		counterparty_legal_name VARCHAR(255) NOT NULL,
		counterparty_legal_address_line_1 VARCHAR(255),
		counterparty_legal_address_line_2 VARCHAR(255),
		counterparty_legal_district VARCHAR(255),
		counterparty_legal_city VARCHAR(255),
		counterparty_legal_postal_code VARCHAR(64),
		counterparty_legal_country VARCHAR(128),
		counterparty_legal_phone_number VARCHAR(64)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`

	createDimStaff := `
	CREATE TABLE IF NOT EXISTS sales_warehouse.dim_staff (
		staff_id INT PRIMARY KEY,
		first_name VARCHAR(128) NOT NULL,
		last_name VARCHAR(128) NOT NULL,
		department_name VARCHAR(128),
		location VARCHAR(128),
		email_address VARCHAR(255) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`

	createDimDate := `
	CREATE TABLE IF NOT EXISTS sales_warehouse.dim_date (
		date_id DATE PRIMARY KEY,
		year INT NOT NULL,
		month INT NOT NULL,
		day INT NOT NULL,
		day_of_week INT NOT NULL,
		day_name VARCHAR(16) NOT NULL,
		month_name VARCHAR(16) NOT NULL,
		quarter INT NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`

	createFactSalesOrder := `
	CREATE TABLE IF NOT EXISTS sales_warehouse.fact_sales_order (
		sales_record_id INT PRIMARY KEY,
		sales_order_id INT NOT NULL,
		created_date DATE NOT NULL,
		created_time TIME(3) NOT NULL,
		last_updated_date DATE NOT NULL,
		last_updated_time TIME(3) NOT NULL,
		sales_staff_id INT NOT NULL,
		counterparty_id INT NOT NULL,
		units_sold INT NOT NULL,
		unit_price DECIMAL(12, 2) NOT NULL,
		currency_id INT NOT NULL,
		design_id INT NOT NULL,
		agreed_payment_date DATE NOT NULL,
		agreed_delivery_date DATE NOT NULL,
		agreed_delivery_location_id INT NOT NULL,
		INDEX idx_sales_order_id (sales_order_id),
		INDEX idx_created_date (created_date),
		INDEX idx_counterparty (counterparty_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`

	tables := []struct {
		name  string
		query string
	}{
		{"dim_location", createDimLocation},
		{"dim_currency", createDimCurrency},
		{"dim_design", createDimDesign},
		{"dim_counterparty", createDimCounterparty},
		{"dim_staff", createDimStaff},
		{"dim_date", createDimDate},
		{"fact_sales_order", createFactSalesOrder},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.query); err != nil {
			return fmt.Errorf("ошибка создания таблицы %s: %v", table.name, err)
		}
	}

	log.Println("✅ Структура хранилища проверена и актуализирована")
	return nil
}
