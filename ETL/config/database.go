package config

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// ConnectWarehouse устанавливает подключение к базе данных хранилища
func ConnectWarehouse(config ETLConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		config.WarehouseConfig.User,
		config.WarehouseConfig.Password,
		config.WarehouseConfig.Host,
		config.WarehouseConfig.Port,
		config.WarehouseConfig.DBName,
	)

	db, err := sql.Open(config.WarehouseConfig.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к базе данных хранилища: %w", err)
	}

	// Настройка параметров пула соединений
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Проверка подключения
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось установить соединение с базой данных хранилища: %w", err)
	}

	log.Println("Успешное подключение к базе данных хранилища")
	return db, nil
}

// CloseWarehouse закрывает подключение к базе данных хранилища
func CloseWarehouse(db *sql.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		log.Printf("Ошибка при закрытии соединения с базой данных хранилища: %v", err)
		return
	}
	log.Println("Соединение с базой данных хранилища закрыто")
}
