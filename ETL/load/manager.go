package load

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/LilVoxy/sales_warehouse/ETL/models"
	"github.com/LilVoxy/sales_warehouse/ETL/utils"
)

// LoadManager отвечает за управление процессом загрузки данных в хранилище
type LoadManager struct {
	db     *sql.DB
	logger *utils.ETLLogger
	loader Loader
}

// NewLoadManager создает новый экземпляр LoadManager
func NewLoadManager(db *sql.DB, logger *utils.ETLLogger) *LoadManager {
	return &LoadManager{
		db:     db,
		logger: logger,
		loader: NewOLAPLoader(db, logger),
	}
}

// Load выполняет фазу загрузки данных ETL-процесса.
// Измерения загружаются раньше фактов, чтобы внешние ключи фактов
// всегда ссылались на существующие строки измерений.
func (m *LoadManager) Load(transformedData *models.TransformedData) error {
	startTime := time.Now()
	m.logger.Info("Начало фазы Load (Загрузка данных)")

	// 1. Измерение адресов доставки
	if len(transformedData.Locations) > 0 {
		m.logger.Info("Загрузка измерения адресов доставки...")
		if err := m.loader.LoadLocationDimension(transformedData.Locations); err != nil {
			m.logger.Error("Ошибка при загрузке измерения адресов доставки: %v", err)
			return fmt.Errorf("ошибка при загрузке измерения адресов доставки: %w", err)
		}
	}

	// 2. Измерение валют
	if len(transformedData.Currencies) > 0 {
		m.logger.Info("Загрузка измерения валют...")
		if err := m.loader.LoadCurrencyDimension(transformedData.Currencies); err != nil {
			m.logger.Error("Ошибка при загрузке измерения валют: %v", err)
			return fmt.Errorf("ошибка при загрузке измерения валют: %w", err)
		}
	}

	// 3. Измерение дизайнов
	if len(transformedData.Designs) > 0 {
		m.logger.Info("Загрузка измерения дизайнов...")
		if err := m.loader.LoadDesignDimension(transformedData.Designs); err != nil {
			m.logger.Error("Ошибка при загрузке измерения дизайнов: %v", err)
			return fmt.Errorf("ошибка при загрузке измерения дизайнов: %w", err)
		}
	}

	// 4. Измерение контрагентов
	if len(transformedData.Counterparties) > 0 {
		m.logger.Info("Загрузка измерения контрагентов...")
		if err := m.loader.LoadCounterpartyDimension(transformedData.Counterparties); err != nil {
			m.logger.Error("Ошибка при загрузке измерения контрагентов: %v", err)
			return fmt.Errorf("ошибка при загрузке измерения контрагентов: %w", err)
		}
	}

	// 5. Измерение сотрудников
	if len(transformedData.Staff) > 0 {
		m.logger.Info("Загрузка измерения сотрудников...")
		if err := m.loader.LoadStaffDimension(transformedData.Staff); err != nil {
			m.logger.Error("Ошибка при загрузке измерения сотрудников: %v", err)
			return fmt.Errorf("ошибка при загрузке измерения сотрудников: %w", err)
		}
	}

	// 6. Измерение дат
	if len(transformedData.Dates) > 0 {
		m.logger.Info("Загрузка измерения дат...")
		if err := m.loader.LoadDateDimension(transformedData.Dates); err != nil {
			m.logger.Error("Ошибка при загрузке измерения дат: %v", err)
			return fmt.Errorf("ошибка при загрузке измерения дат: %w", err)
		}
	}

	// 7. Факты заказов
	if len(transformedData.SalesOrders) > 0 {
		m.logger.Info("Загрузка фактов заказов...")
		if err := m.loader.LoadSalesOrderFacts(transformedData.SalesOrders); err != nil {
			m.logger.Error("Ошибка при загрузке фактов заказов: %v", err)
			return fmt.Errorf("ошибка при загрузке фактов заказов: %w", err)
		}
	}

	m.logger.Info("Фаза Load завершена. Длительность: %v", time.Since(startTime))
	return nil
}
