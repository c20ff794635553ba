package transform

import (
	"github.com/LilVoxy/sales_warehouse/ETL/models"
	"github.com/LilVoxy/sales_warehouse/ETL/utils"
)

// StaffDimensionProcessor отвечает за построение измерения сотрудников
type StaffDimensionProcessor struct {
	logger *utils.ETLLogger
}

// NewStaffDimensionProcessor создает новый экземпляр StaffDimensionProcessor
func NewStaffDimensionProcessor(logger *utils.ETLLogger) *StaffDimensionProcessor {
	return &StaffDimensionProcessor{
		logger: logger,
	}
}

// ProcessStaffDimension строит измерение dim_staff, присоединяя к каждому
// сотруднику название и расположение его отдела по department_id (левое
// соединение). Сотрудник без совпадения по отделу сохраняется с пустыми
// (NULL) атрибутами отдела. Вторым значением возвращается число сотрудников
// без совпадения по отделу.
func (p *StaffDimensionProcessor) ProcessStaffDimension(
	departments []models.DepartmentRecord,
	staff []models.StaffRecord,
) ([]models.DimStaff, int) {
	p.logger.Debug("Обработка измерения сотрудников...")

	// Создаем карту отделов для быстрого доступа по ключу
	departmentMap := make(map[int64]models.DepartmentRecord, len(departments))
	for _, department := range departments {
		departmentMap[int64(department.DepartmentID)] = department
	}

	result := make([]models.DimStaff, 0, len(staff))
	missing := 0

	for _, member := range staff {
		row := models.DimStaff{
			StaffID:      int64(member.StaffID),
			FirstName:    string(member.FirstName),
			LastName:     string(member.LastName),
			EmailAddress: string(member.EmailAddress),
		}

		department, found := departmentMap[int64(member.DepartmentID)]
		if found {
			row.DepartmentName = nullText(department.DepartmentName)
			row.Location = nullText(department.Location)
		} else {
			missing++
		}

		result = append(result, row)
	}

	if missing > 0 {
		p.logger.Debug("Сотрудников без совпадения по отделу: %d", missing)
	}

	p.logger.Info("Обработано измерение сотрудников. Трансформировано записей: %d", len(result))
	return result, missing
}
