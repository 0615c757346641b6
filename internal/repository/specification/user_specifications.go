package specification

import "gorm.io/gorm"

type ByEmployeeCode struct {
	EmployeeCode string
}

func (s ByEmployeeCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("employee_code = ?", s.EmployeeCode)
}
