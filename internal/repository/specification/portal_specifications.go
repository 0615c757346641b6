package specification

import "gorm.io/gorm"

type ByDepartment struct {
	Department string
}

func (s ByDepartment) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("department = ?", s.Department)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByCompleted struct {
	Completed bool
}

func (s ByCompleted) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_completed = ?", s.Completed)
}

type ByRequestOwner struct {
	EmployeeCode string
}

func (s ByRequestOwner) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("employee_code = ?", s.EmployeeCode)
}
