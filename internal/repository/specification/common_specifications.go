package specification

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ById struct {
	Id uuid.UUID
}

func (s ById) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.Id)
}

type OrderBy struct {
	Column string
	Desc   bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Column, direction))
}

type Limit struct {
	N int
}

func (s Limit) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.N)
}

// FieldsContain matches rows where any of the given columns contains the
// query, case-insensitive. Used by the portal search endpoints.
type FieldsContain struct {
	Query   string
	Columns []string
}

func (s FieldsContain) Apply(db *gorm.DB) *gorm.DB {
	if s.Query == "" || len(s.Columns) == 0 {
		return db
	}
	pattern := "%" + s.Query + "%"
	clauses := make([]string, len(s.Columns))
	args := make([]interface{}, len(s.Columns))
	for i, col := range s.Columns {
		clauses[i] = fmt.Sprintf("%s ILIKE ?", col)
		args[i] = pattern
	}
	return db.Where(strings.Join(clauses, " OR "), args...)
}
