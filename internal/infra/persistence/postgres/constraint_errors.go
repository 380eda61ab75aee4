package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// violation is the class of integrity constraint a failed write tripped.
type violation int

const (
	noViolation violation = iota
	uniqueViolation
	foreignKeyViolation
	checkViolation
)

// SQLSTATE codes for drivers whose errors gorm did not translate.
var violationStates = map[string]violation{
	"23505": uniqueViolation,
	"23503": foreignKeyViolation,
	"23514": checkViolation,
}

// classifyViolation requires TranslateError on the gorm config for the
// sentinel path; the SQLSTATE scan covers raw pgx errors.
func classifyViolation(err error) violation {
	switch {
	case err == nil:
		return noViolation
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return uniqueViolation
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return foreignKeyViolation
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return checkViolation
	}

	msg := err.Error()
	for state, kind := range violationStates {
		if strings.Contains(msg, state) {
			return kind
		}
	}

	return noViolation
}
