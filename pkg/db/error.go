package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// PostgreSQL (error code 23505)
	if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
		return true
	}

	// MySQL (error code 1062)
	if strings.Contains(err.Error(), "Error 1062") {
		return true
	}

	// SQLite (error code 2067)
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return true
	}

	return false
}

// IsInvalidIdentifierErr reports whether the store rejected a malformed
// identifier at comparison time (PostgreSQL error code 22P02). Malformed ids
// are a frequent client mistake; callers treat this as a plain miss.
func IsInvalidIdentifierErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "invalid input syntax for type uuid")
}
