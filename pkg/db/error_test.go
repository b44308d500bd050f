package db

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKeyErr(t *testing.T) {
	assert.False(t, IsDuplicateKeyErr(nil))
	assert.False(t, IsDuplicateKeyErr(errors.New("connection refused")))

	assert.True(t, IsDuplicateKeyErr(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicateKeyErr(errors.New(`ERROR: duplicate key value violates unique constraint "un_pricingmodels_name" (SQLSTATE 23505)`)))
	assert.True(t, IsDuplicateKeyErr(errors.New("Error 1062: Duplicate entry 'Standard' for key 'name'")))
	assert.True(t, IsDuplicateKeyErr(errors.New("UNIQUE constraint failed: prices.model_id, prices.name")))
}

func TestIsInvalidIdentifierErr(t *testing.T) {
	assert.False(t, IsInvalidIdentifierErr(nil))
	assert.False(t, IsInvalidIdentifierErr(errors.New("connection refused")))

	assert.True(t, IsInvalidIdentifierErr(errors.New(`ERROR: invalid input syntax for type uuid: "notfound" (SQLSTATE 22P02)`)))
}
