package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"courierdispatch/internal/adapters/out/postgres/dberr"
	"courierdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	assert.False(t, dberr.IsDuplicateKey(nil))
	assert.True(t, dberr.IsDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, dberr.IsDuplicateKey(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)))
	assert.True(t, dberr.IsDuplicateKey(errors.New("UNIQUE constraint failed: payments.transaction_id")))
	assert.True(t, dberr.IsDuplicateKey(errors.New(`ERROR: duplicate key value violates unique constraint "idx_payments_transaction_id"`)))
	assert.False(t, dberr.IsDuplicateKey(errors.New("connection refused")))
}

func TestInsert(t *testing.T) {
	err := dberr.Insert(gorm.ErrDuplicatedKey, "transactionId", "pi_1")

	assert.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	assert.Contains(t, err.Error(), "pi_1")

	other := errors.New("boom")
	assert.Equal(t, other, dberr.Insert(other, "x", "y"))
}

func TestLookup(t *testing.T) {
	assert.ErrorIs(t, dberr.Lookup(gorm.ErrRecordNotFound, "parcelId", "p1"), errs.ErrObjectNotFound)
	assert.NoError(t, dberr.Lookup(nil, "parcelId", "p1"))
}
