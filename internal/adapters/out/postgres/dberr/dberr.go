// Package dberr maps GORM and driver errors onto the errs family.
package dberr

import (
	"errors"
	"strings"

	"courierdispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// IsDuplicateKey reports a unique-constraint violation. Dialects that do not
// translate errors are recognised by their message text.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23505")
}

// Insert converts a Create error: duplicates become errs.ObjectAlreadyExistsError.
func Insert(err error, param string, id any) error {
	if IsDuplicateKey(err) {
		return errs.NewObjectAlreadyExistsErrorWithCause(param, id, err)
	}
	return err
}

// Lookup converts a First error: a missing row becomes errs.ObjectNotFoundError.
func Lookup(err error, param string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(param, id)
	}
	return err
}

// Affected converts an update result: zero rows matched becomes errs.ObjectNotFoundError.
func Affected(result *gorm.DB, param string, id any) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(param, id)
	}
	return nil
}
