package gorm

import (
	"errors"

	stdgorm "gorm.io/gorm"
)

func IsNotFound(err error) bool {
	return err != nil && errors.Is(err, stdgorm.ErrRecordNotFound)
}

func IsFoundButHasErrors(err error) bool {
	return err != nil && !errors.Is(err, stdgorm.ErrRecordNotFound)
}

func HasDbIssues(err error) bool {
	return err != nil
}

// IsDuplicatedKey reports a uniqueness violation. Relies on the driver's
// error translation being enabled on the connection.
func IsDuplicatedKey(err error) bool {
	return err != nil && errors.Is(err, stdgorm.ErrDuplicatedKey)
}
