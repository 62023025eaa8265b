package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound marks a missing entity; handlers map it to 404.
var ErrNotFound = errors.New("not found")

// ValidationError carries a business-rule or input failure; handlers
// map it to 400.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// asNotFound converts a gorm record-not-found into the service-level
// sentinel so handlers never see the driver error.
func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
