package service

import (
	"errors"
	"fmt"

	"aquamanager/pkg/validator"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrConflict          = errors.New("already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInactiveProduct   = errors.New("product is inactive")
)

// validate runs the struct tags of req and reports the first failure as ErrValidation.
func validate(req interface{}) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, errs[0].String())
	}
	return nil
}

// storeError maps repository errors onto the service sentinels. what names the record for the message.
func storeError(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %s", ErrConflict, what)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %s references a record that does not exist", ErrValidation, what)
	}
	return err
}

// refError reports a missing referenced record as a validation failure of the request.
func refError(err error, what string, id fmt.Stringer) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: unknown %s %s", ErrValidation, what, id)
	}
	return err
}
