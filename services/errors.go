package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicate          = errors.New("duplicate record")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveAccount    = errors.New("account not activated")
	ErrNoFields           = errors.New("no valid fields to update")
)

// InvalidTemplateError reports diet-plan/template meals that reference
// food templates which do not exist. The handler echoes IDs back to the
// client so the dashboard can highlight the bad rows.
type InvalidTemplateError struct {
	IDs []uint
}

func (e *InvalidTemplateError) Error() string {
	return fmt.Sprintf("invalid template ids: %v", e.IDs)
}
