package models

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// MinPasswordLength is the minimum number of characters of a password.
const MinPasswordLength = 8

var (
	ErrUserNameEmpty    = fmt.Errorf("%w: the name must not be empty", ErrValidation)
	ErrUserEmailInvalid = fmt.Errorf("%w: the email address is not valid", ErrValidation)
	ErrUserPassword     = fmt.Errorf("%w: the password must be at least %d characters long", ErrValidation, MinPasswordLength)
)

// User owns cards, expenses, incomes and reports.
type User struct {
	DefaultModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
}

// BeforeSave trims whitespace from all strings and lowercases the email address.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return nil
}

func (u User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrUserNameEmpty
	}

	email := strings.TrimSpace(u.Email)
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 || strings.ContainsAny(email, " \t\n") {
		return ErrUserEmailInvalid
	}

	return nil
}
