package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrValidation is wrapped by all errors caused by malformed or out of range data.
	ErrValidation = errors.New("invalid data")

	// ErrTransaction is returned when a multi-record write could not be
	// committed. None of its changes have been persisted.
	ErrTransaction = errors.New("the changes could not be saved, no data has been modified")
)

var (
	ErrAmountNegative        = fmt.Errorf("%w: the amount must not be negative", ErrValidation)
	ErrDateRange             = fmt.Errorf("%w: the start date must not be after the end date", ErrValidation)
	ErrEmailInUse            = fmt.Errorf("%w: this email address is already registered", ErrValidation)
	ErrReportImmutable       = fmt.Errorf("%w: stored reports cannot be modified or deleted", ErrValidation)
	ErrCardNameLength        = fmt.Errorf("%w: the card name must be between 1 and %d characters long", ErrValidation, MaxCardNameLength)
	ErrCardLastFourDigits    = fmt.Errorf("%w: the last four digits must be exactly 4 numeric characters", ErrValidation)
	ErrCardDay               = fmt.Errorf("%w: closing and due day must be between 1 and 31", ErrValidation)
	ErrCreditLimitNegative   = fmt.Errorf("%w: the credit limit must not be negative", ErrValidation)
	ErrExpenseCardRequired   = fmt.Errorf("%w: a card must be specified for expenses of type Card", ErrValidation)
	ErrExpenseCardForbidden  = fmt.Errorf("%w: only expenses of type Card can reference a card", ErrValidation)
	ErrInstallmentsTotal     = fmt.Errorf("%w: the total number of installments must be between 1 and %d", ErrValidation, MaxInstallments)
	ErrInstallmentsCurrent   = fmt.Errorf("%w: the current installment must be between 1 and the total number of installments", ErrValidation)
	ErrInstallmentsNotOnCard = fmt.Errorf("%w: only expenses of type Card can be paid in installments", ErrValidation)
	ErrIncomeSourceEmpty     = fmt.Errorf("%w: the income source must not be empty", ErrValidation)
)

// invalid wraps an error returned by a validation of an enumeration.
func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
