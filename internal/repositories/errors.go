package repositories

import "errors"

// Repository errors
var (
	ErrMemberNotFound      = errors.New("member not found")
	ErrCardNotFound        = errors.New("card not found")
	ErrDuplicateCard       = errors.New("card number already exists")
	ErrTransactionNotFound = errors.New("transaction not found")
)
