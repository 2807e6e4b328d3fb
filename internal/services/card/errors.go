package card

import "errors"

// Service errors
var (
	// ErrMemberNotFound means the member number matches no member.
	ErrMemberNotFound = errors.New("member not found")
	// ErrNoCards means the member exists but owns no cards.
	ErrNoCards = errors.New("member has no cards")
	// ErrCardNotFound means no card matches the number for that member.
	ErrCardNotFound = errors.New("card not found")
	// ErrCardExists means the card number is already taken system-wide.
	ErrCardExists = errors.New("card already exists")
	// ErrGatewayFault wraps a fault raised by the payment processor call.
	ErrGatewayFault = errors.New("payment gateway fault")
)
