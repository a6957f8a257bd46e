package apperrors

import "errors"

var (
	ErrShowtimeNotFound = errors.New("showtime not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrPaymentNotFound  = errors.New("payment not found")

	ErrEmptySeats             = errors.New("seat selection is empty")
	ErrShowtimeAlreadyStarted = errors.New("only upcoming showtimes can be booked")
	ErrInvalidInput           = errors.New("invalid input")

	ErrCapacityExceeded = errors.New("hall capacity exceeded")
	ErrSeatTaken        = errors.New("seat already reserved or paid")
	// ErrDuplicateIdempotencyKey 只在 repository 層出現，ledger 會把它轉成冪等回放
	ErrDuplicateIdempotencyKey = errors.New("idempotency key already used")

	ErrInternalServerError = errors.New("internal server error")
)
