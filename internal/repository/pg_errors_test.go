package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	seatErr := &pgconn.PgError{Code: "23505", ConstraintName: seatUniqueConstraint}

	t.Run("Success - matching constraint", func(t *testing.T) {
		assert.True(t, isUniqueViolation(seatErr, seatUniqueConstraint))
	})

	t.Run("Success - wrapped error still matches", func(t *testing.T) {
		wrapped := fmt.Errorf("insert tickets: %w", seatErr)
		assert.True(t, isUniqueViolation(wrapped, seatUniqueConstraint))
	})

	t.Run("Success - empty constraint matches any unique violation", func(t *testing.T) {
		assert.True(t, isUniqueViolation(seatErr, ""))
	})

	t.Run("Failed - different constraint", func(t *testing.T) {
		assert.False(t, isUniqueViolation(seatErr, idempotencyKeyConstraint))
	})

	t.Run("Failed - different error code", func(t *testing.T) {
		fkErr := &pgconn.PgError{Code: "23503", ConstraintName: seatUniqueConstraint}
		assert.False(t, isUniqueViolation(fkErr, seatUniqueConstraint))
	})

	t.Run("Failed - not a pg error", func(t *testing.T) {
		assert.False(t, isUniqueViolation(errors.New("connection refused"), seatUniqueConstraint))
	})
}
