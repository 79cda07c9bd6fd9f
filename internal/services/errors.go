package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrRestaurantNotFound is returned when no restaurant has the requested ID
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrPizzaOrRestaurantNotFound is returned when a restaurant pizza references a missing row
	ErrPizzaOrRestaurantNotFound = errors.New("pizza or restaurant not found")
	// ErrInvalidPrice is returned when a price falls outside the accepted range
	ErrInvalidPrice = errors.New("price must be between 1 and 30")
)

// pgForeignKeyViolation is the SQLSTATE for foreign_key_violation
const pgForeignKeyViolation = "23503"

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
