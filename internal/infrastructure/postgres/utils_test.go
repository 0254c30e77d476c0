package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert product: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("conexión cerrada")))
	assert.False(t, isUniqueViolation(nil))
}

func TestValidID(t *testing.T) {
	assert.True(t, validID("5b0f8c1e-3f57-4c1c-9d0a-1f3c1a2b4c5d"))
	assert.False(t, validID("loc-1"))
	assert.False(t, validID(""))
}

func TestMigrationURL(t *testing.T) {
	assert.Equal(t, "postgres://u:p@h:5432/db?sslmode=disable", migrationURL("postgresql://u:p@h:5432/db?sslmode=disable"))
	assert.Equal(t, "postgres://u:p@h:5432/db", migrationURL("postgres://u:p@h:5432/db"))
}

func TestNullHelpers(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))
	assert.Equal(t, "x", *nullIfEmpty("x"))
	assert.Equal(t, "", derefString(nil))
}
