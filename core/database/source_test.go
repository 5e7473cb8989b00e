package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB wires a sqlmock connection through the GORM MySQL dialector.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

// TestFetchRows_Stringification tests that mixed column types come back as
// strings and NULLs as empty strings.
func TestFetchRows_Stringification(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"invoice_no", "amount", "booked_on"}).
		AddRow("INV-1", 100.5, "2025-12-01").
		AddRow("INV-2", nil, nil)

	mock.ExpectQuery("SELECT \\* FROM `invoices`").WillReturnRows(rows)

	headers, out, err := FetchRows(context.Background(), db, "invoices")
	require.NoError(t, err)

	assert.Equal(t, []string{"invoice_no", "amount", "booked_on"}, headers)
	require.Len(t, out, 2)
	assert.Equal(t, "INV-1", out[0]["invoice_no"])
	assert.Equal(t, "100.5", out[0]["amount"])
	assert.Equal(t, "", out[1]["amount"])
	assert.Equal(t, "", out[1]["booked_on"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestFetchRows_QueryError tests that query failures surface with context.
func TestFetchRows_QueryError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `missing`").WillReturnError(assert.AnError)

	_, _, err := FetchRows(context.Background(), db, "missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

// TestConnect_InvalidConnection tests that Connect fails gracefully.
func TestConnect_InvalidConnection(t *testing.T) {
	cfg := Config{
		Host:           "localhost",
		Port:           9999, // Unused port
		User:           "root",
		Password:       "wrongpassword",
		Name:           "recon",
		TimeoutSeconds: 1,
	}

	db, err := Connect(cfg)
	assert.Error(t, err)
	assert.Nil(t, db)
}
