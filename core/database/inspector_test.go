package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_sessions (id INTEGER PRIMARY KEY, session_id TEXT, payload TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_sessions")
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}
	assert.Equal(t, "integer", colMap["id"])
	assert.Equal(t, "text", colMap["session_id"])
	assert.Equal(t, "text", colMap["payload"])

	// PRAGMA table_info returns no rows for a missing table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE partial (id INTEGER, Session_ID TEXT)").Error)

	missing, err := MissingColumns(db, "partial", []string{"id", "session_id", "payload"})
	require.NoError(t, err)
	assert.Equal(t, []string{"payload"}, missing)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("ID", "BIGINT UNSIGNED", "NO", "PRI", nil, "auto_increment").
		AddRow("Payload", "LONGTEXT", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `stock_sessions`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "stock_sessions")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "bigint unsigned", columns[0].Type)
	assert.Equal(t, "payload", columns[1].Field)

	mock.ExpectQuery("SHOW COLUMNS FROM `broken`").WillReturnError(errors.New("access denied"))
	_, err = GetTableColumns(db, "broken")
	assert.ErrorContains(t, err, "failed to get columns for table broken")
}
