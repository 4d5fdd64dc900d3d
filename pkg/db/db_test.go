package db

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	gdb, err := Open(path)
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())

	var fk int
	err = gdb.Raw("PRAGMA foreign_keys").Scan(&fk).Error
	require.NoError(t, err)
	assert.Equal(t, 1, fk)
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestIsDuplicateKeyErr(t *testing.T) {
	assert.False(t, IsDuplicateKeyErr(nil))
	assert.False(t, IsDuplicateKeyErr(errors.New("no such table: companies")))
	assert.True(t, IsDuplicateKeyErr(errors.New("UNIQUE constraint failed: companies.fiscal_code")))
}
