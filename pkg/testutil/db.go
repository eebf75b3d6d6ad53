// Package testutil ฐานข้อมูล sqlite ในหน่วยความจำ และ fixture ของ taxonomy สำหรับ test
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ads-api/infrastructure/postgres"
)

// NewDB sqlite ":memory:" ที่ migrate แล้ว; ปิดเองตอน test จบ
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: ":memory:",
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
