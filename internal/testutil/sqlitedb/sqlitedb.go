// Package sqlitedb opens an in-memory database with the full schema for service tests.
package sqlitedb

import (
	"testing"

	"greentracker-backend/internal/adapter/repository/mysql"
	"greentracker-backend/internal/domain/uow"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Open(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(mysql.Models()...); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

// UoW returns a real transactional unit of work and repositories bound to the root handle.
func UoW(t testing.TB) (uow.UnitOfWork, uow.Repos) {
	db := Open(t)
	return mysql.NewGormUoW(db), mysql.NewRepos(db)
}
