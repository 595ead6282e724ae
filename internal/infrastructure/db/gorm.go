package db

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func OpenGorm(dsn, logLevel string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn), logLevel)
}

// OpenGormWithDialector opens gorm on any dialector, sizes the pool and pings.
// Duplicate-key and foreign-key failures surface as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
func OpenGormWithDialector(dial gorm.Dialector, logLevel ...string) (*gorm.DB, error) {
	level := "warn"
	if len(logLevel) > 0 {
		level = logLevel[0]
	}
	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(ParseLogLevel(level)),
		TranslateError: true,
		// pinged below, after the pool is sized
		DisableAutomaticPing: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	logrus.WithField("dialect", dial.Name()).Info("gorm: connected")
	return db, nil
}

func ParseLogLevel(s string) logger.LogLevel {
	switch strings.ToLower(s) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
