package db

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func mockedMySQL(t *testing.T) (sqlmock.Sqlmock, gorm.Dialector) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return mock, mysql.New(mysql.Config{Conn: conn, SkipInitializeWithVersion: true})
}

func TestOpenGormWithDialector_Ping(t *testing.T) {
	tests := []struct {
		name    string
		pingErr error
		wantErr bool
	}{
		{name: "reachable"},
		{name: "unreachable", pingErr: errors.New("connection refused"), wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mock, dial := mockedMySQL(t)
			mock.ExpectPing().WillReturnError(tc.pingErr)

			gdb, err := OpenGormWithDialector(dial, "silent")
			if tc.wantErr {
				require.Error(t, err)
				require.Nil(t, gdb)
			} else {
				require.NoError(t, err)
				require.True(t, gdb.Config.TranslateError)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOpenGormWithDialector_SizesPool(t *testing.T) {
	gdb, err := OpenGormWithDialector(sqlite.Open("file::memory:"))
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.Equal(t, 30, sqlDB.Stats().MaxOpenConnections)
	require.Equal(t, "sqlite", gdb.Dialector.Name())
}

func TestParseLogLevel(t *testing.T) {
	for in, want := range map[string]logger.LogLevel{
		"Silent":  logger.Silent,
		"error":   logger.Error,
		"INFO":    logger.Info,
		"warn":    logger.Warn,
		"verbose": logger.Warn,
		"":        logger.Warn,
	} {
		require.Equal(t, want, ParseLogLevel(in), "level %q", in)
	}
}
