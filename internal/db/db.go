package db

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DefaultPath 是未配置数据库路径时使用的文件名。
const DefaultPath = "platelog.db"

// Open 打开本地 SQLite 数据库并执行版本化迁移。
// databasePath 为空时将回退到 DefaultPath。
func Open(databasePath string) (*gorm.DB, error) {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = DefaultPath
	}

	if err := ensureParentDir(path); err != nil {
		return nil, fmt.Errorf("prepare database directory: %w", err)
	}

	gdb, err := openSQLite(path)
	if err != nil {
		return nil, err
	}

	if err := Migrate(gdb); err != nil {
		_ = Close(gdb)
		return nil, err
	}

	return gdb, nil
}

// InspectVersion 只读取已有数据库的迁移版本，不执行迁移。文件不存在时返回 0。
func InspectVersion(databasePath string) (int, error) {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = DefaultPath
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	gdb, err := openSQLite(path)
	if err != nil {
		return 0, err
	}
	defer Close(gdb)

	if !gdb.Migrator().HasTable(&SchemaVersion{}) {
		return 0, nil
	}
	return CurrentVersion(gdb)
}

func openSQLite(path string) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return gdb, nil
}

// Close 释放底层连接。
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
