package database

import (
	"context"
	"fmt"
	"time"

	"github.com/fisker/biteform-backend/internal/model"
	"github.com/fisker/biteform-backend/pkg/config"
	"github.com/fisker/biteform-backend/pkg/logger"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init 初始化全局数据库连接并执行迁移
func Init(cfg *config.DatabaseConfig) error {
	cfg.SetDefaults()

	db, err := Open(cfg)
	if err != nil {
		return err
	}

	if cfg.ShouldAutoMigrate() {
		if err := AutoMigrateAll(db); err != nil {
			return fmt.Errorf("failed to auto-migrate database: %w", err)
		}
	}

	DB = db
	logger.Infof("Database initialized successfully")
	return nil
}

// Models 返回需要迁移的全部模型，顺序即建表顺序
func Models() []interface{} {
	return []interface{}{
		&model.Form{},
		&model.FormField{},
		&model.FormSubmission{},
		&model.FormResponse{},
	}
}

// AutoMigrateAll 仅迁移尚不存在的表
func AutoMigrateAll(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	logger.Info("Checking database tables...")

	migrator := db.Migrator()
	var tablesToMigrate []interface{}
	for _, table := range Models() {
		if migrator.HasTable(table) {
			logger.Debugf("Table for %T already exists, skipping", table)
			continue
		}
		tablesToMigrate = append(tablesToMigrate, table)
	}

	if len(tablesToMigrate) == 0 {
		logger.Info("All database tables already exist, no migration needed")
		return nil
	}

	logger.Infof("Starting auto-migration for %d table(s)...", len(tablesToMigrate))
	if err := db.AutoMigrate(tablesToMigrate...); err != nil {
		return err
	}
	logger.Infof("Successfully migrated %d table(s)", len(tablesToMigrate))
	return nil
}

// Ping 检查数据库连通性
func Ping(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is not initialized")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
