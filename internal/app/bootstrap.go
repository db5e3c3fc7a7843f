package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fisker/biteform-backend/pkg/config"
	"github.com/fisker/biteform-backend/pkg/database"
	"github.com/fisker/biteform-backend/pkg/logger"
	"github.com/joho/godotenv"
)

// Bootstrap 初始化基础设施（配置, logger, database）
func Bootstrap(cfgPath string) (*config.Config, error) {
	// 本地开发时从 .env 加载环境变量，文件不存在则忽略
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	// 支持通过环境变量指定配置文件路径
	if cfgPath == "" {
		cfgPath = os.Getenv("BITEFORM_CONFIG")
		if cfgPath == "" {
			cfgPath = "config/config.yaml"
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	if err := logger.Init(&cfg.Logging); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, nil
}
