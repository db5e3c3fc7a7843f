package main

import (
	"flag"
	"log"

	"github.com/fisker/biteform-backend/internal/app"
)

// @title           BiteForm API
// @version         0.1
// @description     多租户表单服务 API
// @BasePath        /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization

func main() {
	cfgPath := flag.String("config", "", "配置文件路径（默认读取 BITEFORM_CONFIG 或 config/config.yaml）")
	flag.Parse()

	application, err := app.Initialize(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app.StartServer(application)
}
