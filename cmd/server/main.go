package main

import (
	"flag"
	"log"

	"k8s.io/klog/v2"

	"github.com/proposalforge/backend/config"
	"github.com/proposalforge/backend/internal/gis"
	"github.com/proposalforge/backend/internal/handler"
	"github.com/proposalforge/backend/internal/router"
	"github.com/proposalforge/backend/internal/service"
)

func main() {
	// 初始化 klog
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	klog.V(6).Info("服务启动中...")

	cfg := config.GetConfig()

	// 初始化外部协作方与服务
	gisClient := gis.NewClient(cfg)
	proposalService := service.NewProposalService()

	// 初始化 Handler
	catalogHandler := handler.NewCatalogHandler()
	propertyHandler := handler.NewPropertyHandler(gisClient)
	proposalHandler := handler.NewProposalHandler(proposalService)

	// 设置路由
	r := router.Setup(cfg, catalogHandler, propertyHandler, proposalHandler)

	log.Printf("Server starting on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
