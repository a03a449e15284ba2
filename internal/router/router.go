package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/proposalforge/backend/config"
	"github.com/proposalforge/backend/internal/handler"
)

func Setup(
	cfg *config.Config,
	catalogHandler *handler.CatalogHandler,
	propertyHandler *handler.PropertyHandler,
	proposalHandler *handler.ProposalHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Generation-ID"},
		AllowCredentials: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	api := r.Group("/api")
	{
		catalogs := api.Group("/catalogs")
		{
			catalogs.GET("", catalogHandler.List)
			catalogs.GET("/:id", catalogHandler.Get)
		}

		api.POST("/property/lookup", propertyHandler.Lookup)

		proposals := api.Group("/proposals")
		{
			proposals.POST("/validate", proposalHandler.Validate)
			proposals.POST("/generate", proposalHandler.Generate)
		}
	}

	return r
}
