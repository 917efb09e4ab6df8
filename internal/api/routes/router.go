package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/projecthub-go/internal/api/handlers"
	"github.com/linskybing/projecthub-go/internal/api/middleware"
	"github.com/linskybing/projecthub-go/internal/application"
	"github.com/linskybing/projecthub-go/internal/config"
	"github.com/linskybing/projecthub-go/internal/repository"
	"github.com/linskybing/projecthub-go/internal/storage"
	"github.com/linskybing/projecthub-go/pkg/response"
)

// maxBodyBytes leaves room for base64 expansion of the largest allowed upload.
func maxBodyBytes(maxUpload int64) int64 {
	return maxUpload/3*4 + 64<<10
}

func RegisterRoutes(r *gin.Engine, repos *repository.Repos, blobs storage.BlobStore) *handlers.Handlers {
	// init
	services := application.New(repos, blobs, config.MaxUploadBytes)
	h := handlers.New(services)
	authMiddleware := middleware.NewAuth(repos)

	r.GET("/healthz", healthz(repos))

	api := r.Group("/api/v1")
	api.Use(middleware.BodyLimit(maxBodyBytes(config.MaxUploadBytes)))
	api.Use(middleware.JWTAuthMiddleware(), authMiddleware.ActiveUser())
	{
		api.POST("/operations", h.Dispatcher.Handle)
		api.GET("/operations", func(c *gin.Context) {
			response.Success(c, "", h.Dispatcher.Operations())
		})
	}
	return h
}

func healthz(repos *repository.Repos) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := repos.Ping(ctx); err != nil {
			response.Fail(c, http.StatusServiceUnavailable, "database unreachable")
			return
		}
		response.Success(c, "ok", nil)
	}
}
