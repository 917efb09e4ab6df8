package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/projecthub-go/internal/api/middleware"
	"github.com/linskybing/projecthub-go/internal/api/routes"
	"github.com/linskybing/projecthub-go/internal/config"
	"github.com/linskybing/projecthub-go/internal/config/db"
	"github.com/linskybing/projecthub-go/internal/repository"
	"github.com/linskybing/projecthub-go/internal/storage"
	"github.com/spf13/cobra"
)

var serveMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", false, "Apply the schema before serving")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize JWT signing key
	middleware.Init()
	if err := middleware.RegisterValidators(); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}

	if err := db.Init(); err != nil {
		return err
	}
	if serveMigrate {
		if err := db.Migrate(db.DB); err != nil {
			return err
		}
	}

	blobs, err := storage.NewMinioStore(ctx, storage.MinioConfig{
		Endpoint:  config.MinioEndpoint,
		AccessKey: config.MinioAccessKey,
		SecretKey: config.MinioSecretKey,
		Bucket:    config.MinioBucket,
		UseSSL:    config.MinioUseSSL,
	})
	if err != nil {
		return fmt.Errorf("connect to blob store: %w", err)
	}

	gin.SetMode(config.GinMode)
	router := gin.New()
	router.Use(middleware.RequestLogger(), middleware.Recovery())
	router.Use(middleware.CORSMiddleware(config.CorsAllowedOrigins))

	routes.RegisterRoutes(router, repository.NewRepositories(db.DB), blobs)

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting API server on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
