package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/booklist/internal/audit"
	"github.com/mrlokans/booklist/internal/config"
	"github.com/mrlokans/booklist/internal/database"
	"github.com/mrlokans/booklist/internal/database/books"
	"github.com/mrlokans/booklist/internal/demo"
	"github.com/mrlokans/booklist/internal/exporters"
	http_controllers "github.com/mrlokans/booklist/internal/http"
	"github.com/mrlokans/booklist/internal/logging"
	"github.com/mrlokans/booklist/internal/scheduler"
	"github.com/mrlokans/booklist/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT; SIGKILL can't be caught
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop the export scheduler)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// App holds the long-lived components shared by the server.
type App struct {
	DB        *database.Database
	Books     *services.BookService
	Auditor   *audit.Auditor
	Demo      *demo.Middleware
	Scheduler *scheduler.ExportSyncScheduler
	Router    *gin.Engine
}

// Build opens the store once and wires every component around it.
func Build(cfg *config.Config, version string) (*App, error) {
	db, err := database.NewDatabase(cfg.Database.Path, database.Options{LogSQL: cfg.Database.LogSQL})
	if err != nil {
		return nil, err
	}

	bookService := services.NewBookService(books.NewRepository(db.DB))
	auditor := audit.NewAuditor(cfg.Audit.Dir)
	if auditor.Enabled() {
		log.Printf("Auditing add requests to %s", cfg.Audit.Dir)
	}

	demoMiddleware := demo.NewMiddleware(cfg.Demo.Enabled)
	if demoMiddleware.IsEnabled() {
		log.Printf("Read-only mode enabled: write requests will be rejected")
	}

	format, err := exporters.ParseFormat(cfg.Export.Format)
	if err != nil {
		db.Close()
		return nil, err
	}

	exportScheduler := scheduler.NewExportSyncScheduler(bookService, scheduler.ExportSyncConfig{
		Enabled:  cfg.Export.SyncEnabled,
		Path:     cfg.Export.Path,
		Format:   format,
		Schedule: cfg.Export.Schedule,
	})

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Books:          bookService,
		Database:       db,
		Auditor:        auditor,
		DemoMiddleware: demoMiddleware,
		Version:        version,
	})

	return &App{
		DB:        db,
		Books:     bookService,
		Auditor:   auditor,
		Demo:      demoMiddleware,
		Scheduler: exportScheduler,
		Router:    router,
	}, nil
}

// Close releases the store.
func (a *App) Close() {
	if err := a.DB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}

func Run(cfg *config.Config, version string) {
	closeLog, err := logging.Setup(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to set up log file: %v", err)
	}
	defer closeLog()
	gin.DefaultWriter = logging.Writer()

	app, err := Build(cfg, version)
	if err != nil {
		if errors.Is(err, database.ErrStorageUnavailable) {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		log.Fatalf("Failed to start: %v", err)
	}
	defer app.Close()

	schedulerCtx, schedulerCancel := context.WithCancel(context.Background())
	if err := app.Scheduler.Start(schedulerCtx); err != nil {
		log.Printf("WARNING: export sync disabled: %v", err)
	}

	onShutdown := func(ctx context.Context) {
		app.Scheduler.Stop()
		schedulerCancel()
	}

	Serve(app.Router, cfg, onShutdown)
}
