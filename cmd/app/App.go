package app

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"

	"socketCanvas/configs"
	"socketCanvas/internal/handlers"
	"socketCanvas/internal/servers/database"
	"socketCanvas/internal/servers/http"
	"socketCanvas/internal/services"
	"socketCanvas/internal/store/postgres"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	redis   *redis.Client
	ctx     context.Context
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.initializeConfigs()
	app.initializeRedis()

	db := database.GetDB(app.configs)
	canvasStore := postgres.NewPostgresStore(db)

	cursorService := services.NewCursorService(canvasStore)
	canvasService := services.NewCanvasService(canvasStore)
	snapshotService := services.NewSnapshotService(canvasStore)

	minioService := services.NewMinioService(app.configs)
	fileManagerService := services.NewFileManagerService(minioService)
	exportService := services.NewExportService(snapshotService, fileManagerService)

	restHandler := handlers.NewRestHandler(
		app.configs,
		cursorService,
		canvasService,
		snapshotService,
		exportService,
	)

	socketCanvasHandler := handlers.NewSocketCanvasHandler(
		app.redis,
		app.ctx,
		app.configs,
		cursorService,
		canvasService,
		snapshotService,
	)

	http.NewHttpServer(
		app.ctx,
		app.redis,
		app.configs,
		restHandler,
		socketCanvasHandler,
	).Run()
}

func (app *App) initializeRedis() {
	app.redis = redis.NewClient(&redis.Options{
		Addr: app.configs.Viper.GetString("redis.address"),
	})
}

func (app *App) initializeConfigs() {
	app.configs = configs.GetConfig()
}
