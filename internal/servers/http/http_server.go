package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"socketCanvas/configs"
	"socketCanvas/internal/handlers"
)

var (
	httpServer *HttpServer
	once       sync.Once
)

type HttpServer struct {
	redis         *redis.Client
	ctx           context.Context
	config        *configs.Config
	router        *gin.Engine
	restHandler   *handlers.RestHandler
	socketHandler *handlers.SocketCanvasHandler
}

func NewHttpServer(
	ctx context.Context,
	redis *redis.Client,
	config *configs.Config,
	restHandler *handlers.RestHandler,
	socketHandler *handlers.SocketCanvasHandler,
) *HttpServer {
	once.Do(func() {
		httpServer = &HttpServer{
			ctx:           ctx,
			redis:         redis,
			config:        config,
			restHandler:   restHandler,
			socketHandler: socketHandler,
		}
	})
	return httpServer
}

func (hs *HttpServer) Run() {
	hs.initializeGin()
	hs.setupRestfulRoutes()
	hs.setupWebSocketRoutes()

	server := hs.startServer()

	// Wait for interrupt signal to gracefully shut down the server
	hs.socketHandler.WaitForShutdown(server)
}

func (hs *HttpServer) initializeGin() {
	hs.router = gin.Default()
}

func (hs *HttpServer) setupRestfulRoutes() {
	hs.router.GET("/", hs.restHandler.Index)

	api := hs.router.Group("/api", hs.restHandler.MustAuthenticateMiddleware())
	api.GET("/canvas", hs.restHandler.GetCanvas)
	api.GET("/states", hs.restHandler.GetStates)
	api.POST("/states/:stateId/export", hs.restHandler.ExportState)
}

func (hs *HttpServer) setupWebSocketRoutes() {
	hs.router.GET("/ws/canvas", hs.socketHandler.HandleSocketCanvasRoute)
}

func (hs *HttpServer) startServer() *http.Server {
	address := hs.config.Viper.GetString("server.address")
	server := &http.Server{
		Addr:    address,
		Handler: hs.router,
	}

	go func() {
		log.Printf("HTTP server started on %v", address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	return server
}
