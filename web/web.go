// Package web provides the HTTP server of the priceboard backend: routing,
// middleware and graceful startup/shutdown.
package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"

	"github.com/aurify/priceboard/config"
	"github.com/aurify/priceboard/logger"
	"github.com/aurify/priceboard/util/common"
	"github.com/aurify/priceboard/web/controller"
	"github.com/aurify/priceboard/web/entity"
	"github.com/aurify/priceboard/web/middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Server is the priceboard API server.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	auth      *controller.AuthController
	commodity *controller.CommodityController
	spotRate  *controller.SpotRateController
	template  *controller.TemplateController

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter initializes gin, registers middleware and controllers and
// returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Unexpected panics become a logged, generic 500; nothing internal
	// leaks to the client.
	engine.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		logger.Error("unhandled panic:", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, entity.Msg{
			Success: false,
			Message: "Internal server error",
		})
	}))

	engine.Use(middleware.CORS(config.GetCORSOrigin()))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	api := engine.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API Working Fine ✅"})
	})

	s.auth = controller.NewAuthController(api)

	// Every resource group shares the auth controller's token verifier.
	protected := api.Group("", middleware.JWTAuth(s.auth.AuthService()))
	s.commodity = controller.NewCommodityController(protected)
	s.spotRate = controller.NewSpotRateController(protected)
	s.template = controller.NewTemplateController(protected)

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort("", strconv.Itoa(config.GetPort()))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("Web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	return nil
}

// Stop gracefully shuts down the web server.
func (s *Server) Stop() error {
	s.cancel()
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
