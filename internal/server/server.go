package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "artdisrupt/docs"
	"artdisrupt/internal/logging"
	"artdisrupt/internal/metrics"
	"artdisrupt/pkg/config"
)

const (
	RFC3339Millis   = "2006-01-02T15:04:05.000Z07:00"
	requestIDHeader = "X-Request-ID"

	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

type Server struct {
	config        config.ServerConfig
	protectConfig config.ProtectConfig
	logger        *logging.Logger
	router        *gin.Engine
}

// NewServer godoc
// @title artdisrupt API
// @version 1.0
// @description An API to perturb images against automated image matching
// @BasePath /api/v1
func NewServer(cfg config.ServerConfig, logger *logging.Logger) (*Server, error) {
	protectConfig, err := cfg.ProtectConfig()
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:        cfg,
		protectConfig: protectConfig,
		logger:        logger,
	}

	r := gin.New()
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter}), gin.Recovery(), s.requestScope())
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if cfg.MetricsEnabled {
		r.GET("/metrics", metrics.Handler())
	}
	r.GET("/healthz", HealthHandler)

	v1 := r.Group("/api/v1")
	v1.GET("/healthz", HealthHandler)
	v1.GET("/presets", PresetsHandler)
	v1.POST("/protect/image", s.ProtectImageHandler)

	r.POST("/fb/protect/image", s.ProtectImageFlatbuffersHandler)

	s.router = r
	return s, nil
}

func (s *Server) Router() http.Handler {
	return s.router
}

// Run listens on the configured port and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%s", s.config.Port))
	if err != nil {
		return fmt.Errorf("listening on port %s: %w", s.config.Port, err)
	}
	return s.Serve(ctx, ln)
}

// Serve handles requests on ln. Once ctx is done it stops accepting connections and waits up to
// shutdownTimeout for in-flight requests before returning.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	s.logger.Info("Starting server", "addr", ln.Addr().String(), "preset", s.protectConfig.Preset)
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	if err := <-serveErr; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func StartServer(ctx context.Context, cfg config.ServerConfig, logger *logging.Logger) error {
	s, err := NewServer(cfg, logger)
	if err != nil {
		return err
	}
	return s.Run(ctx)
}

// requestScope tags each request with an id, binds a logger to it and caps the body size. JSON
// bodies carry base64, hence the doubled limit.
func (s *Server) requestScope() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Header(requestIDHeader, requestID)
		logging.BindToCtx(ctx, s.logger, requestID)

		if ctx.Request.Body != nil {
			ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, s.config.MaxImageBytes*2)
		}
		ctx.Next()
	}
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	return fmt.Sprintf("{\"timestamp\":\"%v\", \"status_code\": \"%d\", \"latency\": \"%v\", \"latency_raw\": \"%d\", \"response_size\": \"%s\", \"response_size_raw\": \"%d\", \"client_ip\":\"%s\", \"method\": \"%s\", \"path\": \"%v\", \"error\": \"%s\"}\n",
		param.TimeStamp.Format(RFC3339Millis),
		param.StatusCode,
		param.Latency,
		param.Latency,
		humanize.Bytes(uint64(max(param.BodySize, 0))),
		param.BodySize,
		param.ClientIP,
		param.Method,
		param.Path,
		param.ErrorMessage,
	)
}
