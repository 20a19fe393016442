package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	unknownIP        = "Unknown IP"
	unknownUserAgent = "Unknown User-Agent"
	shutdownTimeout  = 10 * time.Second
)

// UUIDv4Response is the JSON body returned by GET /api/v1/generate-uuid-v4
type UUIDv4Response struct {
	UUID      string `json:"uuid"`
	CreatedAt string `json:"created_at"`
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
}

// Options configures the router
type Options struct {
	// AllowedOrigins restricts CORS; empty or containing "*" allows any origin
	AllowedOrigins []string
	// TrustedProxies may set the client address through X-Forwarded-For;
	// with none, ip_address is always the peer address
	TrustedProxies []string
	Logger         *log.Logger
	// NewID and Now are overridable for tests
	NewID func() uuid.UUID
	Now   func() time.Time
}

type handler struct {
	logger *log.Logger
	newID  func() uuid.UUID
	now    func() time.Time
}

// NewRouter builds the gin engine serving the UUID API
func NewRouter(opts Options) (*gin.Engine, error) {
	h := &handler{
		logger: opts.Logger,
		newID:  opts.NewID,
		now:    opts.Now,
	}
	if h.logger == nil {
		h.logger = log.Default()
	}
	if h.newID == nil {
		h.newID = uuid.New
	}
	if h.now == nil {
		h.now = time.Now
	}

	r := gin.New()
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(gin.Recovery())
	r.Use(requestLogger(h.logger))
	r.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	api.GET("/generate-uuid-v4", h.generateUUIDv4)

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "User-Agent"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        time.Hour,
	}

	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// GET /api/v1/generate-uuid-v4
func (h *handler) generateUUIDv4(c *gin.Context) {
	ip := c.ClientIP()
	if ip == "" {
		ip = unknownIP
	}
	h.logger.Info("Received request", "ip", ip)

	userAgent := c.GetHeader("User-Agent")
	if userAgent == "" {
		userAgent = unknownUserAgent
	}
	h.logger.Info("User-Agent", "user_agent", userAgent)

	createdAt := h.now().UTC()
	id := h.newID()

	h.logger.Info("Generated UUIDv4", "uuid", id, "created_at", createdAt)

	c.JSON(http.StatusOK, UUIDv4Response{
		UUID:      id.String(),
		CreatedAt: createdAt.Format(time.RFC3339),
		IPAddress: ip,
		UserAgent: userAgent,
	})
}

// requestLogger logs each request with structured fields
func requestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

// Addr joins host and port into a listen address
func Addr(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// ParsePort converts a PORT value into a port number
func ParsePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("PORT must be a number between 1 and 65535, got %q", s)
	}
	return port, nil
}

// Run serves handler on addr until ctx is cancelled, then shuts down gracefully
func Run(ctx context.Context, addr string, handler http.Handler, logger *log.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", addr, err)
	}
	return Serve(ctx, ln, handler, logger)
}

// Serve is Run on an existing listener
func Serve(ctx context.Context, ln net.Listener, handler http.Handler, logger *log.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	logger.Info("Server is running successfully", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", "err", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
		return err
	}

	logger.Info("Server shutdown successfully")
	return nil
}
