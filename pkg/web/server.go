// Package web serves a small JSON status API for a running bot.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/igecorp/igego/pkg/discord"
	apperrors "github.com/igecorp/igego/pkg/errors"
	"github.com/igecorp/igego/pkg/logger"
	"golang.org/x/time/rate"
)

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Window      time.Duration
	MaxRequests int
}

// DefaultRateLimit allows 100 requests per minute per client IP.
var DefaultRateLimit = RateLimitConfig{Window: time.Minute, MaxRequests: 100}

// Server represents the web server
type Server struct {
	engine *gin.Engine
	client *discord.Client

	mu   sync.Mutex
	http *http.Server
}

// NewServer creates a server exposing client's state under /api.
func NewServer(client *discord.Client, limit RateLimitConfig) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{engine: engine, client: client}
	s.engine.Use(requestLogger())
	s.engine.Use(rateLimit(limit))
	s.setupErrorHandlers()
	s.setupRoutes()

	return s
}

// Engine returns the underlying Gin engine
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug(fmt.Sprintf("%s %s %d (%s) | %s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), c.ClientIP()), "WebServer")
	}
}

// limiterIdleTTL is how long a client IP may stay silent before its bucket
// is dropped. Never shorter than the Window, so a dropped bucket was full.
const limiterIdleTTL = 3 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitors tracks one token bucket per client IP.
type visitors struct {
	every  rate.Limit
	burst  int
	ttl    time.Duration
	now    func() time.Time
	pruned time.Time

	mu      sync.Mutex
	clients map[string]*visitor
}

func newVisitors(cfg RateLimitConfig) *visitors {
	ttl := limiterIdleTTL
	if cfg.Window > ttl {
		ttl = cfg.Window
	}
	return &visitors{
		every:   rate.Every(cfg.Window / time.Duration(cfg.MaxRequests)),
		burst:   cfg.MaxRequests,
		ttl:     ttl,
		now:     time.Now,
		clients: make(map[string]*visitor),
	}
}

// allow reports whether ip may make a request now. Idle entries are swept
// at most once per ttl.
func (v *visitors) allow(ip string) bool {
	now := v.now()

	v.mu.Lock()
	if now.Sub(v.pruned) >= v.ttl {
		for key, c := range v.clients {
			if now.Sub(c.lastSeen) >= v.ttl {
				delete(v.clients, key)
			}
		}
		v.pruned = now
	}
	c, ok := v.clients[ip]
	if !ok {
		c = &visitor{limiter: rate.NewLimiter(v.every, v.burst)}
		v.clients[ip] = c
	}
	c.lastSeen = now
	v.mu.Unlock()

	return c.limiter.AllowN(now, 1)
}

func (v *visitors) size() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.clients)
}

// rateLimit gives every client IP a token bucket refilled at
// MaxRequests per Window, with a burst of MaxRequests.
func rateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.MaxRequests <= 0 || cfg.Window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	v := newVisitors(cfg)

	return func(c *gin.Context) {
		if !v.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests, please try again later.",
			})
			return
		}
		c.Next()
	}
}

func (s *Server) setupErrorHandlers() {
	s.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "Not Found",
			"status": http.StatusNotFound,
		})
	})
}

func (s *Server) listener(port string) *http.Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http
}

func serve(srv *http.Server) error {
	logger.Info("Web server listening on http://localhost"+srv.Addr, "WebServer")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Start listens on port until Shutdown is called.
func (s *Server) Start(port string) error {
	return serve(s.listener(port))
}

// StartAsync starts the web server in a goroutine. Shutdown may be called
// as soon as it returns.
func (s *Server) StartAsync(port string) {
	srv := s.listener(port)
	go func() {
		defer apperrors.RecoverMiddleware()()
		if err := serve(srv); err != nil {
			logger.Error(fmt.Sprintf("Error starting web server: %v", err), "WebServer")
		}
	}()
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.http
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
