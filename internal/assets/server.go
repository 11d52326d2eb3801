package assets

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexisbeaulieu97/folio/internal/logger"
)

const shutdownTimeout = 5 * time.Second

var ginModeOnce sync.Once

// NewHandler returns a handler that serves resumeFile at ResumePath and
// nothing else.
func NewHandler(resumeFile string, log *logger.Logger) http.Handler {
	if log == nil {
		log = logger.Nop()
	}

	ginModeOnce.Do(func() { gin.SetMode(gin.ReleaseMode) })
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	r.StaticFile(ResumePath, resumeFile)
	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "not found")
	})

	return r
}

// requestLogger logs one line per request through the application logger.
func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(map[string]any{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Debug("request served")
	}
}

// Serve runs handler on addr until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, log *logger.Logger) error {
	if log == nil {
		log = logger.Nop()
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(map[string]any{"addr": addr}).Info("asset server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		log.Info("asset server stopped")
		return nil
	}
}
