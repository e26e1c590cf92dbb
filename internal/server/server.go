// Package server serves the portfolio page and its assets for local preview.
package server

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"net/http"
	"os"
	"path"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wahhaj007/portfolio/internal/page"
)

const shutdownTimeout = 5 * time.Second

type Options struct {
	Addr      string
	BasePath  string
	AssetsDir string // files served at the base path, e.g. the resume PDF
	Logger    *zap.Logger
}

// Server holds the current page and the gin engine that serves it. The
// page is replaced wholesale by SetPage and never modified in place.
type Server struct {
	addr   string
	base   string
	assets fs.FS
	logger *zap.Logger

	engine  *gin.Engine
	current atomic.Pointer[page.Page]
}

func New(pg *page.Page, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		addr:   opts.Addr,
		base:   page.NormalizeBase(opts.BasePath),
		logger: logger,
	}
	if opts.AssetsDir != "" {
		s.assets = os.DirFS(opts.AssetsDir)
	}
	s.current.Store(pg)
	s.engine = s.routes(pg)
	return s
}

func (s *Server) routes(pg *page.Page) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(s.logger, newSalt(), s.base))

	// Templates are embedded and identical across reloads; only the view
	// data changes.
	r.SetHTMLTemplate(pg.Template())

	site := r.Group(s.base)
	site.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, page.IndexTemplate, s.Page().View(page.DefaultTheme))
	})
	site.StaticFS("/static", http.FS(page.StaticFS()))

	r.NoRoute(s.serveAsset)
	return r
}

// serveAsset serves regular files from the assets directory under the base
// path. Anything else is a 404.
func (s *Server) serveAsset(c *gin.Context) {
	if s.assets == nil || (c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}

	p := c.Request.URL.Path
	if !strings.HasPrefix(p, s.base) {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}
	rel := strings.TrimPrefix(path.Clean("/"+strings.TrimPrefix(p, s.base)), "/")
	if rel == "" || !fs.ValidPath(rel) {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}

	info, err := fs.Stat(s.assets, rel)
	if err != nil || !info.Mode().IsRegular() {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}
	c.Set(assetKey, true)
	c.FileFromFS(rel, http.FS(s.assets))
}

// Page returns the page currently being served.
func (s *Server) Page() *page.Page { return s.current.Load() }

// SetPage swaps the served page.
func (s *Server) SetPage(pg *page.Page) { s.current.Store(pg) }

// Handler exposes the engine, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Serving portfolio",
			zap.String("addr", ln.Addr().String()),
			zap.String("base", s.base))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down")
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	<-errCh
	return nil
}
