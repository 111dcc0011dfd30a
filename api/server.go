// Package api exposes the classified feed over HTTP for the dashboard.
package api

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"

	"edmwatch/types"
)

// FeedStore loads the latest feed export.
type FeedStore interface {
	Load() (types.FeedOutput, error)
}

// Refresher re-runs the fetch pipeline and rewrites the exports,
// returning the number of new items surfaced.
type Refresher interface {
	Refresh(ctx context.Context) (int, error)
}

// Server handles HTTP API requests for the feed.
type Server struct {
	store     FeedStore
	refresher Refresher
	mu        sync.Mutex // serializes refresh runs
}

// NewServer creates a new API server instance. refresher may be nil when
// the deployment only serves pre-built exports.
func NewServer(store FeedStore, refresher Refresher) *Server {
	return &Server{store: store, refresher: refresher}
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(s *Server) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	RegisterItemRoutes(r, s)
	RegisterHealthRoutes(r, s)
	return r
}
