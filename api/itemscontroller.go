package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"edmwatch/types"
)

// RegisterItemRoutes wires the feed endpoints.
func RegisterItemRoutes(r *gin.Engine, s *Server) {
	r.GET("/api/items", s.handleListItems)
	r.POST("/api/refresh", s.handleRefresh)
}

// handleListItems returns the current feed, optionally filtered by
// tier, category, priority, or state query parameters.
// GET /api/items?tier=1&category=enforcement&state=NV
func (s *Server) handleListItems(c *gin.Context) {
	feed, err := s.store.Load()
	if err != nil {
		log.Printf("failed to load feed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "feed not available; run the fetcher first"})
		return
	}

	items := feed.Items
	if tierParam := c.Query("tier"); tierParam != "" {
		tier, err := strconv.Atoi(tierParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "tier must be an integer"})
			return
		}
		items = filterItems(items, func(item types.Item) bool { return item.Tier == tier })
	}
	if category := c.Query("category"); category != "" {
		items = filterItems(items, func(item types.Item) bool { return item.Category == category })
	}
	if priority := c.Query("priority"); priority != "" {
		items = filterItems(items, func(item types.Item) bool { return item.Priority == priority })
	}
	if state := c.Query("state"); state != "" {
		items = filterItems(items, func(item types.Item) bool { return item.State == state })
	}

	c.JSON(http.StatusOK, types.FeedOutput{
		LastUpdated: feed.LastUpdated,
		TotalItems:  len(items),
		Items:       items,
	})
}

// handleRefresh re-runs the pipeline. Refreshes are serialized; a second
// request while one is running waits rather than doubling the fetch load.
// POST /api/refresh
func (s *Server) handleRefresh(c *gin.Context) {
	if s.refresher == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "refresh not configured"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	count, err := s.refresher.Refresh(c.Request.Context())
	if err != nil {
		log.Printf("refresh failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"new_items": count})
}

func filterItems(items []types.Item, keep func(types.Item) bool) []types.Item {
	out := make([]types.Item, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
