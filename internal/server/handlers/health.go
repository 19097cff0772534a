package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clarkpowers2/crypto2bank-backend/internal/infrastructure/database"
)

type HealthHandler struct {
	db *database.DBManager
}

func NewHealthHandler(db *database.DBManager) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"service": "crypto2bank-backend",
	})
}

// Ready reports whether the service can reach its database. Load balancers
// should route traffic only when this returns 200.
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"ok":    false,
			"error": "db_unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
