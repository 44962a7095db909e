package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type HealthController struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewHealthController(db *gorm.DB, log *zap.Logger) *HealthController {
	return &HealthController{db: db, log: log}
}

// Health pings the database so load balancers see storage trouble, not just
// a live process.
func (hc *HealthController) Health(c *gin.Context) {
	sqlDB, err := hc.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		hc.log.Error("db ping failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "db": "not connected"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"db":     "connected",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
