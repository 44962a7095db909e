package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Shnickelbob/Fall-2025-MacroPal/models"
	"github.com/Shnickelbob/Fall-2025-MacroPal/services"
)

// LogAPI is what the log endpoints need from the service layer.
type LogAPI interface {
	Create(userID uint, in services.LogEntryInput) (*models.LogEntry, error)
	Summarize(userID uint) (*services.DailySummary, error)
	DeleteOne(userID uint, id string) error
	DeleteMany(userID uint, ids []string) (deleted int, failed []string)
}

type LogController struct {
	svc LogAPI
	log *zap.Logger
}

func NewLogController(svc LogAPI, log *zap.Logger) *LogController {
	return &LogController{svc: svc, log: log}
}

// PostLog adds a food to today's log.
func (lc *LogController) PostLog(c *gin.Context) {
	userID := c.GetUint("userID")

	var input services.LogEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := lc.svc.Create(userID, input)
	if err != nil {
		serverError(c, lc.log, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetToday returns today's entries plus totals, goals and remaining.
func (lc *LogController) GetToday(c *gin.Context) {
	userID := c.GetUint("userID")

	summary, err := lc.svc.Summarize(userID)
	if err != nil {
		serverError(c, lc.log, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// DeleteLog removes one logged item. Foreign and unknown ids succeed as
// no-ops.
func (lc *LogController) DeleteLog(c *gin.Context) {
	userID := c.GetUint("userID")

	if err := lc.svc.DeleteOne(userID, c.Param("id")); err != nil {
		serverError(c, lc.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type batchDeleteInput struct {
	IDs []string `json:"ids" binding:"required"`
}

// DeleteBatch removes several entries as independent deletes and reports
// which ids failed; the client reconciles its state from the failure list.
func (lc *LogController) DeleteBatch(c *gin.Context) {
	userID := c.GetUint("userID")

	var input batchDeleteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids required"})
		return
	}

	deleted, failed := lc.svc.DeleteMany(userID, input.IDs)
	c.JSON(http.StatusOK, gin.H{"deleted": deleted, "failed": failed})
}
