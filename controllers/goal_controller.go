package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Shnickelbob/Fall-2025-MacroPal/models"
	"github.com/Shnickelbob/Fall-2025-MacroPal/services"
)

type GoalAPI interface {
	Get(userID uint) (models.Goals, error)
	Patch(userID uint, p services.GoalPatch) (models.Goals, error)
}

type GoalController struct {
	svc GoalAPI
	log *zap.Logger
}

func NewGoalController(svc GoalAPI, log *zap.Logger) *GoalController {
	return &GoalController{svc: svc, log: log}
}

func (gc *GoalController) GetGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	goals, err := gc.svc.Get(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		serverError(c, gc.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// PatchGoals applies a partial goal update. Clients send either the bare
// fields or a {goals:{...}} wrapper.
func (gc *GoalController) PatchGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var wrapper struct {
		Goals *services.GoalPatch `json:"goals"`
	}
	var patch services.GoalPatch
	if err := json.Unmarshal(body, &wrapper); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if wrapper.Goals != nil {
		patch = *wrapper.Goals
	} else if err := json.Unmarshal(body, &patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	goals, err := gc.svc.Patch(userID, patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyGoalPatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "no valid goal fields provided"})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			serverError(c, gc.log, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}
