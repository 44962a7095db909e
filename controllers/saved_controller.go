package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Shnickelbob/Fall-2025-MacroPal/services"
	"github.com/Shnickelbob/Fall-2025-MacroPal/utils"
)

type SavedController struct {
	svc *services.SavedService
	log *zap.Logger
}

func NewSavedController(svc *services.SavedService, log *zap.Logger) *SavedController {
	return &SavedController{svc: svc, log: log}
}

func (sc *SavedController) ListSaved(c *gin.Context) {
	userID := c.GetUint("userID")

	saved, err := sc.svc.List(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		serverError(c, sc.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

type savedInput struct {
	FoodID utils.Numeric `json:"foodId"`
}

func (sc *SavedController) AddSaved(c *gin.Context) {
	userID := c.GetUint("userID")

	var input savedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "foodId required"})
		return
	}
	foodID := input.FoodID.Or(0)
	if foodID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "foodId required"})
		return
	}

	if err := sc.svc.Add(userID, uint(foodID)); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, services.ErrFoodNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		default:
			serverError(c, sc.log, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "liked": true})
}

func (sc *SavedController) RemoveSaved(c *gin.Context) {
	userID := c.GetUint("userID")

	foodID, err := strconv.ParseUint(c.Param("foodId"), 10, 32)
	if err != nil {
		c.Status(http.StatusNoContent) // unknown ids fall through like the log delete
		return
	}

	if err := sc.svc.Remove(userID, uint(foodID)); err != nil {
		serverError(c, sc.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
