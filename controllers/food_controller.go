package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Shnickelbob/Fall-2025-MacroPal/services"
)

type FoodController struct {
	svc *services.FoodService
	log *zap.Logger
}

func NewFoodController(svc *services.FoodService, log *zap.Logger) *FoodController {
	return &FoodController{svc: svc, log: log}
}

// PostFood creates a catalog food. The payload goes through the legacy
// alias normalization, so both old capitalized and new lowercase field names
// work.
func (fc *FoodController) PostFood(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	input, err := services.ParseFoodPayload(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	food, err := fc.svc.Create(input)
	if err != nil {
		if errors.Is(err, services.ErrFoodExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "food already exists"})
			return
		}
		serverError(c, fc.log, err)
		return
	}
	c.JSON(http.StatusCreated, food)
}

// Search matches foods by name or tags: ?by=name|tags&userSearch=...&limit=N
func (fc *FoodController) Search(c *gin.Context) {
	by := c.DefaultQuery("by", "name")
	query := c.Query("userSearch")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))

	foods, err := fc.svc.Search(by, query, limit)
	if err != nil {
		serverError(c, fc.log, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}
