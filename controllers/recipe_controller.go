package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Shnickelbob/Fall-2025-MacroPal/services"
	"github.com/Shnickelbob/Fall-2025-MacroPal/utils"
)

type RecipeController struct {
	svc *services.RecipeService
	log *zap.Logger
}

func NewRecipeController(svc *services.RecipeService, log *zap.Logger) *RecipeController {
	return &RecipeController{svc: svc, log: log}
}

func (rc *RecipeController) ListRecipes(c *gin.Context) {
	recipes, err := rc.svc.List()
	if err != nil {
		serverError(c, rc.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (rc *RecipeController) GetRecipe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	recipe, err := rc.svc.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		serverError(c, rc.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

type logRecipeInput struct {
	Servings utils.Numeric `json:"servings"`
}

// LogRecipe records eating a recipe into today's log.
func (rc *RecipeController) LogRecipe(c *gin.Context) {
	userID := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	// body is optional; an absent one means a single serving
	var input logRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := rc.svc.LogRecipe(userID, uint(id), input.Servings.Or(1))
	if err != nil {
		if errors.Is(err, services.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		serverError(c, rc.log, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}
