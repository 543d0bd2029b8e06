// controllers/diet_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Serdar-Sara/FitnessTracker/models"
	"github.com/Serdar-Sara/FitnessTracker/repositories"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DietController struct {
	Repo repositories.DietRepository
	Log  *zap.Logger
}

func NewDietController(repo repositories.DietRepository, log *zap.Logger) *DietController {
	return &DietController{Repo: repo, Log: log}
}

// Get lists the caller's diet entries.
func (h *DietController) Get(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	diets, err := h.Repo.FindAllByOwner(c.Request.Context(), userID)
	if err != nil {
		h.Log.Error("list diets failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load diet entries"})
		return
	}

	c.JSON(http.StatusOK, diets)
}

// AddForm renders the empty Add form.
func (h *DietController) AddForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"diet": models.Diet{}})
}

// Add persists a new entry for the caller. Whatever user_id the form
// claims is overwritten with the caller's id.
func (h *DietController) Add(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var diet models.Diet
	if err := c.ShouldBind(&diet); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": bindingErrors(err)})
		return
	}

	diet.ID = 0
	diet.UserID = &userID
	if diet.Date.IsZero() {
		diet.Date = time.Now().UTC()
	}

	if err := h.Repo.Insert(c.Request.Context(), &diet); err != nil {
		h.Log.Error("add diet failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"diet": diet, "error": "could not save the diet entry"})
		return
	}

	c.Redirect(http.StatusFound, "/Diet/Get")
}

// EditForm returns the entry for editing, 404 when it is absent or
// owned by someone else.
func (h *DietController) EditForm(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	diet, err := h.Repo.FindByIDAndOwner(c.Request.Context(), uint(id), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		h.Log.Error("load diet failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load the diet entry"})
		return
	}

	c.JSON(http.StatusOK, diet)
}

// Edit replaces the stored entry. The stored row, not the submitted
// payload, decides ownership.
func (h *DietController) Edit(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var diet models.Diet
	if err := c.ShouldBind(&diet); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": bindingErrors(err)})
		return
	}

	if _, err := h.Repo.FindByIDAndOwner(c.Request.Context(), diet.ID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		h.Log.Error("load diet failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load the diet entry"})
		return
	}

	diet.UserID = &userID
	if err := h.Repo.Replace(c.Request.Context(), &diet); err != nil {
		h.Log.Error("edit diet failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"diet": diet, "error": "could not save the diet entry"})
		return
	}

	c.Redirect(http.StatusFound, "/Diet/Get")
}

// Delete removes the entry; a failed removal is logged and surfaced as
// a flash error on the list.
func (h *DietController) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	diet, err := h.Repo.FindByIDAndOwner(c.Request.Context(), uint(id), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		h.Log.Error("load diet failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load the diet entry"})
		return
	}

	if err := h.Repo.Delete(c.Request.Context(), diet); err != nil {
		h.Log.Error("delete diet failed", zap.Error(err))
		c.Redirect(http.StatusFound, "/Diet/Get?error=delete_failed")
		return
	}

	c.Redirect(http.StatusFound, "/Diet/Get")
}
