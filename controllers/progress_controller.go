// controllers/progress_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Serdar-Sara/FitnessTracker/models"
	"github.com/Serdar-Sara/FitnessTracker/repositories"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProgressController struct {
	Repo repositories.ProgressRepository
	Log  *zap.Logger
}

func NewProgressController(repo repositories.ProgressRepository, log *zap.Logger) *ProgressController {
	return &ProgressController{Repo: repo, Log: log}
}

func (h *ProgressController) Get(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	progresses, err := h.Repo.FindAllByOwner(c.Request.Context(), userID)
	if err != nil {
		h.Log.Error("list progress failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load progress entries"})
		return
	}

	c.JSON(http.StatusOK, progresses)
}

func (h *ProgressController) AddForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"progress": models.Progress{}})
}

func (h *ProgressController) Add(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var progress models.Progress
	if err := c.ShouldBind(&progress); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": bindingErrors(err)})
		return
	}

	progress.ID = 0
	progress.UserID = userID

	if err := h.Repo.Insert(c.Request.Context(), &progress); err != nil {
		h.Log.Error("add progress failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"progress": progress, "error": "could not save the progress entry"})
		return
	}

	c.Redirect(http.StatusFound, "/Progress/Get")
}

func (h *ProgressController) EditForm(c *gin.Context) {
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

	progress, err := h.Repo.FindByIDAndOwner(c.Request.Context(), uint(id), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		h.Log.Error("load progress failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load the progress entry"})
		return
	}

	c.JSON(http.StatusOK, progress)
}

func (h *ProgressController) Edit(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var progress models.Progress
	if err := c.ShouldBind(&progress); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": bindingErrors(err)})
		return
	}

	if _, err := h.Repo.FindByIDAndOwner(c.Request.Context(), progress.ID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		h.Log.Error("load progress failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load the progress entry"})
		return
	}

	progress.UserID = userID
	if err := h.Repo.Replace(c.Request.Context(), &progress); err != nil {
		h.Log.Error("edit progress failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"progress": progress, "error": "could not save the progress entry"})
		return
	}

	c.Redirect(http.StatusFound, "/Progress/Get")
}

func (h *ProgressController) Delete(c *gin.Context) {
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

	progress, err := h.Repo.FindByIDAndOwner(c.Request.Context(), uint(id), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		h.Log.Error("load progress failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load the progress entry"})
		return
	}

	if err := h.Repo.Delete(c.Request.Context(), progress); err != nil {
		h.Log.Error("delete progress failed", zap.Error(err))
		c.Redirect(http.StatusFound, "/Progress/Get?error=delete_failed")
		return
	}

	c.Redirect(http.StatusFound, "/Progress/Get")
}
