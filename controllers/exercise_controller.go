// controllers/exercise_controller.go
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

type ExerciseController struct {
	Repo repositories.ExerciseRepository
	Log  *zap.Logger
}

func NewExerciseController(repo repositories.ExerciseRepository, log *zap.Logger) *ExerciseController {
	return &ExerciseController{Repo: repo, Log: log}
}

func (h *ExerciseController) Get(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	exercises, err := h.Repo.FindAllByOwner(c.Request.Context(), userID)
	if err != nil {
		h.Log.Error("list exercises failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load exercises"})
		return
	}

	c.JSON(http.StatusOK, exercises)
}

func (h *ExerciseController) AddForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"exercise": models.Exercise{}})
}

func (h *ExerciseController) Add(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var exercise models.Exercise
	if err := c.ShouldBind(&exercise); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": bindingErrors(err)})
		return
	}

	// The caller owns the record no matter what the form claims
	exercise.ID = 0
	exercise.UserID = userID

	if err := h.Repo.Insert(c.Request.Context(), &exercise); err != nil {
		h.Log.Error("add exercise failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"exercise": exercise, "error": "could not save the exercise"})
		return
	}

	c.Redirect(http.StatusFound, "/Exercise/Get")
}

func (h *ExerciseController) EditForm(c *gin.Context) {
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

	exercise, err := h.Repo.FindByIDAndOwner(c.Request.Context(), uint(id), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		h.Log.Error("load exercise failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load the exercise"})
		return
	}

	c.JSON(http.StatusOK, exercise)
}

func (h *ExerciseController) Edit(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var exercise models.Exercise
	if err := c.ShouldBind(&exercise); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": bindingErrors(err)})
		return
	}

	if _, err := h.Repo.FindByIDAndOwner(c.Request.Context(), exercise.ID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		h.Log.Error("load exercise failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load the exercise"})
		return
	}

	exercise.UserID = userID
	if err := h.Repo.Replace(c.Request.Context(), &exercise); err != nil {
		h.Log.Error("edit exercise failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"exercise": exercise, "error": "could not save the exercise"})
		return
	}

	c.Redirect(http.StatusFound, "/Exercise/Get")
}

func (h *ExerciseController) Delete(c *gin.Context) {
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

	exercise, err := h.Repo.FindByIDAndOwner(c.Request.Context(), uint(id), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		h.Log.Error("load exercise failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load the exercise"})
		return
	}

	if err := h.Repo.Delete(c.Request.Context(), exercise); err != nil {
		h.Log.Error("delete exercise failed", zap.Error(err))
		c.Redirect(http.StatusFound, "/Exercise/Get?error=delete_failed")
		return
	}

	c.Redirect(http.StatusFound, "/Exercise/Get")
}
