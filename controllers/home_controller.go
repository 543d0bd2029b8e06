package controllers

import (
	"net/http"

	"github.com/Serdar-Sara/FitnessTracker/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HomeController struct {
	Svc *services.DashboardService
	Log *zap.Logger
}

func NewHomeController(svc *services.DashboardService, log *zap.Logger) *HomeController {
	return &HomeController{Svc: svc, Log: log}
}

// Index serves the public dashboard; no auth, global figures.
func (h *HomeController) Index(c *gin.Context) {
	summary, err := h.Svc.Summarize(c.Request.Context())
	if err != nil {
		h.Log.Error("dashboard summary failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load dashboard"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
