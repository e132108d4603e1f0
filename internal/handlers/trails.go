package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/middleware"
	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/service"
	"github.com/gin-gonic/gin"
)

// TrailHandler handles trail HTTP requests.
type TrailHandler struct {
	trailService service.TrailService
}

// NewTrailHandler creates a new TrailHandler instance.
func NewTrailHandler(trailService service.TrailService) *TrailHandler {
	return &TrailHandler{trailService: trailService}
}

// List godoc
// @Summary List all trails
// @Description Return every trail with its features and waypoints
// @Tags trails
// @Produce json
// @Success 200 {array} TrailResponse
// @Failure 500 {object} map[string]string
// @Router /trails [get]
func (h *TrailHandler) List(c *gin.Context) {
	trails, err := h.trailService.List(c.Request.Context())
	if err != nil {
		logAndRespondError(c, http.StatusInternalServerError, err, "failed to list trails")
		return
	}
	c.JSON(http.StatusOK, newTrailResponses(trails))
}

// GetByID godoc
// @Summary Get a trail by ID
// @Description Return a single trail with its features and waypoints
// @Tags trails
// @Produce json
// @Param id path int true "Trail ID"
// @Success 200 {object} TrailResponse
// @Failure 404 {object} map[string]string
// @Router /trails/{id} [get]
func (h *TrailHandler) GetByID(c *gin.Context) {
	id, ok := trailID(c)
	if !ok {
		return
	}

	trail, err := h.trailService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTrailNotFound) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("Trail with ID %d not found.", id))
			return
		}
		logAndRespondError(c, http.StatusInternalServerError, err, "failed to get trail")
		return
	}
	c.JSON(http.StatusOK, newTrailResponse(*trail))
}

// Create godoc
// @Summary Create a trail
// @Description Create a trail owned by the logged-in caller, optionally linking features
// @Tags trails
// @Accept json
// @Produce json
// @Param request body service.CreateTrailRequest true "Trail details"
// @Success 201 {object} TrailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /trails [post]
func (h *TrailHandler) Create(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User is not logged in.")
		return
	}

	var req service.CreateTrailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	trail, err := h.trailService.Create(c.Request.Context(), caller.Email, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondError(c, http.StatusNotFound, fmt.Sprintf("No user found with email %s", caller.Email))
		case errors.Is(err, service.ErrTrailNameTaken):
			respondError(c, http.StatusBadRequest, fmt.Sprintf("A trail with the name '%s' already exists.", req.TrailName))
		default:
			logAndRespondError(c, http.StatusInternalServerError, err, "failed to create trail")
		}
		return
	}
	c.JSON(http.StatusCreated, newTrailResponse(*trail))
}

// Update godoc
// @Summary Update a trail
// @Description Apply a partial update to trail fields, waypoints and features
// @Tags trails
// @Accept json
// @Produce json
// @Param id path int true "Trail ID"
// @Param request body service.UpdateTrailRequest true "Fields to update"
// @Success 200 {object} TrailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /trails/{id} [put]
func (h *TrailHandler) Update(c *gin.Context) {
	id, ok := trailID(c)
	if !ok {
		return
	}

	var req service.UpdateTrailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	trail, err := h.trailService.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTrailNotFound):
			respondError(c, http.StatusNotFound, fmt.Sprintf("Trail with ID %d not found.", id))
		case errors.Is(err, service.ErrTrailNameTaken):
			respondError(c, http.StatusBadRequest, "A trail with that name already exists.")
		case errors.Is(err, service.ErrFeatureLinked):
			respondError(c, http.StatusBadRequest, "Feature is already linked to this trail.")
		case errors.Is(err, service.ErrLinkNotFound):
			respondError(c, http.StatusNotFound, "Feature is not linked to this trail.")
		default:
			logAndRespondError(c, http.StatusInternalServerError, err, "failed to update trail")
		}
		return
	}
	c.JSON(http.StatusOK, newTrailResponse(*trail))
}

// Delete godoc
// @Summary Delete a trail
// @Description Remove a trail and all its feature links; linked features remain
// @Tags trails
// @Produce json
// @Param id path int true "Trail ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /trails/{id} [delete]
func (h *TrailHandler) Delete(c *gin.Context) {
	id, ok := trailID(c)
	if !ok {
		return
	}

	if err := h.trailService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTrailNotFound) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("Trail with ID %d not found.", id))
			return
		}
		logAndRespondError(c, http.StatusInternalServerError, err, "failed to delete trail")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Trail with ID %d and its feature links successfully deleted.", id),
	})
}

// TrailFeatureRequest carries one feature name or a list of names.
type TrailFeatureRequest struct {
	FeatureName service.FeatureNames `json:"feature_name" binding:"required"`
}

// AddFeature godoc
// @Summary Add features to a trail
// @Description Link one or more features to a trail, creating unknown features first
// @Tags trails
// @Accept json
// @Produce json
// @Param id path int true "Trail ID"
// @Param request body TrailFeatureRequest true "Feature name or list of names"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /trails/{id}/features [post]
func (h *TrailHandler) AddFeature(c *gin.Context) {
	id, ok := trailID(c)
	if !ok {
		return
	}

	var req TrailFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.FeatureName) == 0 {
		respondError(c, http.StatusBadRequest, "Feature name or list of feature names is required.")
		return
	}

	if err := h.trailService.AddFeatures(c.Request.Context(), id, req.FeatureName); err != nil {
		switch {
		case errors.Is(err, service.ErrTrailNotFound):
			respondError(c, http.StatusNotFound, fmt.Sprintf("Trail with ID %d not found.", id))
		case errors.Is(err, service.ErrFeatureLinked):
			respondError(c, http.StatusBadRequest, "Feature is already linked to this trail.")
		default:
			logAndRespondError(c, http.StatusInternalServerError, err, "failed to add features to trail")
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Features successfully added to trail ID %d.", id),
	})
}

// RemoveFeature godoc
// @Summary Remove features from a trail
// @Description Unlink one or more features from a trail
// @Tags trails
// @Accept json
// @Produce json
// @Param id path int true "Trail ID"
// @Param request body TrailFeatureRequest true "Feature name or list of names"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /trails/{id}/features [delete]
func (h *TrailHandler) RemoveFeature(c *gin.Context) {
	id, ok := trailID(c)
	if !ok {
		return
	}

	var req TrailFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.FeatureName) == 0 {
		respondError(c, http.StatusBadRequest, "Feature name or list of feature names is required.")
		return
	}

	if err := h.trailService.RemoveFeatures(c.Request.Context(), id, req.FeatureName); err != nil {
		switch {
		case errors.Is(err, service.ErrTrailNotFound):
			respondError(c, http.StatusNotFound, fmt.Sprintf("Trail with ID %d not found.", id))
		case errors.Is(err, service.ErrLinkNotFound):
			respondError(c, http.StatusNotFound, "Feature is not linked to this trail.")
		default:
			logAndRespondError(c, http.StatusInternalServerError, err, "failed to remove features from trail")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Features successfully removed from trail ID %d.", id),
	})
}

func trailID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Trail ID must be an integer.")
		return 0, false
	}
	return id, true
}
