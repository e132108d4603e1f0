package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/service"
	"github.com/gin-gonic/gin"
)

// FeatureHandler handles feature HTTP requests.
type FeatureHandler struct {
	featureService service.FeatureService
}

// NewFeatureHandler creates a new FeatureHandler instance.
func NewFeatureHandler(featureService service.FeatureService) *FeatureHandler {
	return &FeatureHandler{featureService: featureService}
}

// AddFeatureRequest represents the payload for creating a feature.
type AddFeatureRequest struct {
	FeatureName string `json:"feature_name" binding:"required"`
}

// RenameFeatureRequest represents the payload for renaming a feature.
type RenameFeatureRequest struct {
	NewFeatureName string `json:"new_feature_name" binding:"required"`
}

// SearchTrail is one trail entry of a feature search result.
type SearchTrail struct {
	TrailName        string            `json:"trail_name"`
	Difficulty       string            `json:"difficulty"`
	Location         string            `json:"location"`
	Length           float64           `json:"length"`
	ElevationGain    float64           `json:"elevation_gain"`
	RouteType        string            `json:"route_type"`
	TrailSummary     string            `json:"trail_summary"`
	TrailDescription string            `json:"trail_description"`
	Waypoints        service.Waypoints `json:"waypoints"`
	Features         []FeatureRef      `json:"features"`
}

// SearchResponse is the denormalized view returned by a feature search:
// the feature plus every trail linked to it, each annotated with its own
// full feature list and waypoints.
type SearchResponse struct {
	FeatureName string        `json:"feature_name"`
	Trails      []SearchTrail `json:"trails"`
}

// List godoc
// @Summary List all features
// @Description Return every feature in the catalogue
// @Tags features
// @Produce json
// @Success 200 {array} models.Feature
// @Failure 500 {object} map[string]string
// @Router /features [get]
func (h *FeatureHandler) List(c *gin.Context) {
	features, err := h.featureService.List(c.Request.Context())
	if err != nil {
		logAndRespondError(c, http.StatusInternalServerError, err, "failed to list features")
		return
	}
	c.JSON(http.StatusOK, features)
}

// Search godoc
// @Summary Search a feature by name
// @Description Return the feature and every trail linked to it
// @Tags features
// @Produce json
// @Param name query string true "Feature name"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /features/search [get]
func (h *FeatureHandler) Search(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		respondError(c, http.StatusBadRequest, "Feature name is required.")
		return
	}

	feature, trails, err := h.featureService.Search(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrFeatureNotFound) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("Feature with name '%s' not found.", name))
			return
		}
		logAndRespondError(c, http.StatusInternalServerError, err, "failed to search feature")
		return
	}

	result := SearchResponse{
		FeatureName: feature.FeatureName,
		Trails:      make([]SearchTrail, 0, len(trails)),
	}
	for _, trail := range trails {
		view := newTrailResponse(trail)
		result.Trails = append(result.Trails, SearchTrail{
			TrailName:        view.TrailName,
			Difficulty:       view.Difficulty,
			Location:         view.Location,
			Length:           view.Length,
			ElevationGain:    view.ElevationGain,
			RouteType:        view.RouteType,
			TrailSummary:     view.TrailSummary,
			TrailDescription: view.TrailDescription,
			Waypoints:        view.Waypoints,
			Features:         view.Features,
		})
	}
	c.JSON(http.StatusOK, result)
}

// Add godoc
// @Summary Add a feature
// @Description Create a new feature with a unique name
// @Tags features
// @Accept json
// @Produce json
// @Param request body AddFeatureRequest true "Feature name"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /features [post]
func (h *FeatureHandler) Add(c *gin.Context) {
	var req AddFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Feature name is required.")
		return
	}

	feature, err := h.featureService.Add(c.Request.Context(), req.FeatureName)
	if err != nil {
		if errors.Is(err, service.ErrFeatureExists) {
			respondError(c, http.StatusBadRequest, fmt.Sprintf("Feature '%s' already exists.", req.FeatureName))
			return
		}
		logAndRespondError(c, http.StatusInternalServerError, err, "failed to add feature")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Feature '%s' successfully added.", feature.FeatureName),
		"feature": FeatureRef{FeatureName: feature.FeatureName},
	})
}

// Rename godoc
// @Summary Rename a feature
// @Description Change a feature's name; the new name must not be in use
// @Tags features
// @Accept json
// @Produce json
// @Param name path string true "Current feature name"
// @Param request body RenameFeatureRequest true "New feature name"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /features/{name} [put]
func (h *FeatureHandler) Rename(c *gin.Context) {
	currentName := c.Param("name")

	var req RenameFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "'new_feature_name' is required.")
		return
	}

	feature, err := h.featureService.Rename(c.Request.Context(), currentName, req.NewFeatureName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFeatureNotFound):
			respondError(c, http.StatusNotFound, fmt.Sprintf("Feature with name '%s' not found.", currentName))
		case errors.Is(err, service.ErrFeatureExists):
			respondError(c, http.StatusBadRequest, fmt.Sprintf("Feature with name '%s' already exists.", req.NewFeatureName))
		default:
			logAndRespondError(c, http.StatusInternalServerError, err, "failed to rename feature")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Feature name successfully updated from '%s' to '%s'.", currentName, feature.FeatureName),
		"feature": FeatureRef{FeatureName: feature.FeatureName},
	})
}

// Delete godoc
// @Summary Delete a feature
// @Description Remove a feature; fails while any trail still links to it
// @Tags features
// @Produce json
// @Param name path string true "Feature name"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /features/{name} [delete]
func (h *FeatureHandler) Delete(c *gin.Context) {
	name := c.Param("name")

	if err := h.featureService.Delete(c.Request.Context(), name); err != nil {
		switch {
		case errors.Is(err, service.ErrFeatureNotFound):
			respondError(c, http.StatusNotFound, fmt.Sprintf("Feature with name '%s' not found.", name))
		case errors.Is(err, service.ErrFeatureInUse):
			respondError(c, http.StatusBadRequest, fmt.Sprintf("Feature '%s' is associated with one or more trails and cannot be deleted.", name))
		default:
			logAndRespondError(c, http.StatusInternalServerError, err, "failed to delete feature")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Feature '%s' successfully deleted.", name),
	})
}
