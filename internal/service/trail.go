package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/models"
	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTrailNotFound  = errors.New("trail not found")
	ErrTrailNameTaken = errors.New("trail name already exists")
	ErrFeatureLinked  = errors.New("feature already linked to trail")
	ErrLinkNotFound   = errors.New("feature not linked to trail")
)

// Waypoint is one (latitude, longitude, description) triple. Fields are
// pointers so partial updates can distinguish "absent" from "clear".
type Waypoint struct {
	Lat  *float64 `json:"lat"`
	Long *float64 `json:"long"`
	Desc *string  `json:"desc"`
}

// Waypoints holds the three optional waypoint slots of a trail.
type Waypoints struct {
	Pt1 *Waypoint `json:"pt1"`
	Pt2 *Waypoint `json:"pt2"`
	Pt3 *Waypoint `json:"pt3"`
}

// FeatureNames accepts either a single JSON string or a list of strings.
type FeatureNames []string

// UnmarshalJSON implements string-or-list decoding for feature names.
func (f *FeatureNames) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*f = FeatureNames{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("feature_name must be a string or a list of strings")
	}
	*f = FeatureNames(list)
	return nil
}

// CreateTrailRequest is the payload for creating a trail. Ownership is not
// part of the payload: the trail is always owned by the logged-in caller.
type CreateTrailRequest struct {
	TrailName        string     `json:"trail_name" binding:"required"`
	TrailSummary     string     `json:"trail_summary"`
	TrailDescription string     `json:"trail_description"`
	Difficulty       string     `json:"difficulty"`
	Location         string     `json:"location"`
	Length           float64    `json:"length"`
	ElevationGain    float64    `json:"elevation_gain"`
	RouteType        string     `json:"route_type"`
	Features         []string   `json:"features"`
	Waypoints        *Waypoints `json:"waypoints"`
}

// FeatureChanges expresses feature edits on a trail as add/remove
// sub-operations rather than a full replace-list.
type FeatureChanges struct {
	Add    FeatureNames `json:"add"`
	Remove FeatureNames `json:"remove"`
}

// UpdateTrailRequest is the payload for a partial trail update: only
// supplied fields change, only supplied waypoint slots change.
type UpdateTrailRequest struct {
	TrailName        *string         `json:"trail_name"`
	TrailSummary     *string         `json:"trail_summary"`
	TrailDescription *string         `json:"trail_description"`
	Difficulty       *string         `json:"difficulty"`
	Location         *string         `json:"location"`
	Length           *float64        `json:"length"`
	ElevationGain    *float64        `json:"elevation_gain"`
	RouteType        *string         `json:"route_type"`
	Waypoints        *Waypoints      `json:"waypoints"`
	Features         *FeatureChanges `json:"features"`
}

// TrailService orchestrates trail mutations under the consistency rules.
type TrailService interface {
	List(ctx context.Context) ([]models.Trail, error)
	Get(ctx context.Context, id int64) (*models.Trail, error)
	Create(ctx context.Context, callerEmail string, req CreateTrailRequest) (*models.Trail, error)
	Update(ctx context.Context, id int64, req UpdateTrailRequest) (*models.Trail, error)
	Delete(ctx context.Context, id int64) error
	AddFeatures(ctx context.Context, trailID int64, names []string) error
	RemoveFeatures(ctx context.Context, trailID int64, names []string) error
}

type trailService struct {
	trailRepo repository.TrailRepository
	userRepo  repository.UserRepository
}

// NewTrailService creates a new TrailService instance.
func NewTrailService(trailRepo repository.TrailRepository, userRepo repository.UserRepository) TrailService {
	return &trailService{
		trailRepo: trailRepo,
		userRepo:  userRepo,
	}
}

func (s *trailService) List(ctx context.Context) ([]models.Trail, error) {
	return s.trailRepo.FindAll(ctx)
}

func (s *trailService) Get(ctx context.Context, id int64) (*models.Trail, error) {
	trail, err := s.trailRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrailNotFound
		}
		return nil, err
	}
	return trail, nil
}

// Create builds a trail owned by the caller resolved from the session.
// Ownership is always self-assigned; the request body carries no owner.
// Feature names are de-duplicated so repeats in the input produce exactly
// one link per distinct name.
func (s *trailService) Create(ctx context.Context, callerEmail string, req CreateTrailRequest) (*models.Trail, error) {
	user, err := s.userRepo.FindByEmail(ctx, callerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if _, err := s.trailRepo.FindByName(ctx, req.TrailName); err == nil {
		return nil, ErrTrailNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	trail := models.Trail{
		TrailName:        req.TrailName,
		TrailSummary:     defaultString(req.TrailSummary, "No summary provided."),
		TrailDescription: defaultString(req.TrailDescription, "No description provided."),
		Difficulty:       defaultString(req.Difficulty, "Unknown"),
		Location:         defaultString(req.Location, "Unknown"),
		Length:           req.Length,
		ElevationGain:    req.ElevationGain,
		RouteType:        defaultString(req.RouteType, "Unknown"),
		UserID:           user.UserID,
	}
	applyWaypoints(&trail, req.Waypoints)

	if err := s.trailRepo.CreateWithFeatures(ctx, &trail, dedupe(req.Features)); err != nil {
		return nil, err
	}

	return s.Get(ctx, trail.TrailID)
}

// Update applies a partial update. Renaming to a name held by another trail
// fails with ErrTrailNameTaken. Field changes and feature add/remove changes
// commit together: a conflict on any feature name rolls back the whole
// update, including the field changes.
func (s *trailService) Update(ctx context.Context, id int64, req UpdateTrailRequest) (*models.Trail, error) {
	trail, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TrailName != nil && *req.TrailName != trail.TrailName {
		if _, err := s.trailRepo.FindByName(ctx, *req.TrailName); err == nil {
			return nil, ErrTrailNameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		trail.TrailName = *req.TrailName
	}
	if req.TrailSummary != nil {
		trail.TrailSummary = *req.TrailSummary
	}
	if req.TrailDescription != nil {
		trail.TrailDescription = *req.TrailDescription
	}
	if req.Difficulty != nil {
		trail.Difficulty = *req.Difficulty
	}
	if req.Location != nil {
		trail.Location = *req.Location
	}
	if req.Length != nil {
		trail.Length = *req.Length
	}
	if req.ElevationGain != nil {
		trail.ElevationGain = *req.ElevationGain
	}
	if req.RouteType != nil {
		trail.RouteType = *req.RouteType
	}
	applyWaypoints(trail, req.Waypoints)

	var add, remove []string
	if req.Features != nil {
		add = dedupe(req.Features.Add)
		remove = req.Features.Remove
	}

	if err := s.trailRepo.UpdateWithFeatures(ctx, trail, add, remove); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateLink):
			return nil, ErrFeatureLinked
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrLinkNotFound
		}
		return nil, err
	}

	return s.Get(ctx, id)
}

// Delete removes the trail after unlinking all its features. The features
// themselves remain.
func (s *trailService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.trailRepo.Delete(ctx, id)
}

// AddFeatures links the named features to the trail, creating any feature
// that does not yet exist. An already-present link is an explicit conflict,
// never silently ignored, and rejecting one name means none of the request's
// links are created.
func (s *trailService) AddFeatures(ctx context.Context, trailID int64, names []string) error {
	if _, err := s.Get(ctx, trailID); err != nil {
		return err
	}
	if err := s.trailRepo.LinkFeatures(ctx, trailID, dedupe(names)); err != nil {
		if errors.Is(err, repository.ErrDuplicateLink) {
			return ErrFeatureLinked
		}
		return err
	}
	return nil
}

// RemoveFeatures unlinks the named features from the trail. A missing
// feature or link fails with ErrLinkNotFound and leaves every link from the
// request in place.
func (s *trailService) RemoveFeatures(ctx context.Context, trailID int64, names []string) error {
	if _, err := s.Get(ctx, trailID); err != nil {
		return err
	}
	if err := s.trailRepo.UnlinkFeatures(ctx, trailID, names); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLinkNotFound
		}
		return err
	}
	return nil
}

func applyWaypoints(trail *models.Trail, wp *Waypoints) {
	if wp == nil {
		return
	}
	applyWaypoint(wp.Pt1, &trail.Pt1Lat, &trail.Pt1Long, &trail.Pt1Desc)
	applyWaypoint(wp.Pt2, &trail.Pt2Lat, &trail.Pt2Long, &trail.Pt2Desc)
	applyWaypoint(wp.Pt3, &trail.Pt3Lat, &trail.Pt3Long, &trail.Pt3Desc)
}

func applyWaypoint(pt *Waypoint, lat, long **float64, desc **string) {
	if pt == nil {
		return
	}
	if pt.Lat != nil {
		*lat = pt.Lat
	}
	if pt.Long != nil {
		*long = pt.Long
	}
	if pt.Desc != nil {
		*desc = pt.Desc
	}
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	distinct := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		distinct = append(distinct, name)
	}
	return distinct
}
