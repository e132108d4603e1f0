package handlers

import (
	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/models"
	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/service"
)

// FeatureRef names one feature inside a trail response.
type FeatureRef struct {
	FeatureName string `json:"feature_name"`
}

// TrailResponse is the wire shape of a trail: waypoint columns grouped
// into pt1..pt3 objects, plus the trail's feature list.
type TrailResponse struct {
	TrailID          int64             `json:"trail_id"`
	TrailName        string            `json:"trail_name"`
	TrailSummary     string            `json:"trail_summary"`
	TrailDescription string            `json:"trail_description"`
	Difficulty       string            `json:"difficulty"`
	Location         string            `json:"location"`
	Length           float64           `json:"length"`
	ElevationGain    float64           `json:"elevation_gain"`
	RouteType        string            `json:"route_type"`
	UserID           int64             `json:"user_id"`
	Waypoints        service.Waypoints `json:"waypoints"`
	Features         []FeatureRef      `json:"features"`
}

func newTrailResponse(trail models.Trail) TrailResponse {
	features := make([]FeatureRef, 0, len(trail.Features))
	for _, link := range trail.Features {
		features = append(features, FeatureRef{FeatureName: link.Feature.FeatureName})
	}

	return TrailResponse{
		TrailID:          trail.TrailID,
		TrailName:        trail.TrailName,
		TrailSummary:     trail.TrailSummary,
		TrailDescription: trail.TrailDescription,
		Difficulty:       trail.Difficulty,
		Location:         trail.Location,
		Length:           trail.Length,
		ElevationGain:    trail.ElevationGain,
		RouteType:        trail.RouteType,
		UserID:           trail.UserID,
		Waypoints: service.Waypoints{
			Pt1: &service.Waypoint{Lat: trail.Pt1Lat, Long: trail.Pt1Long, Desc: trail.Pt1Desc},
			Pt2: &service.Waypoint{Lat: trail.Pt2Lat, Long: trail.Pt2Long, Desc: trail.Pt2Desc},
			Pt3: &service.Waypoint{Lat: trail.Pt3Lat, Long: trail.Pt3Long, Desc: trail.Pt3Desc},
		},
		Features: features,
	}
}

func newTrailResponses(trails []models.Trail) []TrailResponse {
	responses := make([]TrailResponse, 0, len(trails))
	for _, trail := range trails {
		responses = append(responses, newTrailResponse(trail))
	}
	return responses
}
