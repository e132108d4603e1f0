package database

import (
	"log"

	"github.com/BLJThompson/Comp2001BenThompson-Micro-service-API/internal/models"
	"gorm.io/gorm"
)

func float(v float64) *float64 { return &v }
func str(v string) *string     { return &v }

// SeedDevData populates the database with sample data.
// Idempotent: skips if data already exists.
func SeedDevData(db *gorm.DB) error {
	var existing models.User
	if err := db.Where("email = ?", "grace@plymouth.ac.uk").First(&existing).Error; err == nil {
		log.Println("Seed data already exists, skipping")
		return nil
	}

	users := []models.User{
		{Username: "Grace Hopper", Email: "grace@plymouth.ac.uk", Role: "admin"},
		{Username: "Tim Berners-Lee", Email: "tim@plymouth.ac.uk", Role: "user"},
		{Username: "Ada Lovelace", Email: "ada@plymouth.ac.uk", Role: "user"},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	trails := []models.Trail{
		{
			TrailName:        "Ocean View Trail",
			TrailSummary:     "Scenic ocean view hike",
			TrailDescription: "A beautiful hike along the coast.",
			Difficulty:       "Easy",
			Location:         "Cornwall, UK",
			Length:           5.5,
			ElevationGain:    150,
			RouteType:        "Loop",
			UserID:           users[0].UserID,
			Pt1Lat:           float(50.1234),
			Pt1Long:          float(-5.6789),
			Pt1Desc:          str("Start of the trail"),
			Pt2Lat:           float(50.1240),
			Pt2Long:          float(-5.6795),
			Pt2Desc:          str("Viewpoint overlooking the ocean"),
			Pt3Lat:           float(50.1250),
			Pt3Long:          float(-5.6800),
			Pt3Desc:          str("End of the loop"),
		},
		{
			TrailName:        "Mountain Adventure Trail",
			TrailSummary:     "Challenging mountain trail",
			TrailDescription: "An adventurous trail through rugged mountains.",
			Difficulty:       "Hard",
			Location:         "Snowdonia, Wales",
			Length:           12.0,
			ElevationGain:    850,
			RouteType:        "Out-and-Back",
			UserID:           users[1].UserID,
			Pt1Lat:           float(52.1234),
			Pt1Long:          float(-3.6789),
			Pt1Desc:          str("Base of the mountain"),
			Pt2Lat:           float(52.1240),
			Pt2Long:          float(-3.6795),
			Pt2Desc:          str("Mountain peak"),
			Pt3Lat:           float(52.1250),
			Pt3Long:          float(-3.6800),
			Pt3Desc:          str("Return to base"),
		},
	}
	if err := db.Create(&trails).Error; err != nil {
		return err
	}

	features := []models.Feature{
		{FeatureName: "Waterfall"},
		{FeatureName: "Viewpoint"},
		{FeatureName: "Historic Landmark"},
	}
	if err := db.Create(&features).Error; err != nil {
		return err
	}

	links := []models.TrailFeature{
		{TrailID: trails[0].TrailID, FeatureID: features[0].FeatureID},
		{TrailID: trails[0].TrailID, FeatureID: features[1].FeatureID},
		{TrailID: trails[1].TrailID, FeatureID: features[1].FeatureID},
		{TrailID: trails[1].TrailID, FeatureID: features[2].FeatureID},
	}
	if err := db.Create(&links).Error; err != nil {
		return err
	}

	log.Println("Seed data created")
	return nil
}
