package models

// Feature is a named point-of-interest category attachable to trails.
// Features exist independently of any trail.
type Feature struct {
	FeatureID   int64          `json:"feature_id" gorm:"column:feature_id;primaryKey"`
	FeatureName string         `json:"feature_name" gorm:"size:100;uniqueIndex;not null"`
	Trails      []TrailFeature `json:"-" gorm:"foreignKey:FeatureID"`
}

// TableName returns the database table name for the Feature model.
func (Feature) TableName() string {
	return "features"
}

// TrailFeature links one trail to one feature. The composite primary key
// guarantees at most one link per (trail, feature) pair.
type TrailFeature struct {
	TrailID   int64   `json:"trail_id" gorm:"column:trail_id;primaryKey"`
	FeatureID int64   `json:"feature_id" gorm:"column:feature_id;primaryKey"`
	Feature   Feature `json:"-" gorm:"foreignKey:FeatureID;references:FeatureID"`
}

// TableName returns the database table name for the TrailFeature model.
func (TrailFeature) TableName() string {
	return "trail_features"
}
