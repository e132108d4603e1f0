package models

// Trail represents a hiking route with descriptive metadata and up to
// three optional waypoints stored as flat columns.
type Trail struct {
	TrailID          int64   `json:"trail_id" gorm:"column:trail_id;primaryKey"`
	TrailName        string  `json:"trail_name" gorm:"size:100;uniqueIndex;not null"`
	TrailSummary     string  `json:"trail_summary" gorm:"size:255"`
	TrailDescription string  `json:"trail_description" gorm:"size:255"`
	Difficulty       string  `json:"difficulty" gorm:"size:50"`
	Location         string  `json:"location" gorm:"size:150"`
	Length           float64 `json:"length"`
	ElevationGain    float64 `json:"elevation_gain"`
	RouteType        string  `json:"route_type" gorm:"size:50"`
	UserID           int64   `json:"user_id" gorm:"column:user_id;not null"`

	Pt1Lat  *float64 `json:"-" gorm:"column:pt1_lat"`
	Pt1Long *float64 `json:"-" gorm:"column:pt1_long"`
	Pt1Desc *string  `json:"-" gorm:"column:pt1_desc;size:255"`
	Pt2Lat  *float64 `json:"-" gorm:"column:pt2_lat"`
	Pt2Long *float64 `json:"-" gorm:"column:pt2_long"`
	Pt2Desc *string  `json:"-" gorm:"column:pt2_desc;size:255"`
	Pt3Lat  *float64 `json:"-" gorm:"column:pt3_lat"`
	Pt3Long *float64 `json:"-" gorm:"column:pt3_long"`
	Pt3Desc *string  `json:"-" gorm:"column:pt3_desc;size:255"`

	Features []TrailFeature `json:"-" gorm:"foreignKey:TrailID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for the Trail model.
func (Trail) TableName() string {
	return "trails"
}
