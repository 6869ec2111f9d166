package entity

import "time"

// Advertisement positions
const (
	AdPositionHomeTop      = "home_top"
	AdPositionHomeBottom   = "home_bottom"
	AdPositionSearchTop    = "search_top"
	AdPositionSidebar      = "sidebar"
	AdPositionDoctorDetail = "doctor_detail"
)

// Advertisement represents a banner placed on the public pages. An ad is
// live when is_active is set, start_date has passed and end_date (if any)
// has not. A nil end_date means open-ended.
type Advertisement struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string     `gorm:"type:varchar(255);not null" json:"title"`
	Image      string     `gorm:"type:varchar(500);not null" json:"image"`
	Link       string     `gorm:"type:varchar(500)" json:"link,omitempty"`
	Position   string     `gorm:"type:varchar(50);not null;index" json:"position"`
	StartDate  time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate    *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	IsActive   *bool      `gorm:"not null;default:true;index" json:"is_active"`
	ClickCount int64      `gorm:"not null;default:0" json:"click_count"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Advertisement) TableName() string {
	return "advertisements"
}

// IsLiveOn reports whether the ad should be shown on the given day.
// Comparison is by calendar date, not instant.
func (a *Advertisement) IsLiveOn(t time.Time) bool {
	if a.IsActive == nil || !*a.IsActive {
		return false
	}
	day := t.Truncate(24 * time.Hour)
	if a.StartDate.Truncate(24 * time.Hour).After(day) {
		return false
	}
	if a.EndDate != nil && a.EndDate.Truncate(24*time.Hour).Before(day) {
		return false
	}
	return true
}
