package entity

import "time"

// Site setting groups
const (
	SettingGroupGeneral    = "general"
	SettingGroupAppearance = "appearance"
	SettingGroupContact    = "contact"
	SettingGroupSEO        = "seo"
)

// Site setting value types
const (
	SettingTypeText  = "text"
	SettingTypeImage = "image"
)

// SiteSetting is a key-value row for site-wide configurable content
// (site name, logo, contact details), partitioned by group.
type SiteSetting struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Key       string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	Group     string    `gorm:"type:varchar(50);not null;index;default:'general'" json:"group"`
	Type      string    `gorm:"type:varchar(20);not null;default:'text'" json:"type"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SiteSetting) TableName() string {
	return "site_settings"
}
