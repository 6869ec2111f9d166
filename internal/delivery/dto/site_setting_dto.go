package dto

// Request DTOs

type SettingItem struct {
	Key   string `json:"key" validate:"required,max=100"`
	Value string `json:"value" validate:"omitempty"`
	Group string `json:"group" validate:"omitempty,oneof=general appearance contact seo"`
	Type  string `json:"type" validate:"omitempty,oneof=text image"`
}

type UpdateSettingsRequest struct {
	Settings []SettingItem `json:"settings" validate:"required,min=1,dive"`
}

// Response DTOs

type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Group string `json:"group"`
	Type  string `json:"type"`
}

// GroupedSettingsResponse maps group name to its settings.
type GroupedSettingsResponse map[string][]SettingResponse
