package converter

import (
	"hello-doctors/internal/delivery/dto"
	"hello-doctors/internal/domain/entity"
)

// SettingsToGroupedResponse partitions settings by group for the
// customization screens.
func SettingsToGroupedResponse(settings []entity.SiteSetting) dto.GroupedSettingsResponse {
	grouped := make(dto.GroupedSettingsResponse)
	for _, setting := range settings {
		grouped[setting.Group] = append(grouped[setting.Group], dto.SettingResponse{
			Key:   setting.Key,
			Value: setting.Value,
			Group: setting.Group,
			Type:  setting.Type,
		})
	}
	return grouped
}
