package converter

import (
	"strings"
	"unicode/utf8"

	"hello-doctors/internal/delivery/dto"
	"hello-doctors/internal/domain/entity"
	"hello-doctors/internal/service"
)

// bioSummaryLimit caps the bio shown on listing cards.
const bioSummaryLimit = 150

// DoctorConverter shapes doctor profiles into page-view payloads. It holds
// the image resolver because stored image references need the three-tier
// URL resolution before they are displayable.
type DoctorConverter struct {
	images *service.ImageResolver
}

func NewDoctorConverter(images *service.ImageResolver) *DoctorConverter {
	return &DoctorConverter{images: images}
}

// TruncateWords cuts s to at most max characters without splitting a word,
// appending an ellipsis when anything was dropped.
func TruncateWords(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:max-3])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ") + "..."
}

func (c *DoctorConverter) ToSummary(profile *entity.DoctorProfile) *dto.DoctorSummaryResponse {
	if profile == nil {
		return nil
	}

	resp := &dto.DoctorSummaryResponse{
		ID:                profile.ID,
		Name:              profile.User.FullName,
		SpecialtyID:       profile.SpecializationID,
		ImageURL:          c.images.Resolve(profile.ProfileImage),
		Bio:               TruncateWords(profile.Bio, bioSummaryLimit),
		Cities:            cityLinksToResponses(profile.CityLinks),
		ExperienceYears:   profile.ExperienceYears,
		ConsultationFee:   profile.ConsultationFee,
		IsAvailableOnline: profile.IsAvailableOnline != nil && *profile.IsAvailableOnline,
		Website:           profile.Website,
	}
	if profile.Specialty != nil {
		resp.Specialty = profile.Specialty.Name
	}
	return resp
}

func (c *DoctorConverter) ToSummaries(profiles []entity.DoctorProfile) []dto.DoctorSummaryResponse {
	responses := make([]dto.DoctorSummaryResponse, len(profiles))
	for i := range profiles {
		responses[i] = *c.ToSummary(&profiles[i])
	}
	return responses
}

func (c *DoctorConverter) ToDetail(profile *entity.DoctorProfile) *dto.DoctorDetailResponse {
	if profile == nil {
		return nil
	}

	resp := &dto.DoctorDetailResponse{
		ID:                profile.ID,
		Name:              profile.User.FullName,
		Email:             profile.User.Email,
		Phone:             profile.User.Phone,
		SpecialtyID:       profile.SpecializationID,
		LicenseNumber:     profile.LicenseNumber,
		Qualification:     profile.Qualification,
		ExperienceYears:   profile.ExperienceYears,
		ConsultationFee:   profile.ConsultationFee,
		Bio:               profile.Bio,
		ImageURL:          c.images.Resolve(profile.ProfileImage),
		Website:           profile.Website,
		IsVerified:        profile.IsVerified != nil && *profile.IsVerified,
		IsActive:          profile.User.IsActive != nil && *profile.User.IsActive,
		IsAvailableOnline: profile.IsAvailableOnline != nil && *profile.IsAvailableOnline,
		Cities:            cityLinksToResponses(profile.CityLinks),
		WorkingHours:      workingHoursToResponses(profile.WorkingHours),
	}
	if profile.Specialty != nil {
		resp.Specialty = profile.Specialty.Name
	}
	return resp
}

func cityLinksToResponses(links []entity.DoctorCity) []dto.DoctorCityResponse {
	responses := make([]dto.DoctorCityResponse, len(links))
	for i, link := range links {
		responses[i] = dto.DoctorCityResponse{
			CityID:  link.CityID,
			City:    link.City.Name,
			Address: link.Address,
		}
	}
	return responses
}

func workingHoursToResponses(hours []entity.DoctorWorkingHour) []dto.WorkingHourResponse {
	responses := make([]dto.WorkingHourResponse, len(hours))
	for i, hour := range hours {
		responses[i] = dto.WorkingHourResponse{
			CityID:      hour.CityID,
			TimingText:  hour.TimingText,
			DayOfWeek:   hour.DayOfWeek,
			OpeningTime: hour.OpeningTime,
			ClosingTime: hour.ClosingTime,
			IsAvailable: hour.IsAvailable,
		}
	}
	return responses
}
