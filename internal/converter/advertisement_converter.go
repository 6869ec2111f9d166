package converter

import (
	"time"

	"hello-doctors/internal/delivery/dto"
	"hello-doctors/internal/domain/entity"
	"hello-doctors/internal/service"
)

const adDateLayout = "2006-01-02"

type AdvertisementConverter struct {
	images *service.ImageResolver
}

func NewAdvertisementConverter(images *service.ImageResolver) *AdvertisementConverter {
	return &AdvertisementConverter{images: images}
}

func (c *AdvertisementConverter) ToResponse(ad *entity.Advertisement) *dto.AdvertisementResponse {
	if ad == nil {
		return nil
	}

	resp := &dto.AdvertisementResponse{
		ID:         ad.ID,
		Title:      ad.Title,
		ImageURL:   c.images.Resolve(ad.Image),
		Link:       ad.Link,
		Position:   ad.Position,
		StartDate:  ad.StartDate.Format(adDateLayout),
		IsActive:   ad.IsActive,
		IsLive:     ad.IsLiveOn(time.Now()),
		ClickCount: ad.ClickCount,
	}
	if ad.EndDate != nil {
		end := ad.EndDate.Format(adDateLayout)
		resp.EndDate = &end
	}
	return resp
}

func (c *AdvertisementConverter) ToResponses(ads []entity.Advertisement) []dto.AdvertisementResponse {
	responses := make([]dto.AdvertisementResponse, len(ads))
	for i := range ads {
		responses[i] = *c.ToResponse(&ads[i])
	}
	return responses
}

// ParseAdDate parses the yyyy-mm-dd dates used by the ad scheduling forms.
func ParseAdDate(s string) (time.Time, error) {
	return time.Parse(adDateLayout, s)
}
